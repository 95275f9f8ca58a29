package impl

import (
	"strings"

	"quickmart/internal/domain/entity"
	"quickmart/internal/usecase"
)

// routeRule gates one path pattern. A nil roles list is public.
type routeRule struct {
	pattern   string
	view      string
	roles     entity.Roles
	guestOnly bool
}

var (
	customerOnly = entity.Roles{entity.RoleCustomer}
	vendorOnly   = entity.Roles{entity.RoleVendor}
	deliveryOnly = entity.Roles{entity.RoleDelivery}
	adminOnly    = entity.Roles{entity.RoleAdmin}
)

// routeTable is matched in order; the first matching pattern wins.
//
//nolint:gochecknoglobals
var routeTable = []routeRule{
	{pattern: "/", view: "home"},
	{pattern: "/login", view: "login", guestOnly: true},
	{pattern: "/register", view: "register", guestOnly: true},
	{pattern: "/shop", view: "shop"},
	{pattern: "/products/:id", view: "product_detail"},

	{pattern: "/cart", view: "cart", roles: customerOnly},
	{pattern: "/checkout", view: "checkout", roles: customerOnly},
	{pattern: "/orders", view: "orders", roles: customerOnly},
	{pattern: "/orders/:id", view: "order_detail", roles: customerOnly},
	{pattern: "/messages", view: "messages", roles: entity.AllRoles},
	{pattern: "/notifications", view: "notifications", roles: entity.AllRoles},

	{pattern: "/vendor/dashboard", view: "vendor_dashboard", roles: vendorOnly},
	{pattern: "/vendor/products", view: "vendor_products", roles: vendorOnly},
	{pattern: "/vendor/orders", view: "vendor_orders", roles: vendorOnly},
	{pattern: "/vendor/*", view: "vendor_dashboard", roles: vendorOnly},

	{pattern: "/delivery/dashboard", view: "delivery_dashboard", roles: deliveryOnly},
	{pattern: "/delivery/scan", view: "delivery_scan", roles: deliveryOnly},
	{pattern: "/delivery/*", view: "delivery_dashboard", roles: deliveryOnly},

	{pattern: "/admin/dashboard", view: "admin_dashboard", roles: adminOnly},
	{pattern: "/admin/users", view: "admin_users", roles: adminOnly},
	{pattern: "/admin/orders", view: "admin_orders", roles: adminOnly},
	{pattern: "/admin/*", view: "admin_dashboard", roles: adminOnly},
}

type navigationService struct {
	routes []routeRule
}

// NewNavigationService creates the role router over the storefront route table.
func NewNavigationService() usecase.NavigationUsecase {
	return &navigationService{routes: routeTable}
}

// Resolve maps path to a view for role. An empty role is an anonymous visitor.
func (s *navigationService) Resolve(role entity.Role, path string) *entity.RouteDecision {
	path = normalizePath(path)
	signedIn := role.IsValid()

	rule, ok := s.match(path)
	if !ok {
		return redirect(path, landing(role, signedIn))
	}

	switch {
	case rule.guestOnly && signedIn:
		return redirect(path, role.Home())
	case rule.roles == nil:
		return allow(path, rule.view)
	case !signedIn:
		return redirect(path, "/login")
	case !rule.roles.Contains(role):
		return redirect(path, role.Home())
	default:
		return allow(path, rule.view)
	}
}

func (s *navigationService) match(path string) (routeRule, bool) {
	for _, rule := range s.routes {
		if matchPattern(rule.pattern, path) {
			return rule, true
		}
	}

	return routeRule{}, false
}

func landing(role entity.Role, signedIn bool) string {
	if signedIn {
		return role.Home()
	}

	return "/"
}

func allow(path, view string) *entity.RouteDecision {
	return &entity.RouteDecision{Path: path, Allowed: true, View: view}
}

func redirect(path, to string) *entity.RouteDecision {
	return &entity.RouteDecision{Path: path, Allowed: false, RedirectTo: to}
}

// normalizePath drops query, fragment and trailing slashes.
func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	return path
}

// matchPattern supports ":param" segments and a trailing "/*" that matches the
// section root and anything below it.
func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	patternSegs := strings.Split(pattern, "/")
	pathSegs := strings.Split(path, "/")
	if len(patternSegs) != len(pathSegs) {
		return false
	}

	for i, seg := range patternSegs {
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" {
				return false
			}

			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}

	return true
}
