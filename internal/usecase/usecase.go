// Package usecase contains the application-specific business rules.
//
// Every operation acting for a signed-in user takes the *entity.Session it acts
// for; the storefront API token travels with it, never through shared state.
package usecase
