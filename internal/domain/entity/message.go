package entity

import "time"

// Message is a direct message between two accounts. Persistence is server-side.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// PeerOf returns the other participant as seen from userID.
func (m *Message) PeerOf(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}

	return m.SenderID
}

// ConversationSummary is one inbox row: the latest message with a peer.
type ConversationSummary struct {
	PeerID      string   `json:"peer_id"`
	Peer        *User    `json:"peer,omitempty"`
	LastMessage *Message `json:"last_message"`
	Unread      int      `json:"unread"`
}

// messagingPeers lists whose directory each role may browse. The relation is
// symmetric: customer and vendor, vendor and delivery, admin and everyone.
var messagingPeers = map[Role]Roles{
	RoleCustomer: {RoleVendor, RoleAdmin},
	RoleVendor:   {RoleCustomer, RoleDelivery, RoleAdmin},
	RoleDelivery: {RoleVendor, RoleAdmin},
	RoleAdmin:    {RoleCustomer, RoleVendor, RoleDelivery, RoleAdmin},
}

// MessagingPeers returns the roles a user of role may message.
func MessagingPeers(role Role) Roles {
	return messagingPeers[role]
}

// CanMessage reports whether role may browse or message users of peer role.
func CanMessage(role, peer Role) bool {
	return messagingPeers[role].Contains(peer)
}
