package domain

import "time"

// Role is the advisory position a client holds in a group session. The core
// carries it for display and mirroring decisions but never arbitrates
// conflicts with it.
type Role string

const (
	RoleHost   Role = "host"
	RoleMember Role = "member"
)

// String returns the display string.
func (r Role) String() string {
	return string(r)
}

// GroupSession identifies a shared focus session. The ID is opaque; the
// network layer mints it.
type GroupSession struct {
	ID       string    `json:"id"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// Active reports whether the client currently belongs to a session.
func (g GroupSession) Active() bool {
	return g.ID != ""
}
