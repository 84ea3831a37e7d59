package types

import (
	"time"

	"github.com/samgau/atelier-storefront/pkg/enums"
)

// Identity is the authenticated user's profile as known to the client.
// It lives only in memory and is re-fetched from the server on load.
type Identity struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      enums.UserRole `json:"role"`
	Address   string         `json:"address"`
	CreatedAt time.Time      `json:"created_at"`
}

// IsAdmin reports whether the identity can reach the admin surface.
func (i Identity) IsAdmin() bool {
	return i.Role == enums.UserRoleAdmin
}
