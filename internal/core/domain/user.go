package domain

import "time"

// Role is the small-integer role space used across the platform.
type Role int

const (
	RoleAdmin      Role = 1
	RoleManager    Role = 2
	RoleTechnician Role = 3
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleTechnician
}

// Principal is the authenticated actor behind a request. It is built once
// by the auth middleware from a verified token and is immutable afterwards.
type Principal struct {
	ID        string
	Role      Role
	IsClient  bool
	PartnerID string // empty = no partner
}

// Unrestricted reports whether the principal is exempt from partner
// scoping: a non-client admin sees every row.
func (p Principal) Unrestricted() bool {
	return p.Role == RoleAdmin && !p.IsClient
}

// Scope is the mandatory visibility restriction derived from a Principal.
// The zero value means unrestricted. Repositories translate SelfID into
// the column tying a row to the principal (user id, ticket creator).
// Exactly one of the fields is set for restricted principals.
type Scope struct {
	PartnerID string
	SelfID    string
}

// Scope derives the visibility scope for p. Evaluated before any
// caller-supplied filter: filters can narrow the scoped set, never widen it.
func (p Principal) Scope() Scope {
	if p.Unrestricted() {
		return Scope{}
	}
	if p.PartnerID != "" {
		return Scope{PartnerID: p.PartnerID}
	}
	return Scope{SelfID: p.ID}
}

// User is an administrable account.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	TelContact   string    `json:"tel_contact,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsClient     bool      `json:"is_client"`
	PartnerID    string    `json:"partner_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRow is a listing row: a User plus the flattened description of its
// partner, resolved by the store-side join. PartnerDesc is nil when the
// user has no partner.
type UserRow struct {
	User        `bson:",inline"`
	PartnerDesc *string `json:"partner_desc"`
}
