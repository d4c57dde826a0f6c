package domain

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// ValidRole reports whether role is one of the recognized role values.
// Any other string can be stored, but is never accepted as an authorization input.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// Identity models a registered account. Records are created on registration and
// never mutated afterwards; the password is held only as a bcrypt hash.
type Identity struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
