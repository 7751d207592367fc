package entity

// Valid roles for User.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User is a dashboard account. Users are created at seed time, mutated only by
// password change and never deleted.
type User struct {
	ID           string
	Name         string // display name, e.g. "RONY TALUKDER"
	Username     string
	Role         string // ADMIN | STAFF
	PasswordHash string // bcrypt over the lowercased password, never cleartext
}

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleStaff
}
