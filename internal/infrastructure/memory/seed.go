package memory

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// seedUser pairs a user with its initial password. Passwords only live here
// until SeedUsers hashes them.
type seedUser struct {
	entity.User
	password string
}

// The static user table the system ships with. One administrator plus the
// three ticketing staff.
var seed = []seedUser{
	{User: entity.User{ID: "1", Name: "AL AMIN", Username: "admin9197", Role: entity.RoleAdmin}, password: "Admin9197"},
	{User: entity.User{ID: "2", Name: "RONY TALUKDER", Username: "ronytalukder", Role: entity.RoleStaff}, password: "@jead2016R"},
	{User: entity.User{ID: "3", Name: "MAHIR", Username: "mahir", Role: entity.RoleStaff}, password: "Mahir3"},
	{User: entity.User{ID: "4", Name: "SAKIL ADNAN", Username: "sakiladnan", Role: entity.RoleStaff}, password: "Sakiladnan"},
}

// SeedUsers returns the seeded user table with bcrypt password hashes.
// Passwords are lowercased before hashing: login treats credentials
// case-insensitively, so the canonical form is the lowercase one.
func SeedUsers() ([]entity.User, error) {
	out := make([]entity.User, 0, len(seed))
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(strings.ToLower(s.password)), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed: hash password for %s: %w", s.Username, err)
		}
		u := s.User
		u.PasswordHash = string(hash)
		out = append(out, u)
	}
	return out, nil
}
