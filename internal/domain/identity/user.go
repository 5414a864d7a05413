package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/littlelemon/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,150}$`)

// User is an account that can authenticate against the API. Admin status
// is a separate elevated flag, distinct from group membership.
type User struct {
	shared.BaseEntity
	Username     string  `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email        string  `gorm:"type:varchar(255)"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	IsAdmin      bool    `gorm:"not null;default:false"`
	Groups       []Group `gorm:"many2many:user_groups"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with a bcrypt-hashed password.
func NewUser(username, email, password string) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if !usernamePattern.MatchString(username) {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username must be 3-150 characters of lowercase letters, digits, dots, underscores or hyphens")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	now := time.Now()
	return &User{
		BaseEntity:   shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// GroupNames returns the names of all groups the user belongs to
func (u *User) GroupNames() []string {
	names := make([]string, len(u.Groups))
	for i, g := range u.Groups {
		names[i] = g.Name
	}
	return names
}

// InGroup reports whether the user belongs to the named group
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}
