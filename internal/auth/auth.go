package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cityhall-dev/licensing-management/internal"
)

// User is the identity record behind every credential. The password hash
// never leaves this package through any read path.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"column:full_name;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"default:inspector;not null"`
	PhoneNumber  string    `json:"phone_number,omitempty" gorm:"column:phone_number"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	IsApproved   bool      `json:"is_approved" gorm:"column:is_approved;default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Identity strips the user down to what handlers are allowed to see.
func (u *User) Identity() *internal.Identity {
	return &internal.Identity{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// Claims represents JWT token claims
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates bearer tokens.
type TokenGenerator interface {
	GenerateToken(userID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// LoginResult is the payload returned on successful authentication.
type LoginResult struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}
