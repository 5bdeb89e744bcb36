package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cityhall-dev/licensing-management/internal"
)

// Repository is the identity store behind the auth service.
type Repository interface {
	Create(user *User) error
	GetByEmail(email string) (*User, error)
	GetByID(id int64) (*User, error)
}

// Service owns registration, login and token validation.
type Service struct {
	repo       Repository
	tokens     TokenGenerator
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, tokens TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a not-yet-approved identity. The password is hashed here,
// at the call site of the write path, never by a persistence hook.
func (s *Service) Register(dto *RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	user := &User{
		FullName:     dto.FullName,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         dto.Role,
		PhoneNumber:  dto.PhoneNumber,
		IsActive:     true,
		IsApproved:   false,
	}

	if err := s.repo.Create(user); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("user registered, awaiting approval", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Authenticate verifies credentials and issues a bearer token. Unknown email
// and wrong password are indistinguishable to the caller; a valid login for
// an unapproved account is the one case reported as Forbidden.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	if !user.IsApproved {
		s.logger.Warn("login blocked: account pending approval", "user_id", user.ID)
		return nil, internal.ErrPendingApproval
	}

	token, err := s.tokens.GenerateToken(fmt.Sprintf("%d", user.ID))
	if err != nil {
		return nil, internal.NewInternalError("failed to issue token", err)
	}

	return &LoginResult{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
		Token:    token,
	}, nil
}

// ResolveIdentity turns a bearer token into a caller identity. Every failure
// mode collapses into the same Unauthorized error.
func (s *Service) ResolveIdentity(tokenString string) (*internal.Identity, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, internal.ErrInvalidToken
	}

	var userID int64
	if _, err := fmt.Sscanf(claims.UserID, "%d", &userID); err != nil {
		return nil, internal.ErrInvalidToken
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, internal.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, internal.ErrInvalidToken
	}

	return user.Identity(), nil
}

// GetProfile returns the caller's own record without the hash.
func (s *Service) GetProfile(userID int64) (*User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}
	return user, nil
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// JWTTokenGenerator signs HS256 tokens with a single shared secret.
type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

func (j *JWTTokenGenerator) GenerateToken(userID string) (string, error) {
	expiresAt := time.Now().Add(j.TokenTTL)

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.NewUnauthorizedError("token has expired", internal.ErrCodeTokenExpired)
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, internal.ErrInvalidToken
}
