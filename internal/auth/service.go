package auth

import (
	"fmt"
	"time"

	"crowdaid-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the lifetime of tokens issued by GenerateJWT
const DefaultTokenTTL = 7 * 24 * time.Hour

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID       `json:"user_id"`
	Email                string          `json:"email,omitempty"`
	Role                 models.UserRole `json:"role"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Principal is the authenticated caller of a service operation
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   models.UserRole
}

// IsAdmin reports whether the principal holds the ADMIN role
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == models.UserRoleAdmin
}

// PrincipalFromClaims builds a Principal from validated token claims
func PrincipalFromClaims(claims *AuthClaims) *Principal {
	role := claims.Role
	if !role.IsValid() {
		role = models.UserRoleUser
	}
	return &Principal{UserID: claims.UserID, Email: claims.Email, Role: role}
}

// AuthService issues and validates bearer tokens. Login and registration live
// in a separate identity service that shares the signing secret.
type AuthService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates a token service signing with the given HMAC secret
func NewAuthService(secret, issuer string) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &AuthService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("token has no user id")
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, fmt.Errorf("unexpected token issuer %q", claims.Issuer)
	}

	return claims, nil
}
