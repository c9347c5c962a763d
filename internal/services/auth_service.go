package services

import (
	"fmt"
	"time"

	domainerrors "katalog/internal/errors"

	"github.com/dgrijalva/jwt-go"
)

// AuthService issues and validates bearer tokens.
type AuthService struct {
	users     *UserService
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *UserService, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// IssueToken authenticates the user and returns a signed JWT.
func (s *AuthService) IssueToken(email, password string) (string, error) {
	user, err := s.users.VerifyCredentials(email, password)
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT and returns the caller's user ID.
// The account must still exist and be active.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", domainerrors.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domainerrors.Unauthorized("invalid token")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", domainerrors.Unauthorized("invalid token claims")
	}

	user, err := s.users.GetUser(userID)
	if err != nil {
		if domainerrors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.Unauthorized("user inactive or deleted")
		}
		return "", err
	}
	if !user.IsActive {
		return "", domainerrors.Unauthorized("user inactive or deleted")
	}
	return userID, nil
}
