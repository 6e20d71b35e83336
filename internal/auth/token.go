package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tutoring_queue/internal/models"
)

var ErrInvalidToken = errors.New("auth: invalid or expired token")

// Issuer signs and verifies the HS256 tokens that identify the caller.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewIssuer(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Identity is what a verified token says about its bearer.
type Identity struct {
	UserID string
	Role   models.Role
}

func (i *Issuer) IssuePair(a models.Account) (access, refresh string, err error) {
	access, err = generateToken(a, i.accessTTL, i.accessSecret)
	if err != nil {
		return "", "", err
	}
	refresh, err = generateToken(a, i.refreshTTL, i.refreshSecret)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (i *Issuer) ParseAccess(token string) (Identity, error) {
	return parseToken(token, i.accessSecret)
}

func (i *Issuer) ParseRefresh(token string) (Identity, error) {
	return parseToken(token, i.refreshSecret)
}

func generateToken(a models.Account, duration time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": a.ID,
		"role":    string(a.Role),
		"exp":     now.Add(duration).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseToken(tokenString string, secret []byte) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || !models.Role(role).Valid() {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: userID, Role: models.Role(role)}, nil
}
