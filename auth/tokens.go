package auth

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
)

const TokenLifetime = 7 * 24 * time.Hour

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken returns a signed bearer token for the user. The jti lets
// logout blacklist the token for its remaining lifetime.
func IssueToken(user *models.User) (string, error) {
	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// NewSessionToken synthesizes a guest cart-session token from two
// independently generated random base-36 fragments. This is a correlation
// key for guest carts, not a security token.
func NewSessionToken() string {
	return randomBase36() + randomBase36()
}

func randomBase36() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// A broken entropy source must never hand out a shared token:
		// colliding guest identities would merge strangers' carts.
		panic("cart-session token entropy unavailable: " + err.Error())
	}
	return strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)
}
