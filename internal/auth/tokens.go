package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind names the record a token was issued for.
type Kind string

const (
	KindClient     Kind = "cliente"
	KindAddress    Kind = "direccion"
	KindBook       Kind = "libro"
	KindAuthor     Kind = "autor"
	KindBookAuthor Kind = "libroAutor"
	KindSale       Kind = "venta_permuta"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenMissing = errors.New("missing token")
)

// Claims are the JWT claims carried by every access token. The subject is
// the numeric id of the record named by Kind.
type Claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 access tokens.
type TokenIssuer struct {
	signingKey []byte
	issuer     string
}

func NewTokenIssuer(signingKey []byte, issuer string) *TokenIssuer {
	return &TokenIssuer{
		signingKey: signingKey,
		issuer:     issuer,
	}
}

// Issue signs a token for the record kind/id that expires after ttl.
func (ti *TokenIssuer) Issue(kind Kind, id uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ti.issuer,
			Subject:   strconv.FormatUint(uint64(id), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates signature, issuer and expiry and returns the claims.
func (ti *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, ErrTokenMissing)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return ti.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ti.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrUnauthorized, ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, ErrTokenInvalid)
	}
	return claims, nil
}

// IdentityOf returns the client id a client token was issued for. Tokens
// minted for other record kinds are rejected.
func (ti *TokenIssuer) IdentityOf(tokenString string) (uint, error) {
	claims, err := ti.Parse(tokenString)
	if err != nil {
		return 0, err
	}
	if claims.Kind != KindClient {
		return 0, fmt.Errorf("%w: %w", ErrUnauthorized, ErrTokenInvalid)
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %w", ErrUnauthorized, ErrTokenInvalid)
	}
	return uint(id), nil
}
