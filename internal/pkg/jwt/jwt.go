package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

const internalScope = "interne"

// Generator signs the service tokens this service presents to the internal
// endpoints of its collaborators.
type Generator struct {
	secret []byte
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
	}
}

type ServiceClaims struct {
	jwt.RegisteredClaims

	Service string `json:"service"`
	Scope   string `json:"scope"`
}

func (g *Generator) GenerateServiceToken(service string) (string, error) {
	claims := ServiceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: service,
		},
		Service: service,
		Scope:   internalScope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign service JWT token: %w", err)
	}

	return tokenString, nil
}

func (g *Generator) ValidateServiceToken(tokenString string) (*ServiceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ServiceClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse service JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*ServiceClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid service JWT token")
}
