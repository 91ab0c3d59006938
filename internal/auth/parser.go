package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/omran/construction-projects/internal/model"
)

// Parser validates HMAC-signed access tokens and extracts the principal.
type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (p *Parser) Parse(token string) (model.Principal, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return model.Principal{}, err
	}
	if !parsed.Valid {
		return model.Principal{}, jwt.ErrTokenUnverifiable
	}
	return model.Principal{
		UserID: claims.Subject,
		Role:   model.Role(claims.Role),
	}, nil
}
