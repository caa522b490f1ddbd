package identity

import (
	"context"
	"errors"
	"fmt"

	"aussieedu/edu-service/internal/app/edu/entity"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// SupabaseClaims - claims access токена Supabase
// sub - ID пользователя, email - адрес, на который он зарегистрирован
type SupabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTVerifier проверяет HS256 токены, подписанные JWT secret проекта Supabase
type JWTVerifier struct {
	secret   []byte
	audience string
}

// NewJWTVerifier создает verifier для HS256 токенов с заданной audience
func NewJWTVerifier(secret, audience string) *JWTVerifier {
	return &JWTVerifier{
		secret:   []byte(secret),
		audience: audience,
	}
}

// Verify проверяет подпись, срок действия и audience токена
func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (*entity.Identity, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: verifier is not configured", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &SupabaseClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &entity.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
