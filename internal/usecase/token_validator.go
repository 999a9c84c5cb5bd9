package usecase

import (
	"eventhub/internal/domain/user"
	"eventhub/internal/pkg/jwt"
)

// TokenValidator is what the auth middleware depends on, so handlers never
// see the JWT library directly.
type TokenValidator interface {
	ValidateToken(token string) (int64, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (int64, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return 0, "", err
	}

	if claims.TokenType != jwt.TokenTypeAccess {
		return 0, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return 0, "", err
	}

	return claims.UserID, role, nil
}
