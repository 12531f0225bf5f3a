package usecase

import (
	"shopdispatch/internal/domain/user"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrUnresolvedIdentity = errs.New("caller identity could not be resolved")

// TokenValidator resolves an opaque bearer credential to a principal.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrUnresolvedIdentity)
	}

	role := user.Role(claims.Role)
	if !role.IsValid() {
		return uuid.Nil, "", ErrUnresolvedIdentity
	}

	return claims.UserID, role, nil
}
