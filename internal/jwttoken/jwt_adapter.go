package jwttoken

import (
	"aurum/internal/platform/middleware"
)

// Adapter presents the token service through the middleware's validator
// interface.
type Adapter struct {
	service *Service
}

func NewAdapter(service *Service) *Adapter {
	return &Adapter{service: service}
}

func (a *Adapter) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := a.service.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.JWTClaims{
		ActorID:   claims.ActorID,
		ActorName: claims.ActorName,
		Role:      claims.Role,
		SessionID: claims.SessionID,
	}, nil
}
