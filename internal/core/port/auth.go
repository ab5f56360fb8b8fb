package port

import "github.com/rwooga/paycore/internal/core/domain"

type TokenPayload struct {
	UserID uint64
	Role   domain.Role
}

func (p *TokenPayload) Actor() domain.Actor {
	return domain.Actor{UserID: p.UserID, Role: p.Role}
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(payload *TokenPayload) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
