package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
)

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

func New() (port.TokenService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	s := PasetoToken{
		parser: &parser,
		key:    &key,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(payload *port.TokenPayload) (string, error) {
	token := paseto.NewToken()
	token.SetExpiration(time.Now().Add(1000 * time.Hour))

	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
