package service

import (
	"github.com/rwooga/paycore/internal/core/domain"
)

type access int

const (
	accessDenied access = iota
	accessOwner
	accessAdmin
)

// canActOnOrder is the single ownership/role check used by every workflow
// method, instead of each endpoint re-implementing its own admin test.
func canActOnOrder(actor domain.Actor, order *domain.Order) access {
	if actor.IsAdmin() {
		return accessAdmin
	}
	if order != nil && order.UserID == actor.UserID {
		return accessOwner
	}
	return accessDenied
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
