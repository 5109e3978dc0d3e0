package ports

import (
	"context"

	"github.com/bnema/together-notify/internal/domain"
)

type StateSource interface {
	Fetch(ctx context.Context) (domain.GlobalState, error)
}

type ProfileStore interface {
	Get(ctx context.Context) (domain.Profile, bool, error)
}
