package store

import (
	"context"
	"errors"

	"github.com/wealthnest/client-go/models"
)

// ErrNoToken is returned by Load when no token pair has been saved.
var ErrNoToken = errors.New("store: no token saved")

// TokenStore is the durable storage behind the session. It holds exactly one
// access/refresh pair, and both strings are always written and removed together.
type TokenStore interface {
	Load(ctx context.Context) (models.Token, error)
	Save(ctx context.Context, token models.Token) error
	Clear(ctx context.Context) error
}
