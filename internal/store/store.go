package store

import (
	"context"
	"errors"

	"study-tracker/internal/model"
)

var ErrNotFound = errors.New("user not found")

// Store persists user documents keyed by name. SaveUser is a
// whole-document upsert; there is no partial update primitive.
type Store interface {
	FindUser(ctx context.Context, name string) (*model.User, error)
	SaveUser(ctx context.Context, u *model.User) error
}
