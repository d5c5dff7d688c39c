package repository

import (
	"context"
	"errors"

	"closet/internal/domain/entity"
)

// ErrProviderAlreadyLinked is returned when the (provider, provider_user_id)
// pair is already linked to a user.
var ErrProviderAlreadyLinked = errors.New("provider identity already linked")

// AuthProviderRepository defines persistence operations for external
// identity provider links.
type AuthProviderRepository interface {
	// Link persists a new provider link. Fails with
	// ErrProviderAlreadyLinked when the pair is taken.
	Link(ctx context.Context, link *entity.AuthProvider) error

	// FindByProvider retrieves a link by the unique provider pair.
	FindByProvider(ctx context.Context, provider, providerUserID string) (*entity.AuthProvider, error)
}
