package identity

import (
	"context"

	"github.com/loja/backend/internal/domain/shared"
)

// UserRepository stores users. Emails are compared in normalised form.
type UserRepository interface {
	shared.Repository[User]

	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
