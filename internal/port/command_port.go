package port

import (
	"context"

	"github.com/mkorchagin/checkoutflow/internal/domain"
)

// Command is one reversible workflow action. Undo before a successful
// Execute is reported, not fatal.
type Command interface {
	Name() string
	State() domain.CommandState

	Execute(ctx context.Context) error
	Undo(ctx context.Context) error
}
