package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkorchagin/checkoutflow/internal/port"
	"go.uber.org/zap"
)

var ErrEmptyHistory = errors.New("nothing to undo: history is empty")

// Invoker owns the command history. Each workflow session needs its
// own instance; the history is never shared.
type Invoker struct {
	history []port.Command
	logger  *zap.Logger
}

func NewInvoker(logger *zap.Logger) (*Invoker, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	return &Invoker{logger: logger}, nil
}

// ExecuteCommand runs the command and records it whatever the outcome.
// A failed command stays in history so that undoing it can report there
// is nothing to roll back.
func (i *Invoker) ExecuteCommand(ctx context.Context, cmd port.Command) error {
	if cmd == nil {
		return fmt.Errorf("cmd is nil")
	}

	err := cmd.Execute(ctx)
	if err != nil {
		i.logger.Warn("command execution failed",
			zap.String("command", cmd.Name()),
			zap.String("state", string(cmd.State())),
			zap.Error(err))
	}

	i.history = append(i.history, cmd)

	if err != nil {
		return fmt.Errorf("cmd.Execute[%s]: %w", cmd.Name(), err)
	}

	return nil
}

// UndoLastCommand pops the most recent command and hands it to its own
// Undo. Popping happens before undoing: the command leaves the history
// either way.
func (i *Invoker) UndoLastCommand(ctx context.Context) error {
	if len(i.history) == 0 {
		i.logger.Warn("nothing to undo: history is empty")
		return ErrEmptyHistory
	}

	last := i.history[len(i.history)-1]
	i.history = i.history[:len(i.history)-1]

	if err := last.Undo(ctx); err != nil {
		i.logger.Warn("command undo reported",
			zap.String("command", last.Name()),
			zap.String("state", string(last.State())),
			zap.Error(err))
		return fmt.Errorf("cmd.Undo[%s]: %w", last.Name(), err)
	}

	return nil
}

func (i *Invoker) Len() int {
	return len(i.history)
}
