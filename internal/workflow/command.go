package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mkorchagin/checkoutflow/internal/domain"
)

var (
	ErrAlreadyExecuted = errors.New("command already executed")
	ErrNotExecuted     = errors.New("command not executed")
	ErrNothingToUndo   = errors.New("nothing to undo")

	ErrPaymentDeclined = errors.New("payment declined")
)

// PlaceOrderCommand commits one order and can cancel it again.
type PlaceOrderCommand struct {
	processor *OrderProcessor
	order     *domain.Order
	state     domain.CommandState
}

func NewPlaceOrderCommand(processor *OrderProcessor, order *domain.Order) (*PlaceOrderCommand, error) {
	if processor == nil {
		return nil, fmt.Errorf("processor is nil")
	}
	if order == nil {
		return nil, fmt.Errorf("order is nil")
	}

	return &PlaceOrderCommand{
		processor: processor,
		order:     order,
		state:     domain.CommandStatePending,
	}, nil
}

func (c *PlaceOrderCommand) Name() string {
	return "place_order"
}

func (c *PlaceOrderCommand) State() domain.CommandState {
	return c.state
}

func (c *PlaceOrderCommand) Execute(ctx context.Context) error {
	if c.state != domain.CommandStatePending {
		return fmt.Errorf("%w: state is %s", ErrAlreadyExecuted, c.state)
	}

	if err := c.processor.PlaceOrder(ctx, c.order); err != nil {
		c.state = domain.CommandStateFailed
		return fmt.Errorf("processor.PlaceOrder: %w", err)
	}

	c.state = domain.CommandStateExecuted

	return nil
}

func (c *PlaceOrderCommand) Undo(ctx context.Context) error {
	if c.state != domain.CommandStateExecuted {
		return fmt.Errorf("%w: state is %s", ErrNotExecuted, c.state)
	}

	if err := c.processor.CancelOrder(ctx, c.order); err != nil {
		return fmt.Errorf("processor.CancelOrder: %w", err)
	}

	c.state = domain.CommandStateUndone

	return nil
}

// ProcessPaymentCommand authorizes payment for an order's total and,
// when that succeeded, can roll the payment back once.
type ProcessPaymentCommand struct {
	payments *PaymentSystem
	order    *domain.Order
	card     domain.Card
	state    domain.CommandState

	// assigned only on successful authorization, immutable afterwards
	transactionID string
}

func NewProcessPaymentCommand(payments *PaymentSystem, order *domain.Order, card domain.Card) (*ProcessPaymentCommand, error) {
	if payments == nil {
		return nil, fmt.Errorf("payments is nil")
	}
	if order == nil {
		return nil, fmt.Errorf("order is nil")
	}
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("card.Validate: %w", err)
	}

	return &ProcessPaymentCommand{
		payments: payments,
		order:    order,
		card:     card,
		state:    domain.CommandStatePending,
	}, nil
}

func (c *ProcessPaymentCommand) Name() string {
	return "process_payment"
}

func (c *ProcessPaymentCommand) State() domain.CommandState {
	return c.state
}

// TransactionID is empty unless an authorization succeeded.
func (c *ProcessPaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *ProcessPaymentCommand) Execute(ctx context.Context) error {
	if c.state != domain.CommandStatePending {
		return fmt.Errorf("%w: state is %s", ErrAlreadyExecuted, c.state)
	}

	ok, err := c.payments.AuthorizePayment(ctx, c.card, c.order.TotalAmount())
	if err != nil {
		c.state = domain.CommandStateFailed
		return fmt.Errorf("payments.AuthorizePayment: %w", err)
	}

	if !ok {
		c.state = domain.CommandStateFailed
		return fmt.Errorf("order[%s]: %w", c.order.ID(), ErrPaymentDeclined)
	}

	c.state = domain.CommandStateExecuted
	c.transactionID = uuid.NewString()

	return nil
}

func (c *ProcessPaymentCommand) Undo(ctx context.Context) error {
	switch c.state {
	case domain.CommandStatePending:
		return fmt.Errorf("%w: payment was never executed", ErrNotExecuted)
	case domain.CommandStateFailed:
		return fmt.Errorf("%w: payment failed", ErrNothingToUndo)
	case domain.CommandStateUndone:
		return fmt.Errorf("%w: rollback already attempted", ErrNothingToUndo)
	}

	if c.transactionID == "" {
		return fmt.Errorf("%w: no transaction identifier", ErrNothingToUndo)
	}

	if err := c.payments.RollbackPayment(ctx, c.transactionID); err != nil {
		return fmt.Errorf("payments.RollbackPayment: %w", err)
	}

	c.state = domain.CommandStateUndone

	return nil
}
