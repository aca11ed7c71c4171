package port

import (
	"context"

	"github.com/mkorchagin/checkoutflow/internal/domain"
)

// PaymentGateway is the uniform payment contract the workflow layer
// programs against.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, card domain.Card, amount domain.Money) (bool, error)
	RefundPayment(ctx context.Context, transactionID string) (bool, error)
}

// LegacyProcessor is the incompatible backend the gateway adapter
// translates to. It has no refund operation.
type LegacyProcessor interface {
	MakePayment(ctx context.Context, amount domain.Money, cardNumber string, expiryMonth, expiryYear int) (bool, error)
}
