package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mkorchagin/checkoutflow/internal/domain"
	"github.com/mkorchagin/checkoutflow/internal/port"
	"go.uber.org/zap"
)

var (
	// ErrInvalidExpiry marks a malformed expiry date; the backend is
	// never invoked in that case.
	ErrInvalidExpiry = errors.New("invalid expiry date")

	// ErrRefundUnsupported marks refunds as a permanent limitation of
	// the legacy integration, distinct from a parse failure. Callers
	// seeing it may need manual reconciliation.
	ErrRefundUnsupported = errors.New("refund not supported by legacy processor")
)

type gatewayAdapter struct {
	legacy port.LegacyProcessor
	logger *zap.Logger
}

// NewGateway adapts a legacy processor to the uniform gateway contract.
func NewGateway(legacy port.LegacyProcessor, logger *zap.Logger) (port.PaymentGateway, error) {
	if legacy == nil {
		return nil, fmt.Errorf("legacy is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	return &gatewayAdapter{
		legacy: legacy,
		logger: logger,
	}, nil
}

func (g *gatewayAdapter) ProcessPayment(ctx context.Context, card domain.Card, amount domain.Money) (bool, error) {
	if err := card.Validate(); err != nil {
		return false, fmt.Errorf("card.Validate: %w", err)
	}

	month, year, err := parseExpiry(card.Expiry)
	if err != nil {
		g.logger.Warn("expiry date rejected",
			zap.String("expiry", card.Expiry),
			zap.Error(err))
		return false, fmt.Errorf("parseExpiry: %w", err)
	}

	ok, err := g.legacy.MakePayment(ctx, amount, card.Number, month, year)
	if err != nil {
		return false, fmt.Errorf("legacy.MakePayment: %w", err)
	}

	return ok, nil
}

func (g *gatewayAdapter) RefundPayment(_ context.Context, transactionID string) (bool, error) {
	g.logger.Warn("refund requested against a backend without refund capability",
		zap.String("transaction_id", transactionID))

	return false, ErrRefundUnsupported
}

// parseExpiry splits a MM/YY expiry into a month and a four-digit year.
// Two-digit years are expanded by adding 2000; this fixed-century
// policy is a known limitation of the legacy integration.
func parseExpiry(s string) (int, int, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected MM/YY, got %q", ErrInvalidExpiry, s)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q is not numeric", ErrInvalidExpiry, parts[0])
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: year %q is not numeric", ErrInvalidExpiry, parts[1])
	}

	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %d out of range", ErrInvalidExpiry, month)
	}

	if year < 0 || year > 99 {
		return 0, 0, fmt.Errorf("%w: year %d is not two-digit", ErrInvalidExpiry, year)
	}

	return month, 2000 + year, nil
}
