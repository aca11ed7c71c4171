package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkorchagin/checkoutflow/internal/domain"
	"github.com/mkorchagin/checkoutflow/internal/payment"
	"github.com/mkorchagin/checkoutflow/internal/port"
	"go.uber.org/zap"
)

// OrderProcessor commits and cancels orders on behalf of commands.
type OrderProcessor struct {
	logger *zap.Logger
}

func NewOrderProcessor(logger *zap.Logger) (*OrderProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	return &OrderProcessor{logger: logger}, nil
}

func (p *OrderProcessor) PlaceOrder(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	if err := order.Place(); err != nil {
		p.logger.Warn("place rejected",
			zap.String("order_id", order.ID().String()),
			zap.Error(err))
		return fmt.Errorf("order.Place: %w", err)
	}

	p.logger.Info("order placed",
		zap.String("order_id", order.ID().String()),
		zap.String("total", order.TotalAmount().String()))

	return nil
}

func (p *OrderProcessor) CancelOrder(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	if err := order.Cancel(); err != nil {
		p.logger.Warn("cancel rejected",
			zap.String("order_id", order.ID().String()),
			zap.Error(err))
		return fmt.Errorf("order.Cancel: %w", err)
	}

	p.logger.Info("order cancelled",
		zap.String("order_id", order.ID().String()))

	return nil
}

// PaymentSystem fronts the gateway for commands.
type PaymentSystem struct {
	gateway port.PaymentGateway
	logger  *zap.Logger
}

func NewPaymentSystem(gateway port.PaymentGateway, logger *zap.Logger) (*PaymentSystem, error) {
	if gateway == nil {
		return nil, fmt.Errorf("gateway is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	return &PaymentSystem{
		gateway: gateway,
		logger:  logger,
	}, nil
}

func (s *PaymentSystem) AuthorizePayment(ctx context.Context, card domain.Card, amount domain.Money) (bool, error) {
	ok, err := s.gateway.ProcessPayment(ctx, card, amount)
	if err != nil {
		return false, fmt.Errorf("gateway.ProcessPayment: %w", err)
	}

	if !ok {
		s.logger.Warn("payment declined", zap.String("amount", amount.String()))
	}

	return ok, nil
}

// RollbackPayment never fails the caller over the backend's missing
// refund capability; that outcome is logged for reconciliation instead.
func (s *PaymentSystem) RollbackPayment(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		return fmt.Errorf("transactionID is empty")
	}

	ok, err := s.gateway.RefundPayment(ctx, transactionID)
	if err != nil {
		if errors.Is(err, payment.ErrRefundUnsupported) {
			s.logger.Warn("refund unsupported, manual reconciliation may be needed",
				zap.String("transaction_id", transactionID))
			return nil
		}
		return fmt.Errorf("gateway.RefundPayment: %w", err)
	}

	if !ok {
		s.logger.Warn("refund declined",
			zap.String("transaction_id", transactionID))
		return nil
	}

	s.logger.Info("refund completed",
		zap.String("transaction_id", transactionID))

	return nil
}
