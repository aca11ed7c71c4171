package payment

import (
	"context"
	"unicode"

	"github.com/mkorchagin/checkoutflow/internal/domain"
	"github.com/mkorchagin/checkoutflow/internal/port"
)

const minCardDigits = 12

// legacyProcessor is the in-memory stand-in for the backend this
// integration targets. It understands split month/year expiry only and
// exposes no refund operation at all.
type legacyProcessor struct{}

func NewLegacyProcessor() port.LegacyProcessor {
	return legacyProcessor{}
}

func (legacyProcessor) MakePayment(_ context.Context, amount domain.Money, cardNumber string, expiryMonth, expiryYear int) (bool, error) {
	if !amount.Amount.IsPositive() {
		return false, nil
	}

	if countDigits(cardNumber) < minCardDigits {
		return false, nil
	}

	if expiryMonth < 1 || expiryMonth > 12 {
		return false, nil
	}

	if expiryYear < 2000 {
		return false, nil
	}

	return true, nil
}

func countDigits(s string) int {
	var n int
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
