package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/mkorchagin/checkoutflow/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestOrderTotalAmount(t *testing.T) {
	t.Run("sum of random items", func(t *testing.T) {
		order := domain.NewOrder()

		expected := decimal.Zero
		for i := 0; i < gofakeit.Number(2, 8); i++ {
			p := fakeDigitalProduct(t)
			require.NoError(t, order.AddItem(p))

			expected = expected.Add(p.Price().Amount)
		}

		assertMoney(t, domain.Money{Amount: expected, Currency: currency.USD}, order.TotalAmount())
	})

	t.Run("order of additions does not matter", func(t *testing.T) {
		first, second := fakeDigitalProduct(t), fakeDigitalProduct(t)

		orderA, orderB := domain.NewOrder(), domain.NewOrder()
		require.NoError(t, orderA.AddItem(first))
		require.NoError(t, orderA.AddItem(second))
		require.NoError(t, orderB.AddItem(second))
		require.NoError(t, orderB.AddItem(first))

		assertMoney(t, orderA.TotalAmount(), orderB.TotalAmount())
	})

	t.Run("empty order totals zero", func(t *testing.T) {
		order := domain.NewOrder()

		assert.True(t, order.TotalAmount().IsZero())
	})

	t.Run("total reflects every added item", func(t *testing.T) {
		order := domain.NewOrder()

		running := decimal.Zero
		for i := 0; i < 5; i++ {
			p := fakeDigitalProduct(t)
			require.NoError(t, order.AddItem(p))
			running = running.Add(p.Price().Amount)

			assert.True(t, running.Equal(order.TotalAmount().Amount))
		}
	})
}

func TestOrderAddItem(t *testing.T) {
	t.Run("items keep insertion order", func(t *testing.T) {
		order := domain.NewOrder()

		var names []string
		for i := 0; i < 4; i++ {
			p := fakeDigitalProduct(t)
			require.NoError(t, order.AddItem(p))
			names = append(names, p.Name())
		}

		actual := lo.Map(order.Items(), func(p domain.Product, _ int) string {
			return p.Name()
		})
		assert.Equal(t, names, actual)
	})

	t.Run("nil product fails", func(t *testing.T) {
		order := domain.NewOrder()

		require.EqualError(t, order.AddItem(nil), "product is nil")
	})

	t.Run("currency mismatch fails", func(t *testing.T) {
		order := domain.NewOrder()
		require.NoError(t, order.AddItem(fakeDigitalProduct(t)))

		eurProduct, err := domain.NewDigitalProduct("imported e-book",
			domain.Money{Amount: decimal.NewFromInt(5), Currency: currency.EUR},
			gofakeit.URL())
		require.NoError(t, err)

		require.ErrorIs(t, order.AddItem(eurProduct), domain.ErrCurrencyMismatch)
		assert.Len(t, order.Items(), 1)
	})
}

func TestNewOrderUniqueIDs(t *testing.T) {
	seen := make(map[uuid.UUID]struct{})

	for i := 0; i < 100; i++ {
		order := domain.NewOrder()

		_, exists := seen[order.ID()]
		require.False(t, exists)

		seen[order.ID()] = struct{}{}
		assert.Equal(t, domain.OrderStatusPending, order.Status())
	}
}

func TestOrderPlaceCancel(t *testing.T) {
	t.Run("pending place cancel round trip", func(t *testing.T) {
		order := domain.NewOrder()

		require.NoError(t, order.Place())
		assert.Equal(t, domain.OrderStatusPlaced, order.Status())

		require.NoError(t, order.Cancel())
		assert.Equal(t, domain.OrderStatusCancelled, order.Status())
	})

	t.Run("double place fails", func(t *testing.T) {
		order := domain.NewOrder()
		require.NoError(t, order.Place())

		require.ErrorIs(t, order.Place(), domain.ErrOrderAlreadyPlaced)
		assert.Equal(t, domain.OrderStatusPlaced, order.Status())
	})

	t.Run("cancel of pending order fails", func(t *testing.T) {
		order := domain.NewOrder()

		require.ErrorIs(t, order.Cancel(), domain.ErrOrderNotPlaced)
		assert.Equal(t, domain.OrderStatusPending, order.Status())
	})

	t.Run("double cancel fails", func(t *testing.T) {
		order := domain.NewOrder()
		require.NoError(t, order.Place())
		require.NoError(t, order.Cancel())

		require.ErrorIs(t, order.Cancel(), domain.ErrOrderNotPlaced)
		assert.Equal(t, domain.OrderStatusCancelled, order.Status())
	})

	t.Run("cancelled order can be placed again", func(t *testing.T) {
		order := domain.NewOrder()
		require.NoError(t, order.Place())
		require.NoError(t, order.Cancel())

		require.NoError(t, order.Place())
		assert.Equal(t, domain.OrderStatusPlaced, order.Status())
	})
}

func TestOrderDisplayDetails(t *testing.T) {
	order := domain.NewOrder()
	p := fakeDigitalProduct(t)
	require.NoError(t, order.AddItem(p))

	details := order.DisplayDetails()

	assert.Contains(t, details, order.ID().String())
	assert.Contains(t, details, p.Name())
	assert.Contains(t, details, order.TotalAmount().String())
}

func fakeDigitalProduct(t *testing.T) domain.Product {
	t.Helper()

	price := domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Currency: currency.USD,
	}

	p, err := domain.NewDigitalProduct(gofakeit.ProductName(), price, gofakeit.URL())
	require.NoError(t, err)

	return p
}

func assertMoney(t *testing.T, expected, actual domain.Money) {
	t.Helper()

	// Custom comparer: decimal equality ignores exponent representation
	comparer := cmp.Comparer(func(x, y domain.Money) bool {
		return x.Amount.Equal(y.Amount) && x.Currency == y.Currency
	})

	diff := cmp.Diff(expected, actual, comparer)
	assert.Empty(t, diff)
}
