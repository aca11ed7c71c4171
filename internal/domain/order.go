package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderAlreadyPlaced = errors.New("order already placed")
	ErrOrderNotPlaced     = errors.New("order not placed")
)

// Order owns its products: items are append-only and never shared
// between orders.
type Order struct {
	id        uuid.UUID
	status    OrderStatus
	items     []Product
	createdAt time.Time
}

func NewOrder() *Order {
	return &Order{
		id:        uuid.New(),
		status:    OrderStatusPending,
		createdAt: time.Now(),
	}
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) Status() OrderStatus  { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) Items() []Product {
	return slices.Clone(o.items)
}

// AddItem is the only mutator of the item sequence.
// Items of a different currency than the existing ones are rejected,
// which keeps TotalAmount a plain sum.
func (o *Order) AddItem(p Product) error {
	if p == nil {
		return errors.New("product is nil")
	}

	if len(o.items) > 0 && p.Price().Currency != o.items[0].Price().Currency {
		return fmt.Errorf("item[%s]: %w", p.Name(), ErrCurrencyMismatch)
	}

	o.items = append(o.items, p)

	return nil
}

// TotalAmount is recomputed on every read so it always reflects the
// current items.
func (o *Order) TotalAmount() Money {
	var total Money

	for i, p := range o.items {
		if i == 0 {
			total = p.Price()
			continue
		}
		total.Amount = total.Amount.Add(p.Price().Amount)
	}

	return total
}

func (o *Order) Place() error {
	if o.status == OrderStatusPlaced {
		return fmt.Errorf("order[%s]: %w", o.id, ErrOrderAlreadyPlaced)
	}

	o.status = OrderStatusPlaced

	return nil
}

func (o *Order) Cancel() error {
	if o.status != OrderStatusPlaced {
		return fmt.Errorf("order[%s] is %s: %w", o.id, o.status, ErrOrderNotPlaced)
	}

	o.status = OrderStatusCancelled

	return nil
}

func (o *Order) DisplayDetails() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order %s [%s]\n", o.id, o.status)
	for i, p := range o.items {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, p.Display())
	}
	fmt.Fprintf(&b, "  Total: %s", o.TotalAmount())

	return b.String()
}
