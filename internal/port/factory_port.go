package port

import (
	"github.com/mkorchagin/checkoutflow/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductFactory creates products of one family plus the orders that
// hold them. A factory may construct the other family's product too,
// it only warns about it: orders are family-agnostic containers.
type ProductFactory interface {
	Family() domain.ProductFamily

	CreateDigitalProduct(name string, price domain.Money, downloadURL string) (domain.Product, error)
	CreatePhysicalProduct(name string, price domain.Money, weightKg decimal.Decimal) (domain.Product, error)

	CreateOrder() (*domain.Order, error)
}
