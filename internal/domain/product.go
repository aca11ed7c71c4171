package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is what an order holds, regardless of which family created it.
type Product interface {
	Name() string
	Price() Money
	Family() ProductFamily
	Display() string
}

type DigitalProduct struct {
	name        string
	price       Money
	downloadURL string
}

func NewDigitalProduct(name string, price Money, downloadURL string) (DigitalProduct, error) {
	var p DigitalProduct

	if name == "" {
		return p, errors.New("name is empty")
	}
	if price.Amount.IsNegative() {
		return p, fmt.Errorf("price[%s] is negative", price)
	}
	if downloadURL == "" {
		return p, errors.New("downloadURL is empty")
	}

	return DigitalProduct{
		name:        name,
		price:       price,
		downloadURL: downloadURL,
	}, nil
}

func (p DigitalProduct) Name() string          { return p.name }
func (p DigitalProduct) Price() Money          { return p.price }
func (p DigitalProduct) Family() ProductFamily { return ProductFamilyDigital }
func (p DigitalProduct) DownloadURL() string   { return p.downloadURL }

func (p DigitalProduct) Display() string {
	return fmt.Sprintf("[digital] %s, %s, download: %s", p.name, p.price, p.downloadURL)
}

type PhysicalProduct struct {
	name     string
	price    Money
	weightKg decimal.Decimal
}

func NewPhysicalProduct(name string, price Money, weightKg decimal.Decimal) (PhysicalProduct, error) {
	var p PhysicalProduct

	if name == "" {
		return p, errors.New("name is empty")
	}
	if price.Amount.IsNegative() {
		return p, fmt.Errorf("price[%s] is negative", price)
	}
	if weightKg.IsNegative() {
		return p, fmt.Errorf("weight[%s] is negative", weightKg)
	}

	return PhysicalProduct{
		name:     name,
		price:    price,
		weightKg: weightKg,
	}, nil
}

func (p PhysicalProduct) Name() string              { return p.name }
func (p PhysicalProduct) Price() Money              { return p.price }
func (p PhysicalProduct) Family() ProductFamily     { return ProductFamilyPhysical }
func (p PhysicalProduct) WeightKg() decimal.Decimal { return p.weightKg }

func (p PhysicalProduct) Display() string {
	return fmt.Sprintf("[physical] %s, %s, %s kg", p.name, p.price, p.weightKg)
}
