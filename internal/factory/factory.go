package factory

import (
	"fmt"

	"github.com/mkorchagin/checkoutflow/internal/domain"
	"github.com/mkorchagin/checkoutflow/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type digitalFactory struct {
	logger *zap.Logger
}

type physicalFactory struct {
	logger *zap.Logger
}

func NewDigital(logger *zap.Logger) (port.ProductFactory, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	return &digitalFactory{logger: logger}, nil
}

func NewPhysical(logger *zap.Logger) (port.ProductFactory, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	return &physicalFactory{logger: logger}, nil
}

// NewForFamily picks the concrete factory for a parsed family name.
func NewForFamily(family domain.ProductFamily, logger *zap.Logger) (port.ProductFactory, error) {
	switch family {
	case domain.ProductFamilyDigital:
		return NewDigital(logger)
	case domain.ProductFamilyPhysical:
		return NewPhysical(logger)
	default:
		return nil, fmt.Errorf("unknown product family[%s]", family)
	}
}

func (f *digitalFactory) Family() domain.ProductFamily {
	return domain.ProductFamilyDigital
}

func (f *digitalFactory) CreateDigitalProduct(name string, price domain.Money, downloadURL string) (domain.Product, error) {
	p, err := domain.NewDigitalProduct(name, price, downloadURL)
	if err != nil {
		return nil, fmt.Errorf("domain.NewDigitalProduct: %w", err)
	}

	return p, nil
}

func (f *digitalFactory) CreatePhysicalProduct(name string, price domain.Money, weightKg decimal.Decimal) (domain.Product, error) {
	warnCrossFamily(f.logger, domain.ProductFamilyDigital, domain.ProductFamilyPhysical, name)

	p, err := domain.NewPhysicalProduct(name, price, weightKg)
	if err != nil {
		return nil, fmt.Errorf("domain.NewPhysicalProduct: %w", err)
	}

	return p, nil
}

func (f *digitalFactory) CreateOrder() (*domain.Order, error) {
	return domain.NewOrder(), nil
}

func (f *physicalFactory) Family() domain.ProductFamily {
	return domain.ProductFamilyPhysical
}

func (f *physicalFactory) CreateDigitalProduct(name string, price domain.Money, downloadURL string) (domain.Product, error) {
	warnCrossFamily(f.logger, domain.ProductFamilyPhysical, domain.ProductFamilyDigital, name)

	p, err := domain.NewDigitalProduct(name, price, downloadURL)
	if err != nil {
		return nil, fmt.Errorf("domain.NewDigitalProduct: %w", err)
	}

	return p, nil
}

func (f *physicalFactory) CreatePhysicalProduct(name string, price domain.Money, weightKg decimal.Decimal) (domain.Product, error) {
	p, err := domain.NewPhysicalProduct(name, price, weightKg)
	if err != nil {
		return nil, fmt.Errorf("domain.NewPhysicalProduct: %w", err)
	}

	return p, nil
}

func (f *physicalFactory) CreateOrder() (*domain.Order, error) {
	return domain.NewOrder(), nil
}

func warnCrossFamily(logger *zap.Logger, factoryFamily, requested domain.ProductFamily, productName string) {
	logger.Warn("cross-family product creation",
		zap.String("factory_family", string(factoryFamily)),
		zap.String("requested_family", string(requested)),
		zap.String("product", productName))
}
