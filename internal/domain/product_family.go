package domain

import (
	"errors"

	"github.com/samber/lo"
)

type ProductFamily string

// remember to add new families to the validProductFamilies map
const (
	ProductFamilyDigital  ProductFamily = "digital"
	ProductFamilyPhysical ProductFamily = "physical"
)

var validProductFamilies = map[ProductFamily]struct{}{
	ProductFamilyDigital:  {},
	ProductFamilyPhysical: {},
}

func ToProductFamily(s string) (ProductFamily, error) {
	family := ProductFamily(s)
	if _, ok := validProductFamilies[family]; ok {
		return family, nil
	}

	return "", errors.New("invalid product family")
}

func ProductFamilies() []ProductFamily {
	return lo.Keys(validProductFamilies)
}
