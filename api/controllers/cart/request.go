package cart

import (
	"strings"

	"github.com/angelmondragon/storefront/internal/pricing"
	"github.com/angelmondragon/storefront/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
)

const (
	maxIDLength   = 128
	maxNameLength = 200
)

type addItemRequest struct {
	ID         string `json:"id" validate:"required,max=128"`
	Name       string `json:"name" validate:"required,max=200"`
	UnitPrice  *int64 `json:"unit_price" validate:"required,min=0,max=1000000000000"`
	ImageURL   string `json:"image_url" validate:"omitempty,max=2048"`
	ImageStyle string `json:"image_style" validate:"omitempty,max=512"`
	BuyNow     bool   `json:"buy_now"`
}

type changeQuantityRequest struct {
	Delta *int `json:"delta" validate:"required,ne=0,min=-9999,max=9999"`
}

type quoteRequest struct {
	Region  string `json:"region" validate:"required,oneof=local interlocal"`
	Service string `json:"service" validate:"required_if=Region interlocal"`
}

// ParseSelection converts raw form values into a shipping selection. The
// service is only read for interlocal deliveries.
func ParseSelection(region, service string) (pricing.Selection, error) {
	parsedRegion, err := enums.ParseShippingRegion(strings.TrimSpace(region))
	if err != nil {
		return pricing.Selection{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping region").
			WithDetails(map[string]string{"region": "must be one of [local interlocal]"})
	}
	sel := pricing.Selection{Region: parsedRegion}
	if parsedRegion != enums.ShippingRegionInterlocal {
		return sel, nil
	}

	parsedService, err := enums.ParseShippingService(strings.TrimSpace(service))
	if err != nil {
		return pricing.Selection{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping service").
			WithDetails(map[string]string{"service": "must be one of [regular fast cargo]"})
	}
	sel.Service = parsedService
	return sel, nil
}
