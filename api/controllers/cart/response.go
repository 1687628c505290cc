package cart

import (
	cartsvc "github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/notify"
	"github.com/angelmondragon/storefront/internal/pricing"
	"github.com/angelmondragon/storefront/internal/render"
)

type addItemResponse struct {
	Item     cartsvc.LineItem `json:"item"`
	Cart     render.View      `json:"cart"`
	OpenCart bool             `json:"open_cart"`
	Toast    *notify.Toast    `json:"toast,omitempty"`
}

type quoteResponse struct {
	Selection pricing.Selection `json:"selection"`
	Cart      render.View       `json:"cart"`
}
