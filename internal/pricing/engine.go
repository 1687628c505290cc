package pricing

import (
	"github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/pkg/config"
	"github.com/angelmondragon/storefront/pkg/enums"
	"github.com/angelmondragon/storefront/pkg/money"
)

// Default interlocal tier costs.
const (
	DefaultRegularCost int64 = 25000
	DefaultFastCost    int64 = 50000
	DefaultCargoCost   int64 = 100000
)

// Selection is the buyer's shipping choice. Service only matters for interlocal.
type Selection struct {
	Region  enums.ShippingRegion  `json:"region"`
	Service enums.ShippingService `json:"service,omitempty"`
}

// Totals is a point-in-time price breakdown.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// Tiers maps interlocal services to their fixed cost.
type Tiers map[enums.ShippingService]int64

// DefaultTiers returns the stock tier table.
func DefaultTiers() Tiers {
	return Tiers{
		enums.ShippingServiceRegular: DefaultRegularCost,
		enums.ShippingServiceFast:    DefaultFastCost,
		enums.ShippingServiceCargo:   DefaultCargoCost,
	}
}

// TiersFromConfig builds the tier table from shipping config.
func TiersFromConfig(cfg config.ShippingConfig) Tiers {
	return Tiers{
		enums.ShippingServiceRegular: cfg.RegularCost,
		enums.ShippingServiceFast:    cfg.FastCost,
		enums.ShippingServiceCargo:   cfg.CargoCost,
	}
}

// Engine derives totals from cart contents and a shipping selection. It keeps no
// state besides the tier table, so callers recompute after every mutation.
type Engine struct {
	tiers Tiers
}

// NewEngine copies tiers; a nil table falls back to DefaultTiers.
func NewEngine(tiers Tiers) *Engine {
	if tiers == nil {
		tiers = DefaultTiers()
	}
	copied := make(Tiers, len(tiers))
	for svc, cost := range tiers {
		copied[svc] = cost
	}
	return &Engine{tiers: copied}
}

// ShippingCost is zero for local delivery regardless of service. Interlocal costs
// come from the tier table; an unknown service costs nothing.
func (e *Engine) ShippingCost(sel Selection) int64 {
	if sel.Region != enums.ShippingRegionInterlocal {
		return 0
	}
	return e.tiers[sel.Service]
}

// Quote computes subtotal, shipping and grand total for a snapshot of items.
func (e *Engine) Quote(items []cart.LineItem, sel Selection) Totals {
	subtotal := cart.Subtotal(items)
	shipping := e.ShippingCost(sel)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    money.Add(subtotal, shipping),
	}
}

// QuoteCart snapshots the reader and prices it.
func (e *Engine) QuoteCart(reader cart.Reader, sel Selection) Totals {
	return e.Quote(reader.Items(), sel)
}
