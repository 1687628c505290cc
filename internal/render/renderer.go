package render

import (
	"strings"

	"github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/pricing"
	"github.com/angelmondragon/storefront/pkg/enums"
	"github.com/angelmondragon/storefront/pkg/money"
)

const (
	// PlaceholderBackground is drawn when a line has neither image nor style.
	PlaceholderBackground = "#eee"
	// EmptyMessage is shown in place of the item list when the cart is empty.
	EmptyMessage = "Keranjang Anda masih kosong."
)

// Visual describes how to draw a line thumbnail.
type Visual struct {
	Kind  enums.VisualKind `json:"kind"`
	Value string           `json:"value"`
}

// Line is the display projection of a single cart entry.
type Line struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceLabel string `json:"price_label"`
	Quantity   int    `json:"quantity"`
	Visual     Visual `json:"visual"`
}

// View is a full projection of the cart. It is rebuilt from scratch on every call.
type View struct {
	Empty           bool           `json:"empty"`
	EmptyMessage    string         `json:"empty_message,omitempty"`
	CheckoutVisible bool           `json:"checkout_visible"`
	ItemCount       int            `json:"item_count"`
	Lines           []Line         `json:"lines"`
	Totals          pricing.Totals `json:"totals"`
	TotalLabel      string         `json:"total_label"`
}

// Renderer projects cart snapshots into views.
type Renderer struct {
	engine *pricing.Engine
}

// NewRenderer wires the pricing engine used for totals; nil uses default tiers.
func NewRenderer(engine *pricing.Engine) *Renderer {
	if engine == nil {
		engine = pricing.NewEngine(nil)
	}
	return &Renderer{engine: engine}
}

// Render projects the cart without shipping; the total label shows the subtotal.
func (r *Renderer) Render(reader cart.Reader) View {
	items := reader.Items()
	totals := r.engine.Quote(items, pricing.Selection{Region: enums.ShippingRegionLocal})
	return build(items, totals)
}

// RenderWithShipping projects the cart with the shipping-inclusive total label.
func (r *Renderer) RenderWithShipping(reader cart.Reader, sel pricing.Selection) View {
	items := reader.Items()
	return build(items, r.engine.Quote(items, sel))
}

func build(items []cart.LineItem, totals pricing.Totals) View {
	view := View{
		Empty:           len(items) == 0,
		CheckoutVisible: len(items) > 0,
		ItemCount:       cart.ItemCount(items),
		Lines:           make([]Line, 0, len(items)),
		Totals:          totals,
		TotalLabel:      money.Format(totals.Total),
	}
	if view.Empty {
		view.EmptyMessage = EmptyMessage
		return view
	}
	for _, item := range items {
		view.Lines = append(view.Lines, Line{
			ID:         item.ID,
			Name:       item.Name,
			PriceLabel: money.Format(item.UnitPrice),
			Quantity:   item.Quantity,
			Visual:     ResolveVisual(item.Image),
		})
	}
	return view
}

// ResolveVisual picks image URL, then style descriptor, then the placeholder.
func ResolveVisual(ref cart.ImageRef) Visual {
	if url := strings.TrimSpace(ref.URL); url != "" {
		return Visual{Kind: enums.VisualKindImage, Value: url}
	}
	if style := strings.TrimSpace(ref.Style); style != "" {
		return Visual{Kind: enums.VisualKindStyle, Value: style}
	}
	return Visual{Kind: enums.VisualKindPlaceholder, Value: PlaceholderBackground}
}
