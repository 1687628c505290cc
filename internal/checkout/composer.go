package checkout

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/pricing"
	"github.com/angelmondragon/storefront/pkg/config"
	"github.com/angelmondragon/storefront/pkg/enums"
	"github.com/angelmondragon/storefront/pkg/money"
)

// Customer carries the buyer's contact block.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderRequest is the snapshot produced at checkout time.
type OrderRequest struct {
	Customer   Customer            `json:"customer"`
	Payment    enums.PaymentMethod `json:"payment"`
	Selection  pricing.Selection   `json:"selection"`
	Items      []cart.LineItem     `json:"items"`
	Lines      []string            `json:"lines"`
	Totals     pricing.Totals      `json:"totals"`
	Message    string              `json:"message"`
	Target     string              `json:"target"`
	HandoffURL string              `json:"handoff_url"`
}

// Labels holds the human-readable strings rendered into the order message.
type Labels struct {
	ShopName string
	Local    string
	Services map[enums.ShippingService]string
}

// DefaultLabels returns the storefront's stock wording.
func DefaultLabels() Labels {
	return Labels{
		ShopName: "Tenun Pringgasela",
		Local:    "Dalam Daerah ( Lombok )",
		Services: map[enums.ShippingService]string{
			enums.ShippingServiceRegular: "Reguler",
			enums.ShippingServiceFast:    "Cepat",
			enums.ShippingServiceCargo:   "Kargo",
		},
	}
}

// LabelsFromConfig reads message wording from checkout config.
func LabelsFromConfig(cfg config.CheckoutConfig) Labels {
	return Labels{
		ShopName: cfg.ShopName,
		Local:    cfg.LocalLabel,
		Services: map[enums.ShippingService]string{
			enums.ShippingServiceRegular: cfg.RegularLabel,
			enums.ShippingServiceFast:    cfg.FastLabel,
			enums.ShippingServiceCargo:   cfg.CargoLabel,
		},
	}
}

var paymentLabels = map[enums.PaymentMethod]string{
	enums.PaymentMethodTransfer: "Transfer Bank",
	enums.PaymentMethodEWallet:  "E-Wallet",
	enums.PaymentMethodCOD:      "COD (Bayar di Tempat)",
}

// ComposerParams wires a Composer.
type ComposerParams struct {
	Engine          *pricing.Engine
	ContactEndpoint string
	Labels          Labels
}

// Composer turns a cart snapshot into an OrderRequest. It never mutates the cart.
type Composer struct {
	engine   *pricing.Engine
	endpoint string
	labels   Labels
}

// NewComposer validates params and builds a Composer.
func NewComposer(params ComposerParams) (*Composer, error) {
	if strings.TrimSpace(params.ContactEndpoint) == "" {
		return nil, fmt.Errorf("contact endpoint required")
	}
	engine := params.Engine
	if engine == nil {
		engine = pricing.NewEngine(nil)
	}
	labels := params.Labels
	if labels.ShopName == "" && labels.Local == "" && len(labels.Services) == 0 {
		labels = DefaultLabels()
	}
	return &Composer{
		engine:   engine,
		endpoint: params.ContactEndpoint,
		labels:   labels,
	}, nil
}

// Compose snapshots totals and renders the handoff message. An empty cart yields ErrEmptyCart.
func (c *Composer) Compose(reader cart.Reader, sel pricing.Selection, customer Customer, payment enums.PaymentMethod) (*OrderRequest, error) {
	items := reader.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := c.engine.Quote(items, sel)
	lines := Itemize(items)
	message := c.render(customer, lines, totals, sel, payment)

	return &OrderRequest{
		Customer:   customer,
		Payment:    payment,
		Selection:  sel,
		Items:      items,
		Lines:      lines,
		Totals:     totals,
		Message:    message,
		Target:     c.endpoint,
		HandoffURL: HandoffURL(c.endpoint, message),
	}, nil
}

// Itemize renders one line per entry in insertion order.
func Itemize(items []cart.LineItem) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s (%dx) @ %s", item.Name, item.Quantity, money.Format(item.UnitPrice)))
	}
	return lines
}

func (c *Composer) render(customer Customer, lines []string, totals pricing.Totals, sel pricing.Selection, payment enums.PaymentMethod) string {
	b := &MessageBuilder{}
	b.Linef("Halo %s, saya ingin memesan:", c.labels.ShopName).
		Blank().
		Linef("*Data Pemesan:*").
		Linef("Nama: %s", customer.Name).
		Linef("HP: %s", customer.Phone).
		Linef("Alamat: %s", customer.Address).
		Blank().
		Linef("*Detail Pesanan:*").
		Lines(lines...).
		Blank().
		Separator().
		Linef("Subtotal: %s", money.Format(totals.Subtotal)).
		Linef("Ongkos Kirim: %s", money.Format(totals.Shipping)).
		Linef("*Total: %s*", money.Format(totals.Total)).
		Separator().
		Blank().
		Linef("Pengiriman: %s", c.ShippingLabel(sel)).
		Linef("Metode Pembayaran: %s", PaymentLabel(payment)).
		Blank().
		Linef("Mohon konfirmasi pesanan ini. Terima kasih!")
	return b.String()
}

// ShippingLabel describes the selection, e.g. "Luar Daerah (Cepat)".
func (c *Composer) ShippingLabel(sel pricing.Selection) string {
	if sel.Region != enums.ShippingRegionInterlocal {
		return c.labels.Local
	}
	service, ok := c.labels.Services[sel.Service]
	if !ok || service == "" {
		service = sel.Service.String()
	}
	return fmt.Sprintf("Luar Daerah (%s)", service)
}

// PaymentLabel names the payment method; anything unrecognised reads as cash on delivery.
func PaymentLabel(method enums.PaymentMethod) string {
	if label, ok := paymentLabels[method]; ok {
		return label
	}
	return paymentLabels[enums.PaymentMethodCOD]
}
