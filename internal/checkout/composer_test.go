package checkout

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/pricing"
	"github.com/angelmondragon/storefront/pkg/config"
	"github.com/angelmondragon/storefront/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
)

const testEndpoint = "https://wa.me/6282359486948"

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	composer, err := NewComposer(ComposerParams{ContactEndpoint: testEndpoint})
	require.NoError(t, err)
	return composer
}

func testCustomer() Customer {
	return Customer{Name: "Baiq Sari", Phone: "081234567890", Address: "Jl. Raya Pringgasela No. 7, Lombok Timur"}
}

func TestNewComposerRequiresEndpoint(t *testing.T) {
	_, err := NewComposer(ComposerParams{})
	require.Error(t, err)
}

func TestComposeEmptyCartFails(t *testing.T) {
	store := cart.NewStore(nil)

	order, err := newTestComposer(t).Compose(store, pricing.Selection{Region: enums.ShippingRegionLocal}, testCustomer(), enums.PaymentMethodCOD)

	require.Nil(t, order)
	require.True(t, errors.Is(err, ErrEmptyCart))
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeEmptyCart, typed.Code())
	assert.True(t, store.IsEmpty())
}

func TestComposeTwoItemsMessage(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, cart.ImageRef{})
	store.AddOrIncrement("2", "Selendang Songket", 85000, cart.ImageRef{})
	store.AddOrIncrement("1", "Tenun A", 150000, cart.ImageRef{})

	sel := pricing.Selection{Region: enums.ShippingRegionInterlocal, Service: enums.ShippingServiceFast}
	order, err := newTestComposer(t).Compose(store, sel, testCustomer(), enums.PaymentMethodTransfer)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Halo Tenun Pringgasela, saya ingin memesan:",
		"",
		"*Data Pemesan:*",
		"Nama: Baiq Sari",
		"HP: 081234567890",
		"Alamat: Jl. Raya Pringgasela No. 7, Lombok Timur",
		"",
		"*Detail Pesanan:*",
		"- Tenun A (2x) @ Rp 150.000",
		"- Selendang Songket (1x) @ Rp 85.000",
		"",
		"--------------------------------",
		"Subtotal: Rp 385.000",
		"Ongkos Kirim: Rp 50.000",
		"*Total: Rp 435.000*",
		"--------------------------------",
		"",
		"Pengiriman: Luar Daerah (Cepat)",
		"Metode Pembayaran: Transfer Bank",
		"",
		"Mohon konfirmasi pesanan ini. Terima kasih!",
	}, "\n")
	assert.Equal(t, want, order.Message)
	assert.Equal(t, pricing.Totals{Subtotal: 385000, Shipping: 50000, Total: 435000}, order.Totals)
	assert.Equal(t, []string{"- Tenun A (2x) @ Rp 150.000", "- Selendang Songket (1x) @ Rp 85.000"}, order.Lines)
	assert.Equal(t, testEndpoint, order.Target)

	u, err := url.Parse(order.HandoffURL)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/6282359486948", u.Path)
	assert.Equal(t, want, u.Query().Get("text"))
	assert.NotContains(t, order.HandoffURL, "\n")
	assert.NotContains(t, order.HandoffURL, " ")
}

func TestComposeDoesNotClearCart(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, cart.ImageRef{})

	_, err := newTestComposer(t).Compose(store, pricing.Selection{Region: enums.ShippingRegionLocal}, testCustomer(), enums.PaymentMethodCOD)
	require.NoError(t, err)

	assert.Len(t, store.Items(), 1)
}

func TestComposeLocalShipping(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddOrIncrement("1", "Tenun A", 150000, cart.ImageRef{})

	order, err := newTestComposer(t).Compose(store, pricing.Selection{Region: enums.ShippingRegionLocal, Service: enums.ShippingServiceCargo}, testCustomer(), enums.PaymentMethodEWallet)
	require.NoError(t, err)

	assert.Zero(t, order.Totals.Shipping)
	assert.Contains(t, order.Message, "Pengiriman: Dalam Daerah ( Lombok )")
	assert.Contains(t, order.Message, "Metode Pembayaran: E-Wallet")
	assert.Contains(t, order.Message, "Ongkos Kirim: Rp 0")
}

func TestShippingLabelFromConfig(t *testing.T) {
	composer, err := NewComposer(ComposerParams{
		ContactEndpoint: testEndpoint,
		Labels: LabelsFromConfig(config.CheckoutConfig{
			ShopName:     "Toko",
			LocalLabel:   "Lokal",
			RegularLabel: "REG",
			FastLabel:    "YES",
			CargoLabel:   "JTR",
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, "Lokal", composer.ShippingLabel(pricing.Selection{Region: enums.ShippingRegionLocal}))
	assert.Equal(t, "Luar Daerah (JTR)", composer.ShippingLabel(pricing.Selection{Region: enums.ShippingRegionInterlocal, Service: enums.ShippingServiceCargo}))
	assert.Equal(t, "Luar Daerah (express)", composer.ShippingLabel(pricing.Selection{Region: enums.ShippingRegionInterlocal, Service: "express"}))
}

func TestPaymentLabel(t *testing.T) {
	assert.Equal(t, "Transfer Bank", PaymentLabel(enums.PaymentMethodTransfer))
	assert.Equal(t, "E-Wallet", PaymentLabel(enums.PaymentMethodEWallet))
	assert.Equal(t, "COD (Bayar di Tempat)", PaymentLabel(enums.PaymentMethodCOD))
	assert.Equal(t, "COD (Bayar di Tempat)", PaymentLabel("cash"))
}
