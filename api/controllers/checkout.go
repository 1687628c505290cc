package controllers

import (
	"net/http"

	cartcontrollers "github.com/angelmondragon/storefront/api/controllers/cart"
	"github.com/angelmondragon/storefront/api/responses"
	"github.com/angelmondragon/storefront/api/validators"
	checkoutsvc "github.com/angelmondragon/storefront/internal/checkout"
	"github.com/angelmondragon/storefront/internal/pricing"
	"github.com/angelmondragon/storefront/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/money"
)

const (
	maxCustomerNameLength = 120
	maxPhoneLength        = 32
	maxAddressLength      = 500
)

type checkoutRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Address string `json:"address" validate:"required,max=500"`
	Region  string `json:"region" validate:"required,oneof=local interlocal"`
	Service string `json:"service" validate:"required_if=Region interlocal"`
	Payment string `json:"payment" validate:"required,oneof=transfer ewallet cod"`
}

type checkoutResponse struct {
	HandoffURL string            `json:"handoff_url"`
	Message    string            `json:"message"`
	Lines      []string          `json:"lines"`
	Totals     pricing.Totals    `json:"totals"`
	Selection  pricing.Selection `json:"selection"`
	TotalLabel string            `json:"total_label"`
}

// Checkout composes the order handoff for the session cart and clears the cart
// once the handoff link is built.
func Checkout(svc checkoutsvc.Service, carts cartcontrollers.SessionCarts, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		store, err := cartcontrollers.StoreFromRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sel, err := cartcontrollers.ParseSelection(payload.Region, payload.Service)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payment, err := enums.ParsePaymentMethod(payload.Payment)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method"))
			return
		}

		customer := checkoutsvc.Customer{
			Name:    validators.SanitizeString(payload.Name, maxCustomerNameLength),
			Phone:   validators.SanitizeString(payload.Phone, maxPhoneLength),
			Address: validators.SanitizeString(payload.Address, maxAddressLength),
		}
		if customer.Name == "" || customer.Phone == "" || customer.Address == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "name, phone and address must not be blank"))
			return
		}

		order, err := svc.Submit(r.Context(), store, checkoutsvc.SubmitInput{
			Customer:  customer,
			Selection: sel,
			Payment:   payment,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, checkoutResponse{
			HandoffURL: order.HandoffURL,
			Message:    order.Message,
			Lines:      order.Lines,
			Totals:     order.Totals,
			Selection:  order.Selection,
			TotalLabel: money.Format(order.Totals.Total),
		})
	}
}
