package cart

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront/api/middleware"
	"github.com/angelmondragon/storefront/api/responses"
	"github.com/angelmondragon/storefront/api/validators"
	cartsvc "github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/notify"
	"github.com/angelmondragon/storefront/internal/render"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
)

// SessionCarts resolves the single cart owned by a browser session.
type SessionCarts interface {
	ForSession(sessionID string) *cartsvc.Store
}

// CartFetch renders the session cart.
func CartFetch(carts SessionCarts, renderer *render.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := StoreFromRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, renderer.Render(store))
	}
}

// CartAddItem adds one unit of a product. Buy-now asks the client to open the
// cart; a plain add raises a confirmation toast instead.
func CartAddItem(carts SessionCarts, renderer *render.Renderer, notifier notify.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := StoreFromRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id := validators.SanitizeString(payload.ID, maxIDLength)
		name := validators.SanitizeString(payload.Name, maxNameLength)
		if id == "" || name == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "id and name must not be blank"))
			return
		}

		item := store.AddOrIncrement(
			id,
			name,
			*payload.UnitPrice,
			cartsvc.ImageRef{URL: strings.TrimSpace(payload.ImageURL), Style: strings.TrimSpace(payload.ImageStyle)},
		)

		resp := addItemResponse{
			Item:     item,
			Cart:     renderer.Render(store),
			OpenCart: payload.BuyNow,
		}
		if !payload.BuyNow && notifier != nil {
			toast := notifier.Notify(r.Context(), middleware.SessionIDFromContext(r.Context()), notify.AddedMessage(item.Name))
			resp.Toast = &toast
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, resp)
	}
}

// CartChangeQuantity applies a signed delta; quantities that drop to zero remove
// the line and unknown ids are ignored.
func CartChangeQuantity(carts SessionCarts, renderer *render.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := StoreFromRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := itemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload changeQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.ChangeQuantity(itemID, *payload.Delta)
		responses.WriteSuccess(w, renderer.Render(store))
	}
}

// CartRemoveItem drops a line regardless of quantity.
func CartRemoveItem(carts SessionCarts, renderer *render.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := StoreFromRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID, err := itemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Remove(itemID)
		responses.WriteSuccess(w, renderer.Render(store))
	}
}

// CartClear empties the session cart.
func CartClear(carts SessionCarts, renderer *render.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := StoreFromRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear()
		responses.WriteSuccess(w, renderer.Render(store))
	}
}

// CartQuote renders the cart with a shipping-inclusive total for the selection.
func CartQuote(carts SessionCarts, renderer *render.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := StoreFromRequest(carts, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sel, err := ParseSelection(payload.Region, payload.Service)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quoteResponse{
			Selection: sel,
			Cart:      renderer.RenderWithShipping(store, sel),
		})
	}
}

// StoreFromRequest looks up the cart for the session bound to the request.
func StoreFromRequest(carts SessionCarts, r *http.Request) (*cartsvc.Store, error) {
	if carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart sessions unavailable")
	}
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session missing")
	}
	return carts.ForSession(sessionID), nil
}

func itemIDParam(r *http.Request) (string, error) {
	itemID := strings.TrimSpace(chi.URLParam(r, "itemId"))
	if itemID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	return itemID, nil
}
