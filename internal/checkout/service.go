package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/pricing"
	"github.com/angelmondragon/storefront/pkg/enums"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/metrics"
)

const (
	outcomeComposed  = "composed"
	outcomeEmptyCart = "empty_cart"
)

// Target is the cart a submission reads from and resets afterwards.
type Target interface {
	cart.Reader
	Clear()
}

// SubmitInput captures the checkout form.
type SubmitInput struct {
	Customer  Customer
	Selection pricing.Selection
	Payment   enums.PaymentMethod
}

// Service executes checkout submissions.
type Service interface {
	Submit(ctx context.Context, target Target, input SubmitInput) (*OrderRequest, error)
}

// ServiceParams wires the checkout service.
type ServiceParams struct {
	Composer *Composer
	Metrics  *metrics.CartMetrics
	Logger   *logger.Logger
}

type service struct {
	composer *Composer
	metrics  *metrics.CartMetrics
	logg     *logger.Logger
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Composer == nil {
		return nil, fmt.Errorf("composer required")
	}
	return &service{
		composer: params.Composer,
		metrics:  params.Metrics,
		logg:     params.Logger,
	}, nil
}

// Submit composes the order and, only when that succeeds, clears the cart.
func (s *service) Submit(ctx context.Context, target Target, input SubmitInput) (*OrderRequest, error) {
	order, err := s.composer.Compose(target, input.Selection, input.Customer, input.Payment)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			s.metrics.IncCheckout(outcomeEmptyCart)
		}
		return nil, err
	}

	target.Clear()

	s.metrics.IncCheckout(outcomeComposed)
	s.metrics.ObserveOrderTotal(order.Totals.Total)
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"items":    len(order.Items),
			"subtotal": order.Totals.Subtotal,
			"shipping": order.Totals.Shipping,
			"total":    order.Totals.Total,
			"region":   input.Selection.Region.String(),
			"payment":  input.Payment.String(),
		})
		s.logg.Info(ctx, "checkout.composed")
	}
	return order, nil
}
