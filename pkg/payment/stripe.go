package payment

import (
	"context"
	"math"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/cctvshop/storefront-api/pkg/errors"
)

// Gateway creates card payment intents with the external payment provider.
type Gateway interface {
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

type stripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway builds a Gateway backed by the Stripe API.
func NewStripeGateway(secretKey, currency string) Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &stripeGateway{api: api, currency: currency}
}

// MinorUnits converts a decimal price into the gateway's integer minor units.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (g *stripeGateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(MinorUnits(price)),
		Currency: stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", errors.Gateway("failed to create payment intent", err)
	}

	return intent.ClientSecret, nil
}
