package service

import "context"

// ChargeProvider is the narrow payment-provider collaborator: create a
// payment intent for an amount in minor units and get back a secret the
// client uses to complete the charge. Account setup and webhooks are the
// provider's concern, not ours.
type ChargeProvider interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
