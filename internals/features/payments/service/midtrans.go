package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// MidtransProvider implements ChargeProvider on the Midtrans Snap API.
// The Snap token plays the client-secret role: the frontend exchanges it
// for the payment UI. Snap amounts are IDR-denominated; the currency
// argument only decorates the order metadata.
type MidtransProvider struct {
	client snap.Client
}

// NewMidtransProvider must be called at bootstrap. useProduction selects
// the production environment over the sandbox.
func NewMidtransProvider(serverKey string, useProduction bool) *MidtransProvider {
	p := &MidtransProvider{}
	if useProduction {
		p.client.New(serverKey, midtrans.Production)
	} else {
		p.client.New(serverKey, midtrans.Sandbox)
	}
	return p
}

func (p *MidtransProvider) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", errors.New("invalid amount")
	}

	orderID := uuid.New().String()
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    amount,
				Qty:      1,
				Name:     "Class enrollment",
				Category: strings.ToUpper(currency),
			},
		},
	}

	p.client.Options.SetContext(ctx)
	resp, err := p.client.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
