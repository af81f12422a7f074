package payment

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// MercadoPago creates hosted checkout preferences for sales.
type MercadoPago struct {
	client preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPago{client: preference.NewClient(cfg)}, nil
}

// CreatePaymentLink bills the sale total as a single line so that line and
// order discounts are already applied.
func (m *MercadoPago) CreatePaymentLink(ctx context.Context, t *models.Transaction) (string, string, error) {
	total, _ := t.Total.Float64()

	req := preference.Request{
		ExternalReference: t.ID,
		Items: []preference.ItemRequest{
			{
				ID:        t.ID,
				Title:     fmt.Sprintf("Sale %s", shortID(t.ID)),
				Quantity:  1,
				UnitPrice: total,
			},
		},
	}

	res, err := m.client.Create(ctx, req)
	if err != nil {
		return "", "", err
	}
	return res.ID, res.InitPoint, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
