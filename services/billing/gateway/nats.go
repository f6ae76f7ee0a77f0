package gateway

import (
	"context"

	"github.com/fahrtenbuch/backend/internal/pkg/constants"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	natspkg "github.com/fahrtenbuch/backend/internal/pkg/nats"
)

// BillingGW implements the billing.BillingGW interface
type BillingGW struct {
	natsClient *natspkg.Client
}

// NewBillingGW creates a new billing gateway
func NewBillingGW(natsClient *natspkg.Client) *BillingGW {
	return &BillingGW{natsClient: natsClient}
}

// PublishReceiptCreated announces a new receipt on the event bus
func (g *BillingGW) PublishReceiptCreated(_ context.Context, receipt *models.Receipt) error {
	return g.natsClient.PublishJSON(constants.SubjectReceiptCreated, receipt)
}
