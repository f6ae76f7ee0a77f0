package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/fahrtenbuch/backend/internal/pkg/constants"
	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	natspkg "github.com/fahrtenbuch/backend/internal/pkg/nats"
	"github.com/fahrtenbuch/backend/services/billing"
)

// Consumer invalidates cached cost summaries when trips or receipts change
type Consumer struct {
	billingUC  billing.BillingUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewConsumer creates a new billing event consumer
func NewConsumer(billingUC billing.BillingUC, natsClient *natspkg.Client) *Consumer {
	return &Consumer{
		billingUC:  billingUC,
		natsClient: natsClient,
	}
}

// Start subscribes to the trip and receipt subjects
func (c *Consumer) Start() error {
	tripSub, err := c.natsClient.Subscribe(constants.SubjectTripCompleted, c.handleTripCompleted)
	if err != nil {
		return err
	}
	c.subs = append(c.subs, tripSub)

	receiptSub, err := c.natsClient.Subscribe(constants.SubjectReceiptCreated, c.handleReceiptCreated)
	if err != nil {
		return err
	}
	c.subs = append(c.subs, receiptSub)

	return nil
}

// Stop unsubscribes from all subjects
func (c *Consumer) Stop() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	c.subs = nil
}

func (c *Consumer) handleTripCompleted(msg *nats.Msg) {
	var trip models.Trip
	if err := json.Unmarshal(msg.Data, &trip); err != nil {
		logger.Error("Failed to decode trip completed event", logger.Err(err))
		return
	}

	if err := c.billingUC.InvalidateCosts(context.Background(), trip.GroupID); err != nil {
		logger.Warn("Failed to invalidate cost cache after trip",
			logger.String("group_id", trip.GroupID.String()),
			logger.Err(err))
	}
}

func (c *Consumer) handleReceiptCreated(msg *nats.Msg) {
	var receipt models.Receipt
	if err := json.Unmarshal(msg.Data, &receipt); err != nil {
		logger.Error("Failed to decode receipt created event", logger.Err(err))
		return
	}

	if err := c.billingUC.InvalidateCosts(context.Background(), receipt.GroupID); err != nil {
		logger.Warn("Failed to invalidate cost cache after receipt",
			logger.String("group_id", receipt.GroupID.String()),
			logger.Err(err))
	}
}
