// Package stream provides DynamoDB Streams handlers that keep the email
// lookup table in sync with the customer table.
package stream

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/harnessline/corral/customer"
)

// LookupWriter writes email lookup records. *customer.Repository satisfies it.
type LookupWriter interface {
	EnsureLookup(ctx context.Context, email, id string) error
}

// Handler processes customer-table stream events.
type Handler struct {
	repo   LookupWriter
	logger *slog.Logger
}

// NewHandler creates a new stream handler.
func NewHandler(repo LookupWriter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// HandleLookupSync writes a lookup record for every customer inserted into
// the customer table. The create path already writes the record in the same
// transaction as the customer; this handler heals records that arrived
// without one (imports, restores, writes from older tooling).
// This function is designed to be used as an AWS Lambda handler.
func (h *Handler) HandleLookupSync(ctx context.Context, event events.DynamoDBEvent) error {
	for _, record := range event.Records {
		if err := h.processRecord(ctx, record); err != nil {
			h.logger.Error("failed to process record",
				"eventID", record.EventID,
				"error", err,
			)
			return err // Will retry, eventually DLQ
		}
	}
	return nil
}

// processRecord processes a single stream record.
func (h *Handler) processRecord(ctx context.Context, record events.DynamoDBEventRecord) error {
	if record.EventName != "INSERT" {
		return nil
	}

	image := record.Change.NewImage

	// Only customer records carry the "C" discriminator; the tables hold
	// other record kinds too.
	if getStringAttr(image, "sk") != customer.KindCustomer {
		return nil
	}

	id := getStringAttr(image, "pk")
	email := getStringAttr(image, "e")
	if id == "" || email == "" {
		h.logger.Warn("customer record missing pk or e, skipping",
			"eventID", record.EventID,
		)
		return nil
	}

	if err := h.repo.EnsureLookup(ctx, email, id); err != nil {
		return err
	}

	h.logger.Info("lookup record ensured",
		"customerID", id,
	)
	return nil
}

// getStringAttr extracts a string attribute from a DynamoDB stream image.
func getStringAttr(image map[string]events.DynamoDBAttributeValue, key string) string {
	if v, ok := image[key]; ok && v.DataType() == events.DataTypeString {
		return v.String()
	}
	return ""
}
