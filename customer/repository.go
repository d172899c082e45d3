package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/harnessline/corral/internal/clock"
)

// Email lookup records in the common table are keyed by a prefixed email
// partition key and a fixed discriminator sort key.
const (
	lookupPrefix = "L#"
	lookupKind   = "E"
)

// Client is the subset of the DynamoDB API the repository uses.
// *dynamodb.Client satisfies it; tests substitute an in-memory fake.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Repository provides customer persistence over the customer and common
// tables. It holds no mutable state and is safe for concurrent use.
type Repository struct {
	client Client
	config Config
}

// New creates a Repository backed by the given client and table names.
func New(client Client, config Config) *Repository {
	config.validate()
	return &Repository{
		client: client,
		config: config,
	}
}

// Create writes a new customer and its email lookup record in a single
// transaction. The customer put is guarded so an existing id is never
// overwritten (ErrAlreadyExists), and the lookup put rejects an email
// already mapped to another customer (ErrEmailTaken).
func (r *Repository) Create(ctx context.Context, c Customer) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.config.CustomerTable),
					Item:                item,
					ConditionExpression: aws.String("attribute_not_exists(pk)"),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.config.CommonTable),
					Item: map[string]types.AttributeValue{
						"pk": &types.AttributeValueMemberS{Value: lookupPrefix + c.Email},
						"sk": &types.AttributeValueMemberS{Value: lookupKind},
						"id": &types.AttributeValueMemberS{Value: c.ID},
					},
					ConditionExpression: aws.String("attribute_not_exists(pk)"),
				},
			},
		},
	})

	return mapCreateError(err)
}

// mapCreateError maps transaction cancellation reasons by item index:
// the customer put is item 0, the lookup put item 1.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}

	var txErr *types.TransactionCanceledException
	if errors.As(err, &txErr) {
		for i, reason := range txErr.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				if i == 0 {
					return ErrAlreadyExists
				}
				return ErrEmailTaken
			}
		}
	}

	return err
}

// Update refreshes a customer from a linked GitHub profile: name, avatar
// when the profile supplies one, and the update timestamp. Re-linking an
// identity re-enables the account, so dis is cleared. The write is rejected
// with ErrNotActive unless the record exists and is currently enabled;
// callers should prompt for an explicit Enable in that case.
func (r *Repository) Update(ctx context.Context, profile GithubProfile) error {
	names := map[string]string{
		"#n":   "n",
		"#ua":  "ua",
		"#dis": "dis",
	}
	values := map[string]types.AttributeValue{
		":n":   &types.AttributeValueMemberS{Value: profile.Name},
		":ua":  millisAttr(clock.Now()),
		":dis": &types.AttributeValueMemberBOOL{Value: false},
	}

	// The avatar assignment is included only when a value is supplied, so
	// an absent avatar leaves the stored one untouched.
	updateExpr := "SET #n = :n, #ua = :ua, #dis = :dis"
	if profile.AvatarURL != nil {
		names["#img"] = "img"
		values[":img"] = &types.AttributeValueMemberS{Value: *profile.AvatarURL}
		updateExpr += ", #img = :img"
	}

	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.config.CustomerTable),
		Key:                       customerKey(profile.ID),
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("attribute_exists(pk) AND attribute_exists(sk) AND #dis = :dis"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})

	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return ErrNotActive
	}
	return err
}

// Disable marks a customer disabled. Idempotent: disabling an already
// disabled customer succeeds and refreshes the update timestamp.
func (r *Repository) Disable(ctx context.Context, id string) error {
	return r.toggle(ctx, id, true)
}

// Enable marks a customer enabled. Idempotent like Disable.
func (r *Repository) Enable(ctx context.Context, id string) error {
	return r.toggle(ctx, id, false)
}

// toggle conditionally sets the disabled flag, requiring only that the
// record exists.
func (r *Repository) toggle(ctx context.Context, id string, disabled bool) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.config.CustomerTable),
		Key:                 customerKey(id),
		UpdateExpression:    aws.String("SET #dis = :dis, #ua = :ua"),
		ConditionExpression: aws.String("attribute_exists(pk) AND attribute_exists(sk)"),
		ExpressionAttributeNames: map[string]string{
			"#dis": "dis",
			"#ua":  "ua",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dis": &types.AttributeValueMemberBOOL{Value: disabled},
			":ua":  millisAttr(clock.Now()),
		},
	})

	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return ErrNotFound
	}
	return err
}

// Get retrieves a customer by id, returning ErrNotFound if absent.
func (r *Repository) Get(ctx context.Context, id string) (*Customer, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.config.CustomerTable),
		Key:       customerKey(id),
	})
	if err != nil {
		return nil, err
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	return decodeCustomer(result.Item)
}

// LookupID resolves an email to the mapped customer id, returning
// ErrNotFound if no lookup record exists.
func (r *Repository) LookupID(ctx context.Context, email string) (string, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.config.CommonTable),
		Key:                  lookupKey(email),
		ProjectionExpression: aws.String("id"),
	})
	if err != nil {
		return "", err
	}
	if result.Item == nil {
		return "", ErrNotFound
	}

	return stringAttr(result.Item, "id")
}

// List returns one page of the customer table scan. Pass the returned
// LastKey as the cursor of the next call; callers needing a complete
// enumeration loop until LastKey is nil. Ordering and consistency are
// whatever the store provides for scans.
func (r *Repository) List(ctx context.Context, cursor Cursor) (*ListResult, error) {
	result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:            aws.String(r.config.CustomerTable),
		ProjectionExpression: aws.String("pk, sk, n, dis, ua"),
		ExclusiveStartKey:    cursor,
	})
	if err != nil {
		return nil, err
	}

	page := &ListResult{LastKey: result.LastEvaluatedKey}
	for _, item := range result.Items {
		li, err := decodeListItem(item)
		if err != nil {
			return nil, err
		}
		page.Customers = append(page.Customers, li)
	}

	return page, nil
}

// EnsureLookup writes the email lookup record for a customer if none
// exists yet. An existing record is left untouched, so the call is
// idempotent and safe to retry.
func (r *Repository) EnsureLookup(ctx context.Context, email, id string) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.config.CommonTable),
		Item: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: lookupPrefix + email},
			"sk": &types.AttributeValueMemberS{Value: lookupKind},
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})

	// Ignore condition failure - lookup record already present
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return nil
	}
	return err
}
