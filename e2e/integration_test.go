//go:build e2e

// Package e2e contains end-to-end tests against real DynamoDB tables.
// Run with: go test -tags=e2e -v ./e2e/...
//
// Required environment:
//
//	CORRAL_E2E_CUSTOMER_TABLE - customer table (pk S, sk S)
//	CORRAL_E2E_COMMON_TABLE   - shared lookup table (pk S, sk S)
package e2e

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/harnessline/corral/customer"
)

func newRepo(t *testing.T) *customer.Repository {
	t.Helper()

	customerTable := os.Getenv("CORRAL_E2E_CUSTOMER_TABLE")
	commonTable := os.Getenv("CORRAL_E2E_COMMON_TABLE")
	if customerTable == "" || commonTable == "" {
		t.Skip("CORRAL_E2E_CUSTOMER_TABLE and CORRAL_E2E_COMMON_TABLE must be set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		t.Fatalf("load aws config: %v", err)
	}

	return customer.New(dynamodb.NewFromConfig(cfg), customer.Config{
		CustomerTable: customerTable,
		CommonTable:   commonTable,
	})
}

func TestCustomerLifecycle(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	id := uuid.NewString()
	email := fmt.Sprintf("e2e-%s@example.com", id[:8])

	c := customer.NewCustomer(id, "E2E Ada", email, nil)
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Duplicate id must be rejected, never overwritten.
	if err := repo.Create(ctx, customer.NewCustomer(id, "Imposter", "other-"+email, nil)); !errors.Is(err, customer.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Disabled || got.Role != customer.RoleCustomer {
		t.Fatalf("unexpected defaults: disabled=%t role=%s", got.Disabled, got.Role)
	}

	// The transactional create must have written the lookup record.
	mapped, err := repo.LookupID(ctx, email)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if mapped != id {
		t.Fatalf("expected lookup to map to %s, got %s", id, mapped)
	}

	if err := repo.Disable(ctx, id); err != nil {
		t.Fatalf("disable: %v", err)
	}

	// Updating a disabled customer must fail and leave the record alone.
	err = repo.Update(ctx, customer.GithubProfile{ID: id, Email: email, Name: "E2E Ada L."})
	if !errors.Is(err, customer.ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
	got, err = repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after rejected update: %v", err)
	}
	if got.Name != "E2E Ada" || !got.Disabled {
		t.Fatalf("rejected update modified the record: %+v", got)
	}

	time.Sleep(5 * time.Millisecond)
	if err := repo.Enable(ctx, id); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if err := repo.Update(ctx, customer.GithubProfile{ID: id, Email: email, Name: "E2E Ada L."}); err != nil {
		t.Fatalf("update after enable: %v", err)
	}

	got, err = repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("final get: %v", err)
	}
	if got.Name != "E2E Ada L." || got.Disabled {
		t.Fatalf("unexpected final state: %+v", got)
	}
}

func TestListEnumeratesCreated(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	want := map[string]bool{}
	for i := 0; i < 3; i++ {
		id := uuid.NewString()
		email := fmt.Sprintf("e2e-list-%s@example.com", id[:8])
		if err := repo.Create(ctx, customer.NewCustomer(id, "E2E List", email, nil)); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		want[id] = false
	}

	var cursor customer.Cursor
	for {
		page, err := repo.List(ctx, cursor)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, li := range page.Customers {
			if _, ok := want[li.ID]; ok {
				if want[li.ID] {
					t.Fatalf("customer %s enumerated twice", li.ID)
				}
				want[li.ID] = true
			}
		}
		if page.LastKey == nil {
			break
		}
		cursor = page.LastKey
	}

	for id, seen := range want {
		if !seen {
			t.Errorf("customer %s missing from enumeration", id)
		}
	}
}
