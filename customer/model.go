package customer

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-playground/validator/v10"

	"github.com/harnessline/corral/internal/clock"
)

// KindCustomer is the sort-key discriminator for customer records. Other
// record kinds share the partition key space of the customer tables.
const KindCustomer = "C"

// validate holds the shared validator instance for all model types.
var validate = validator.New()

// Role is a customer's access role, persisted as a single-character code.
type Role int

const (
	RoleCustomer Role = iota
	RoleAdmin
)

// Code returns the persisted single-character code for the role.
func (r Role) Code() string {
	if r == RoleAdmin {
		return "A"
	}
	return "C"
}

// RoleFromCode decodes a persisted role code. An unrecognized code decodes
// to RoleCustomer; this leniency is deliberate and matches what existing
// records rely on.
func RoleFromCode(code string) Role {
	if code == "A" {
		return RoleAdmin
	}
	return RoleCustomer
}

func (r Role) String() string {
	if r == RoleAdmin {
		return "ADMIN"
	}
	return "CUSTOMER"
}

// MarshalDynamoDBAttributeValue encodes the role as its stored code.
func (r Role) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberS{Value: r.Code()}, nil
}

// UnmarshalDynamoDBAttributeValue decodes a stored role code.
func (r *Role) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return &DecodeError{Attr: "r", Reason: "expected string attribute"}
	}
	*r = RoleFromCode(s.Value)
	return nil
}

// Customer is the primary entity. Field tags define the stored attribute
// names and the validation rules checked before any write; the repository
// itself does not re-validate.
type Customer struct {
	ID        string  `dynamodbav:"pk" validate:"min=1,max=40"`
	Kind      string  `dynamodbav:"sk" validate:"len=1"`
	Name      string  `dynamodbav:"n" validate:"min=1,max=80"`
	Email     string  `dynamodbav:"e" validate:"email"`
	Role      Role    `dynamodbav:"r"`
	AvatarURL *string `dynamodbav:"img,omitempty" validate:"omitempty,url"`
	Disabled  bool    `dynamodbav:"dis"`
	UpdatedAt uint64  `dynamodbav:"ua"`
}

// NewCustomer builds a customer with the defaults stamped at creation time:
// role CUSTOMER, enabled, updated-at set to the current time.
func NewCustomer(id, name, email string, avatarURL *string) Customer {
	return Customer{
		ID:        id,
		Kind:      KindCustomer,
		Name:      name,
		Email:     email,
		Role:      RoleCustomer,
		AvatarURL: avatarURL,
		Disabled:  false,
		UpdatedAt: clock.Now(),
	}
}

// Validate checks the field-level validation rules.
func (c *Customer) Validate() error {
	return validate.Struct(c)
}

// IsAdmin reports whether the customer holds the admin role.
func (c *Customer) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Since returns the milliseconds elapsed since the last update.
func (c *Customer) Since() uint64 {
	return clock.Since(c.UpdatedAt)
}

// ListItem is the read-only projection of a customer returned by List.
// Email, role and avatar are not transferred in bulk listings.
type ListItem struct {
	ID        string
	Kind      string
	Name      string
	Disabled  bool
	UpdatedAt uint64
}

// Since returns the milliseconds elapsed since the last update.
func (li ListItem) Since() uint64 {
	return clock.Since(li.UpdatedAt)
}

// Cursor is the opaque continuation key returned by List and passed back
// verbatim to resume a scan. A nil cursor starts from the beginning.
type Cursor map[string]types.AttributeValue

// ListResult is one page of a customer listing.
type ListResult struct {
	Customers []ListItem

	// LastKey resumes the scan on the next List call.
	// Nil once the scan has exhausted the table.
	LastKey Cursor
}
