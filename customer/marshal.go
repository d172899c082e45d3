package customer

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// customerKey builds the composite key addressing a customer record.
func customerKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: id},
		"sk": &types.AttributeValueMemberS{Value: KindCustomer},
	}
}

// lookupKey builds the composite key addressing an email lookup record.
func lookupKey(email string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: lookupPrefix + email},
		"sk": &types.AttributeValueMemberS{Value: lookupKind},
	}
}

func millisAttr(t uint64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatUint(t, 10)}
}

// decodeCustomer strictly decodes a stored customer record. Every attribute
// except img must be present with the expected type.
func decodeCustomer(item map[string]types.AttributeValue) (*Customer, error) {
	id, err := stringAttr(item, "pk")
	if err != nil {
		return nil, err
	}
	kind, err := stringAttr(item, "sk")
	if err != nil {
		return nil, err
	}
	name, err := stringAttr(item, "n")
	if err != nil {
		return nil, err
	}
	email, err := stringAttr(item, "e")
	if err != nil {
		return nil, err
	}
	roleCode, err := stringAttr(item, "r")
	if err != nil {
		return nil, err
	}
	disabled, err := boolAttr(item, "dis")
	if err != nil {
		return nil, err
	}
	updatedAt, err := millisFromAttr(item, "ua")
	if err != nil {
		return nil, err
	}

	c := &Customer{
		ID:        id,
		Kind:      kind,
		Name:      name,
		Email:     email,
		Role:      RoleFromCode(roleCode),
		Disabled:  disabled,
		UpdatedAt: updatedAt,
	}

	if av, ok := item["img"]; ok {
		s, ok := av.(*types.AttributeValueMemberS)
		if !ok {
			return nil, &DecodeError{Attr: "img", Reason: "expected string attribute"}
		}
		c.AvatarURL = aws.String(s.Value)
	}

	return c, nil
}

// decodeListItem strictly decodes the five projected attributes of a
// listing row.
func decodeListItem(item map[string]types.AttributeValue) (ListItem, error) {
	id, err := stringAttr(item, "pk")
	if err != nil {
		return ListItem{}, err
	}
	kind, err := stringAttr(item, "sk")
	if err != nil {
		return ListItem{}, err
	}
	name, err := stringAttr(item, "n")
	if err != nil {
		return ListItem{}, err
	}
	disabled, err := boolAttr(item, "dis")
	if err != nil {
		return ListItem{}, err
	}
	updatedAt, err := millisFromAttr(item, "ua")
	if err != nil {
		return ListItem{}, err
	}

	return ListItem{
		ID:        id,
		Kind:      kind,
		Name:      name,
		Disabled:  disabled,
		UpdatedAt: updatedAt,
	}, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, error) {
	av, ok := item[name]
	if !ok {
		return "", &DecodeError{Attr: name, Reason: "missing"}
	}
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return "", &DecodeError{Attr: name, Reason: "expected string attribute"}
	}
	return s.Value, nil
}

func boolAttr(item map[string]types.AttributeValue, name string) (bool, error) {
	av, ok := item[name]
	if !ok {
		return false, &DecodeError{Attr: name, Reason: "missing"}
	}
	b, ok := av.(*types.AttributeValueMemberBOOL)
	if !ok {
		return false, &DecodeError{Attr: name, Reason: "expected boolean attribute"}
	}
	return b.Value, nil
}

func millisFromAttr(item map[string]types.AttributeValue, name string) (uint64, error) {
	av, ok := item[name]
	if !ok {
		return 0, &DecodeError{Attr: name, Reason: "missing"}
	}
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return 0, &DecodeError{Attr: name, Reason: "expected number attribute"}
	}
	millis, err := strconv.ParseUint(n.Value, 10, 64)
	if err != nil {
		return 0, &DecodeError{Attr: name, Reason: "not an unsigned integer"}
	}
	return millis, nil
}
