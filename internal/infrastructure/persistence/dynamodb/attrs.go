package dynamodb

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute value construction helpers. Stateless and safe for
// concurrent use across repository operations.

// StringAttr creates a scalar string attribute value.
func StringAttr(value string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: value}
}

// NumberAttr creates a scalar numeric attribute value encoded as a
// decimal string.
func NumberAttr(value int) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(value)}
}

// BoolAttr creates a scalar boolean attribute value.
func BoolAttr(value bool) *types.AttributeValueMemberBOOL {
	return &types.AttributeValueMemberBOOL{Value: value}
}

// StringSetAttr creates a string-set attribute value. Returns nil for
// an empty set: DynamoDB rejects empty sets, so the attribute must be
// omitted instead.
func StringSetAttr(values []string) *types.AttributeValueMemberSS {
	if len(values) == 0 {
		return nil
	}
	return &types.AttributeValueMemberSS{Value: values}
}

// StringListAttr creates an ordered list-of-strings attribute value.
// An empty (or nil) slice yields an explicit empty list.
func StringListAttr(values []string) (types.AttributeValue, error) {
	if values == nil {
		values = []string{}
	}
	return attributevalue.Marshal(values)
}

// Attribute value extraction helpers. Missing attributes yield the Go
// zero value; callers that need "absent" semantics interpret the zero
// value themselves.

// ExtractString returns the scalar string value, or "" when the
// attribute is missing or not a string.
func ExtractString(item map[string]types.AttributeValue, name string) string {
	if attr, ok := item[name].(*types.AttributeValueMemberS); ok {
		return attr.Value
	}
	return ""
}

// ExtractNumber returns the scalar numeric value, or 0 when the
// attribute is missing or unparsable.
func ExtractNumber(item map[string]types.AttributeValue, name string) int {
	attr, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	value, err := strconv.Atoi(attr.Value)
	if err != nil {
		return 0
	}
	return value
}

// ExtractBool returns the scalar boolean value, or false when the
// attribute is missing.
func ExtractBool(item map[string]types.AttributeValue, name string) bool {
	if attr, ok := item[name].(*types.AttributeValueMemberBOOL); ok {
		return attr.Value
	}
	return false
}

// ExtractStringSet returns the members of a string-set attribute, or
// nil when the attribute is missing.
func ExtractStringSet(item map[string]types.AttributeValue, name string) []string {
	if attr, ok := item[name].(*types.AttributeValueMemberSS); ok {
		return attr.Value
	}
	return nil
}

// ExtractStringList returns the members of a list-of-strings attribute.
// A missing attribute yields an empty slice.
func ExtractStringList(item map[string]types.AttributeValue, name string) ([]string, error) {
	attr, ok := item[name]
	if !ok {
		return []string{}, nil
	}
	var values []string
	if err := attributevalue.Unmarshal(attr, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}
