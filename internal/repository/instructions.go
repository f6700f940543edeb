package repository

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UpdateInstructions is a self-describing set of native attribute
// mutations: each entry either puts a new value or deletes the
// attribute. The store applies them without a read-modify-write.
type UpdateInstructions map[string]types.AttributeValueUpdate

// IsEmpty reports whether the instruction set mutates nothing.
func (u UpdateInstructions) IsEmpty() bool {
	return len(u) == 0
}

// UpdateBuilder accumulates update instructions attribute by attribute.
type UpdateBuilder struct {
	updates UpdateInstructions
}

// NewUpdate creates an empty update instruction builder.
func NewUpdate() *UpdateBuilder {
	return &UpdateBuilder{updates: UpdateInstructions{}}
}

// SetString puts a scalar string value.
func (b *UpdateBuilder) SetString(name, value string) *UpdateBuilder {
	return b.put(name, &types.AttributeValueMemberS{Value: value})
}

// SetNumber puts a scalar numeric value, encoded as a decimal string.
func (b *UpdateBuilder) SetNumber(name string, value int) *UpdateBuilder {
	return b.put(name, &types.AttributeValueMemberN{Value: strconv.Itoa(value)})
}

// SetBool puts a scalar boolean value.
func (b *UpdateBuilder) SetBool(name string, value bool) *UpdateBuilder {
	return b.put(name, &types.AttributeValueMemberBOOL{Value: value})
}

// SetStringSet puts an unordered, deduplicated string-set value.
func (b *UpdateBuilder) SetStringSet(name string, values []string) *UpdateBuilder {
	return b.put(name, &types.AttributeValueMemberSS{Value: values})
}

// SetStringList puts an ordered list-of-strings value. An empty slice
// is written as an explicit empty list: omitting the attribute would be
// indistinguishable from "no change" to the store.
func (b *UpdateBuilder) SetStringList(name string, values []string) *UpdateBuilder {
	members := make([]types.AttributeValue, len(values))
	for i, value := range values {
		members[i] = &types.AttributeValueMemberS{Value: value}
	}
	return b.put(name, &types.AttributeValueMemberL{Value: members})
}

// Delete removes the attribute from the item.
func (b *UpdateBuilder) Delete(name string) *UpdateBuilder {
	b.updates[name] = types.AttributeValueUpdate{Action: types.AttributeActionDelete}
	return b
}

// Build returns the accumulated instructions.
func (b *UpdateBuilder) Build() UpdateInstructions {
	return b.updates
}

func (b *UpdateBuilder) put(name string, value types.AttributeValue) *UpdateBuilder {
	b.updates[name] = types.AttributeValueUpdate{
		Action: types.AttributeActionPut,
		Value:  value,
	}
	return b
}
