package restaurant

import (
	"fmt"
	"strings"
)

// Key is the composite identity of a restaurant record: the owning user
// and the lower-cased restaurant name. The original casing lives only in
// the record body. Keys compare by value, so "Subway" and "SUBWAY" owned
// by the same user are the same identity.
type Key struct {
	ownerID       string
	nameLowercase string
}

// NewKey builds a record key from an explicit owner identity and a
// restaurant name. The owner must always be supplied by the caller;
// there is no ambient fallback.
func NewKey(ownerID, name string) (Key, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Key{}, IdentityMissingError{}
	}
	if strings.TrimSpace(name) == "" {
		return Key{}, ValidationError{Field: "name", Reason: "must not be blank"}
	}
	return Key{
		ownerID:       ownerID,
		nameLowercase: strings.ToLower(name),
	}, nil
}

// OwnerID returns the partition identity of the key.
func (k Key) OwnerID() string {
	return k.ownerID
}

// NameLowercase returns the sort identity of the key.
func (k Key) NameLowercase() string {
	return k.nameLowercase
}

// IsZero reports whether the key was never initialized.
func (k Key) IsZero() bool {
	return k == Key{}
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.ownerID, k.nameLowercase)
}
