package restaurant

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Record is a single restaurant entry owned by a user. It is a plain
// value type: copies are independent and carry no shared state.
//
// Rating zero and blank review both mean "absent" - the store has no
// typed null, so the zero values double as the wire sentinels.
type Record struct {
	OwnerID     string     `json:"ownerId" validate:"required"`
	Name        string     `json:"name" validate:"required,notblank"`
	Categories  []Category `json:"categories" validate:"required,min=1,dive,category"`
	TriedBefore bool       `json:"triedBefore"`
	Rating      int        `json:"rating" validate:"min=0,max=10"`
	Review      string     `json:"review"`
	Notes       []string   `json:"notes"`
}

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	// Tag implementations can only fail on registration when the tag
	// name is empty or the func is nil, neither of which applies here.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks the record's invariants: non-blank owner and name,
// at least one known category, rating within 0-10.
func (r Record) Validate() error {
	err := recordValidator.Struct(r)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return ValidationError{Field: "record", Reason: err.Error()}
	}
	first := validationErrors[0]
	return ValidationError{
		Field:  strings.ToLower(first.Field()[:1]) + first.Field()[1:],
		Reason: reasonFor(first),
	}
}

func reasonFor(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		if err.Kind().String() == "slice" {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "category":
		return fmt.Sprintf("unknown category %v", err.Value())
	}
	return fmt.Sprintf("failed %s validation", err.Tag())
}

// Key derives the record's store identity from its owner and name.
func (r Record) Key() Key {
	return Key{
		ownerID:       r.OwnerID,
		nameLowercase: strings.ToLower(r.Name),
	}
}

// HasRating reports whether the record carries a meaningful rating.
func (r Record) HasRating() bool {
	return r.Rating > 0
}

// HasReview reports whether the record carries a non-blank review.
func (r Record) HasReview() bool {
	return strings.TrimSpace(r.Review) != ""
}
