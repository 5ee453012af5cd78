// Package form validates the login, registration and contact forms.
//
// Validation never fails with an error value. Each validator returns an
// Errors map from field name to a human-readable message; an empty map
// means the form may be submitted.
package form

import (
	"maps"
	"slices"
)

// Field names used as Errors keys.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldAcceptTerms     = "acceptTerms"
	FieldName            = "name"
	FieldSubject         = "subject"
	FieldMessage         = "message"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// OK reports whether there are no validation errors.
func (e Errors) OK() bool {
	return len(e) == 0
}

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// Clear removes the error for field.
func (e Errors) Clear(field string) {
	delete(e, field)
}

// Fields returns the fields with errors in sorted order.
func (e Errors) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

func (e Errors) set(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}
