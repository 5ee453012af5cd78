package form

import "strings"

// Contact holds the contact form fields.
type Contact struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks the contact fields. Text fields are trimmed first.
func (c Contact) Validate() Errors {
	errs := Errors{}

	checkTrimmed(errs, FieldName, c.Name, MinNameLength,
		"El nombre es requerido", "El nombre debe tener al menos 2 caracteres")

	email := strings.TrimSpace(c.Email)
	switch {
	case email == "":
		errs.set(FieldEmail, "El email es requerido")
	case !ValidEmail(c.Email):
		errs.set(FieldEmail, "Email inválido")
	}

	checkTrimmed(errs, FieldSubject, c.Subject, MinSubjectLength,
		"El asunto es requerido", "El asunto debe tener al menos 5 caracteres")
	checkTrimmed(errs, FieldMessage, c.Message, MinMessageLength,
		"El mensaje es requerido", "El mensaje debe tener al menos 10 caracteres")

	return errs
}
