package form

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Minimum lengths, counted in characters.
const (
	MinPasswordLength = 6
	MinUsernameLength = 3
	MinNameLength     = 2
	MinSubjectLength  = 5
	MinMessageLength  = 10
)

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func checkEmail(errs Errors, email string) {
	switch {
	case email == "":
		errs.set(FieldEmail, "El email es requerido")
	case !ValidEmail(email):
		errs.set(FieldEmail, "Email inválido")
	}
}

func checkPassword(errs Errors, password string) {
	switch {
	case password == "":
		errs.set(FieldPassword, "La contraseña es requerida")
	case utf8.RuneCountInString(password) < MinPasswordLength:
		errs.set(FieldPassword, "La contraseña debe tener al menos 6 caracteres")
	}
}

// checkTrimmed validates a required free-text field after trimming
// surrounding whitespace.
func checkTrimmed(errs Errors, field, value string, minLen int, required, tooShort string) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		errs.set(field, required)
	case utf8.RuneCountInString(value) < minLen:
		errs.set(field, tooShort)
	}
}
