package form

import (
	"strings"
	"unicode/utf8"
)

// Login holds the login form fields.
type Login struct {
	Email    string
	Password string
	Remember bool
}

// Validate checks the login fields.
func (l Login) Validate() Errors {
	errs := Errors{}
	checkEmail(errs, l.Email)
	checkPassword(errs, l.Password)
	return errs
}

// Username derives a display name from the email's local part.
func (l Login) Username() string {
	local, _, _ := strings.Cut(l.Email, "@")
	return local
}

// Register holds the registration form fields.
type Register struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

// Validate checks the registration fields.
func (r Register) Validate() Errors {
	errs := Errors{}

	switch {
	case r.Username == "":
		errs.set(FieldUsername, "El nombre de usuario es requerido")
	case utf8.RuneCountInString(r.Username) < MinUsernameLength:
		errs.set(FieldUsername, "El nombre de usuario debe tener al menos 3 caracteres")
	}

	checkEmail(errs, r.Email)
	checkPassword(errs, r.Password)

	if r.Password != r.ConfirmPassword {
		errs.set(FieldConfirmPassword, "Las contraseñas no coinciden")
	}
	if !r.AcceptTerms {
		errs.set(FieldAcceptTerms, "Debes aceptar los términos y condiciones")
	}

	return errs
}
