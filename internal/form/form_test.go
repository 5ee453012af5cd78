package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"user@example.com", true},
		{"a.b@c.d.e", true},
		{"not-an-email", false},
		{"user@example", false},
		{"user @example.com", false},
		{"@example.com", false},
		{"user@@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.input))
		})
	}
}

func TestLogin_Validate(t *testing.T) {
	t.Run("invalid email and short password", func(t *testing.T) {
		errs := Login{Email: "not-an-email", Password: "12345"}.Validate()

		assert.False(t, errs.OK())
		assert.Equal(t, []string{FieldEmail, FieldPassword}, errs.Fields())
		assert.Equal(t, "Email inválido", errs.Get(FieldEmail))
	})

	t.Run("required fields", func(t *testing.T) {
		errs := Login{}.Validate()

		assert.Equal(t, "El email es requerido", errs.Get(FieldEmail))
		assert.Equal(t, "La contraseña es requerida", errs.Get(FieldPassword))
	})

	t.Run("valid", func(t *testing.T) {
		errs := Login{Email: "ana@example.com", Password: "secret"}.Validate()
		assert.True(t, errs.OK())
	})
}

func TestLogin_Username(t *testing.T) {
	assert.Equal(t, "ana", Login{Email: "ana@example.com"}.Username())
	assert.Equal(t, "plain", Login{Email: "plain"}.Username())
}

func TestRegister_Validate(t *testing.T) {
	valid := Register{
		Username:        "ana",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		AcceptTerms:     true,
	}

	tests := []struct {
		name   string
		mutate func(*Register)
		want   []string
	}{
		{"valid", func(*Register) {}, nil},
		{"short username", func(r *Register) { r.Username = "an" }, []string{FieldUsername}},
		{"missing username", func(r *Register) { r.Username = "" }, []string{FieldUsername}},
		{"bad email", func(r *Register) { r.Email = "ana.example.com" }, []string{FieldEmail}},
		{"short password", func(r *Register) { r.Password, r.ConfirmPassword = "abc", "abc" }, []string{FieldPassword}},
		{"mismatch", func(r *Register) { r.ConfirmPassword = "secret2" }, []string{FieldConfirmPassword}},
		{"terms", func(r *Register) { r.AcceptTerms = false }, []string{FieldAcceptTerms}},
		{"everything", func(r *Register) { *r = Register{ConfirmPassword: "x"} }, []string{
			FieldAcceptTerms, FieldConfirmPassword, FieldEmail, FieldPassword, FieldUsername,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Equal(t, tt.want, r.Validate().Fields())
		})
	}
}

func TestContact_Validate(t *testing.T) {
	valid := Contact{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Hello there",
		Message: "I would like to know more.",
	}
	assert.True(t, valid.Validate().OK())

	padded := Contact{
		Name:    "  A  ",
		Email:   "ana@example.com",
		Subject: "  Hi    ",
		Message: "   short    ",
	}
	errs := padded.Validate()
	assert.Equal(t, []string{FieldMessage, FieldName, FieldSubject}, errs.Fields())
	assert.Equal(t, "El nombre debe tener al menos 2 caracteres", errs.Get(FieldName))

	empty := Contact{Name: "   "}.Validate()
	assert.Equal(t, "El nombre es requerido", empty.Get(FieldName))
	assert.Equal(t, "El email es requerido", empty.Get(FieldEmail))
	assert.Equal(t, "El asunto es requerido", empty.Get(FieldSubject))
	assert.Equal(t, "El mensaje es requerido", empty.Get(FieldMessage))
}

func TestErrors_Clear(t *testing.T) {
	errs := Contact{}.Validate()
	assert.True(t, errs.Has(FieldName))

	errs.Clear(FieldName)
	assert.False(t, errs.Has(FieldName))
	assert.Equal(t, "", errs.Get(FieldName))
	assert.Len(t, errs, 3)
}
