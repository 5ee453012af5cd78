package contact

import (
	"context"
	"testing"
	"time"

	"github.com/handiism/gamevault/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() form.Contact {
	return form.Contact{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Support request",
		Message: "My download does not start.",
	}
}

func TestSubmission_Lifecycle(t *testing.T) {
	s := NewSubmission()
	s.SetDraft(validDraft())

	msg, errs, err := s.Begin()
	require.NoError(t, err)
	assert.True(t, errs.OK())
	assert.Equal(t, "Ana", msg.Name)
	assert.Equal(t, StatusSending, s.Status())

	_, _, err = s.Begin()
	assert.ErrorIs(t, err, ErrInFlight)

	s.Reset()
	assert.Equal(t, StatusSending, s.Status(), "reset is ignored while sending")

	s.Finish()
	assert.Equal(t, StatusSent, s.Status())

	s.Reset()
	assert.Equal(t, StatusIdle, s.Status())
	assert.Equal(t, form.Contact{}, s.Draft())
}

func TestSubmission_InvalidStaysIdle(t *testing.T) {
	s := NewSubmission()
	s.SetDraft(form.Contact{Name: "A", Email: "bad"})

	_, errs, err := s.Begin()
	require.NoError(t, err)
	assert.Equal(t, []string{form.FieldEmail, form.FieldMessage, form.FieldName, form.FieldSubject}, errs.Fields())
	assert.Equal(t, StatusIdle, s.Status())

	s.SetField(form.FieldEmail, "ana@example.com")
	assert.False(t, s.Errors().Has(form.FieldEmail), "editing a field clears its error")
	assert.True(t, s.Errors().Has(form.FieldName))
	assert.Equal(t, "ana@example.com", s.Draft().Email)
}

func TestSubmission_Submit(t *testing.T) {
	s := NewSubmission()
	s.SetDraft(validDraft())

	errs, err := s.Submit(context.Background(), SimulatedSender{Delay: time.Millisecond})
	require.NoError(t, err)
	assert.True(t, errs.OK())
	assert.Equal(t, StatusSent, s.Status())
}

func TestSimulatedSender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSubmission()
	s.SetDraft(validDraft())

	_, err := s.Submit(ctx, SimulatedSender{Delay: time.Hour})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusIdle, s.Status())
}
