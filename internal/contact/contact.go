// Package contact manages the contact form submission lifecycle.
//
// A Submission moves Idle -> Sending -> Sent -> (Reset) Idle. While a
// submission is Sending, further submits are refused with ErrInFlight so
// a message is never sent twice.
package contact

import (
	"context"
	"errors"
	"time"

	"github.com/handiism/gamevault/internal/form"
)

// ErrInFlight is returned when a submit is attempted while one is pending.
var ErrInFlight = errors.New("contact submission already in progress")

// Status is the lifecycle stage of a Submission.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
)

func (s Status) String() string {
	switch s {
	case StatusSending:
		return "sending"
	case StatusSent:
		return "sent"
	default:
		return "idle"
	}
}

// Sender delivers a validated contact message.
type Sender interface {
	Send(ctx context.Context, msg form.Contact) error
}

// SimulatedSender pretends to deliver messages by waiting Delay.
// It never fails on its own.
type SimulatedSender struct {
	Delay time.Duration
}

// Send waits for the configured delay.
func (s SimulatedSender) Send(ctx context.Context, _ form.Contact) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.Delay):
		return nil
	}
}

// Submission holds the contact form draft, its validation errors and the
// submission status.
type Submission struct {
	draft  form.Contact
	errs   form.Errors
	status Status
}

// NewSubmission returns an idle, empty Submission.
func NewSubmission() *Submission {
	return &Submission{errs: form.Errors{}}
}

// Draft returns the current field values.
func (s *Submission) Draft() form.Contact {
	return s.draft
}

// SetDraft replaces all field values, keeping existing errors.
func (s *Submission) SetDraft(d form.Contact) {
	s.draft = d
}

// SetField updates one field and clears its validation error.
func (s *Submission) SetField(field, value string) {
	switch field {
	case form.FieldName:
		s.draft.Name = value
	case form.FieldEmail:
		s.draft.Email = value
	case form.FieldSubject:
		s.draft.Subject = value
	case form.FieldMessage:
		s.draft.Message = value
	default:
		return
	}
	s.errs.Clear(field)
}

// Errors returns a copy of the current validation errors.
func (s *Submission) Errors() form.Errors {
	out := make(form.Errors, len(s.errs))
	for k, v := range s.errs {
		out[k] = v
	}
	return out
}

// Status returns the lifecycle stage.
func (s *Submission) Status() Status {
	return s.status
}

// Begin validates the draft and, if valid, moves to StatusSending and
// returns the message to send. Invalid drafts stay Idle and their errors
// are returned. A pending submission yields ErrInFlight.
func (s *Submission) Begin() (form.Contact, form.Errors, error) {
	if s.status == StatusSending {
		return form.Contact{}, nil, ErrInFlight
	}
	s.errs = s.draft.Validate()
	if !s.errs.OK() {
		return form.Contact{}, s.Errors(), nil
	}
	s.status = StatusSending
	return s.draft, form.Errors{}, nil
}

// Finish marks a pending submission as sent.
func (s *Submission) Finish() {
	if s.status == StatusSending {
		s.status = StatusSent
	}
}

// Abort returns a pending submission to Idle, keeping the draft so the
// user can retry.
func (s *Submission) Abort() {
	if s.status == StatusSending {
		s.status = StatusIdle
	}
}

// Reset clears the form after a completed submission.
func (s *Submission) Reset() {
	if s.status == StatusSending {
		return
	}
	s.draft = form.Contact{}
	s.errs = form.Errors{}
	s.status = StatusIdle
}

// Submit runs Begin, the sender and Finish synchronously.
func (s *Submission) Submit(ctx context.Context, sender Sender) (form.Errors, error) {
	msg, errs, err := s.Begin()
	if err != nil || !errs.OK() {
		return errs, err
	}
	if err := sender.Send(ctx, msg); err != nil {
		s.Abort()
		return form.Errors{}, err
	}
	s.Finish()
	return form.Errors{}, nil
}
