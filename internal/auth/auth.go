// Package auth implements the mock login and registration flow.
//
// Any input that passes form validation is accepted. No credentials are
// stored or verified; a Session is simply minted for the caller. This is
// a stand-in for a real identity provider, not a security model.
package auth

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/handiism/gamevault/internal/form"
	"github.com/handiism/gamevault/internal/model"
)

// Service creates sessions from validated forms.
type Service struct {
	newID  func() string
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithIDFunc overrides session ID generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// WithLogger sets the logger used for sign-in events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service that issues random UUID session IDs.
func NewService(opts ...Option) *Service {
	s := &Service{
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login validates f and, when it is valid, returns a new session whose
// username is the local part of the email. On failure the session is nil
// and the returned Errors are non-empty.
func (s *Service) Login(f form.Login) (*model.Session, form.Errors) {
	if errs := f.Validate(); !errs.OK() {
		return nil, errs
	}
	session := s.session(f.Username(), f.Email)
	s.logger.Info("mock login", "session_id", session.ID, "username", session.Username)
	return session, form.Errors{}
}

// Register validates f and, when it is valid, returns a new session for
// the chosen username.
func (s *Service) Register(f form.Register) (*model.Session, form.Errors) {
	if errs := f.Validate(); !errs.OK() {
		return nil, errs
	}
	session := s.session(f.Username, f.Email)
	s.logger.Info("mock registration", "session_id", session.ID, "username", session.Username)
	return session, form.Errors{}
}

func (s *Service) session(username, email string) *model.Session {
	return &model.Session{
		ID:       s.newID(),
		Username: username,
		Email:    email,
		LoggedIn: true,
	}
}
