package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/handiism/gamevault/internal/auth"
	"github.com/handiism/gamevault/internal/catalog"
	"github.com/handiism/gamevault/internal/contact"
	"github.com/handiism/gamevault/internal/form"
	"github.com/handiism/gamevault/internal/model"
	"github.com/handiism/gamevault/internal/source"
)

// DefaultReviewCount is the number of reviews fetched per detail open.
const DefaultReviewCount = 5

// ErrUnknownItem is returned when selecting an ID that is not in the catalog.
var ErrUnknownItem = errors.New("unknown item")

// App is the single owner of mutable application state.
//
// It is not safe for concurrent use.
type App struct {
	store       *catalog.Store
	reviews     source.Reviews
	auth        *auth.Service
	reviewCount int
	logger      *slog.Logger

	view View

	selected    model.Item
	hasSelected bool
	detailOpen  bool
	tab         Tab
	screenshot  int
	itemReviews []model.Review
	reviewErr   error

	loginOpen    bool
	registerOpen bool
	authErrors   form.Errors
	session      *model.Session

	contact *contact.Submission
}

// Option configures an App.
type Option func(*App)

// WithReviewCount sets how many reviews are fetched per detail open.
func WithReviewCount(n int) Option {
	return func(a *App) {
		if n > 0 {
			a.reviewCount = n
		}
	}
}

// WithAuth replaces the authentication service.
func WithAuth(svc *auth.Service) Option {
	return func(a *App) {
		a.auth = svc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// New creates an App on the home view with nothing selected and no session.
func New(store *catalog.Store, reviews source.Reviews, opts ...Option) *App {
	a := &App{
		store:       store,
		reviews:     reviews,
		reviewCount: DefaultReviewCount,
		logger:      slog.Default(),
		view:        ViewHome,
		authErrors:  form.Errors{},
		contact:     contact.NewSubmission(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.auth == nil {
		a.auth = auth.NewService(auth.WithLogger(a.logger))
	}
	return a
}

// Catalog returns the catalog store.
func (a *App) Catalog() *catalog.Store {
	return a.store
}

// Contact returns the contact form submission.
func (a *App) Contact() *contact.Submission {
	return a.contact
}

// View returns the active top-level view.
func (a *App) View() View {
	return a.view
}

// SetView switches the active top-level view.
func (a *App) SetView(v View) {
	a.view = v
}

// SearchEnabled reports whether the search input applies to the active view.
func (a *App) SearchEnabled() bool {
	return a.view == ViewGames
}

// Select makes item the selection, opens the detail view on its first tab
// and screenshot, and fetches a fresh batch of reviews. The detail view
// opens even when fetching reviews fails; the error is returned and also
// kept for ReviewsErr.
func (a *App) Select(ctx context.Context, item model.Item) error {
	a.selected = item
	a.hasSelected = true
	a.detailOpen = true
	a.tab = TabDescription
	a.screenshot = 0
	a.itemReviews = nil
	a.reviewErr = nil

	reviews, err := a.reviews.Reviews(ctx, item.ID, a.reviewCount)
	if err != nil {
		a.reviewErr = fmt.Errorf("failed to load reviews for %s: %w", item.ID, err)
		a.logger.Warn("reviews unavailable", "item_id", item.ID, "error", err)
		return a.reviewErr
	}
	a.itemReviews = reviews
	return nil
}

// SelectByID looks up id in the catalog and selects it.
func (a *App) SelectByID(ctx context.Context, id string) error {
	item, ok := a.store.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return a.Select(ctx, item)
}

// Selected returns the selected item, if any. The selection survives
// closing the detail view.
func (a *App) Selected() (model.Item, bool) {
	return a.selected, a.hasSelected
}

// DetailOpen reports whether the detail view is showing.
func (a *App) DetailOpen() bool {
	return a.detailOpen
}

// CloseDetail hides the detail view and keeps the selection.
func (a *App) CloseDetail() {
	a.detailOpen = false
}

// Tab returns the active detail tab.
func (a *App) Tab() Tab {
	return a.tab
}

// SetTab activates t.
func (a *App) SetTab(t Tab) {
	a.tab = t
}

// NextTab cycles forward through the detail tabs.
func (a *App) NextTab() {
	a.tab = a.tab.Next()
}

// PrevTab cycles backward through the detail tabs.
func (a *App) PrevTab() {
	a.tab = a.tab.Prev()
}

// Screenshot returns the carousel position and the reference shown there.
// ok is false when the selection has no screenshots.
func (a *App) Screenshot() (index int, ref string, ok bool) {
	shots := a.selected.Screenshots
	if len(shots) == 0 {
		return 0, "", false
	}
	return a.screenshot, shots[a.screenshot], true
}

// NextScreenshot advances the carousel, wrapping to the first.
func (a *App) NextScreenshot() {
	if n := len(a.selected.Screenshots); n > 0 {
		a.screenshot = (a.screenshot + 1) % n
	}
}

// PrevScreenshot moves the carousel back, wrapping to the last.
func (a *App) PrevScreenshot() {
	if n := len(a.selected.Screenshots); n > 0 {
		a.screenshot = (a.screenshot - 1 + n) % n
	}
}

// Reviews returns the reviews fetched for the current selection.
func (a *App) Reviews() []model.Review {
	return a.itemReviews
}

// ReviewsErr returns the error from the last review fetch, if any.
func (a *App) ReviewsErr() error {
	return a.reviewErr
}

// OpenLogin shows the login overlay and hides the register overlay.
func (a *App) OpenLogin() {
	a.loginOpen = true
	a.registerOpen = false
	a.authErrors = form.Errors{}
}

// OpenRegister shows the register overlay and hides the login overlay.
func (a *App) OpenRegister() {
	a.registerOpen = true
	a.loginOpen = false
	a.authErrors = form.Errors{}
}

// CloseAuth hides both authentication overlays.
func (a *App) CloseAuth() {
	a.loginOpen = false
	a.registerOpen = false
	a.authErrors = form.Errors{}
}

// LoginOpen reports whether the login overlay is showing.
func (a *App) LoginOpen() bool {
	return a.loginOpen
}

// RegisterOpen reports whether the register overlay is showing.
func (a *App) RegisterOpen() bool {
	return a.registerOpen
}

// AuthErrors returns the validation errors of the open overlay.
func (a *App) AuthErrors() form.Errors {
	return a.authErrors
}

// SubmitLogin validates f. On success it starts a session, closes the
// overlay and reports true so the caller can clear its form. On failure
// the overlay stays open with the errors available from AuthErrors.
func (a *App) SubmitLogin(f form.Login) bool {
	session, errs := a.auth.Login(f)
	if !errs.OK() {
		a.authErrors = errs
		return false
	}
	a.session = session
	a.CloseAuth()
	return true
}

// SubmitRegister is SubmitLogin for the registration form.
func (a *App) SubmitRegister(f form.Register) bool {
	session, errs := a.auth.Register(f)
	if !errs.OK() {
		a.authErrors = errs
		return false
	}
	a.session = session
	a.CloseAuth()
	return true
}

// Session returns the active session, if any.
func (a *App) Session() (model.Session, bool) {
	if a.session == nil {
		return model.Session{}, false
	}
	return *a.session, true
}

// LoggedIn reports whether a session is active.
func (a *App) LoggedIn() bool {
	return a.session != nil && a.session.LoggedIn
}

// Logout ends the session.
func (a *App) Logout() {
	if a.session != nil {
		a.logger.Info("logout", "session_id", a.session.ID)
	}
	a.session = nil
}

// RequestDownload reports whether the selected item may be downloaded.
// Without a session it opens the login overlay and returns false.
func (a *App) RequestDownload() bool {
	if !a.LoggedIn() {
		a.OpenLogin()
		return false
	}
	if a.hasSelected {
		a.logger.Info("simulated download", "item_id", a.selected.ID, "username", a.session.Username)
	}
	return true
}
