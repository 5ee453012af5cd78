package model

// Session is the record produced by a successful mock login or
// registration. It holds no credentials and is never verified.
type Session struct {
	ID       string
	Username string
	Email    string
	LoggedIn bool
}
