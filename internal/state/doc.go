// Package state holds the application state shared by the terminal UI and
// the command line: the catalog store, the active view, the selected item
// and its detail view, the mock authentication overlays and the session.
//
// Every mutation goes through a named method on App and finishes
// synchronously, so callers can read derived values immediately after.
//
// # Usage
//
//	store := catalog.NewStore(items)
//	app := state.New(store, source.NewGenerator(42))
//
//	app.SetView(state.ViewGames)
//	app.Catalog().SetSearchTerm("dragon")
//	if err := app.Select(ctx, app.Catalog().View().Items[0]); err != nil {
//		log.Println("reviews unavailable:", err)
//	}
//
//	if !app.RequestDownload() {
//		// login overlay is now open
//		app.SubmitLogin(form.Login{Email: "ana@example.com", Password: "secret1"})
//	}
package state
