package state

// View is a top-level screen.
type View int

const (
	ViewHome View = iota
	ViewGames
	ViewContact
)

// Views lists the top-level screens in navigation order.
var Views = []View{ViewHome, ViewGames, ViewContact}

func (v View) String() string {
	switch v {
	case ViewGames:
		return "Juegos"
	case ViewContact:
		return "Contacto"
	default:
		return "Inicio"
	}
}

// Next returns the following view, wrapping around.
func (v View) Next() View {
	return Views[(int(v)+1)%len(Views)]
}

// Tab is a section of the detail view.
type Tab int

const (
	TabDescription Tab = iota
	TabRequirements
	TabDownloads
	TabReviews
)

// Tabs lists the detail sections in display order.
var Tabs = []Tab{TabDescription, TabRequirements, TabDownloads, TabReviews}

func (t Tab) String() string {
	switch t {
	case TabRequirements:
		return "Requisitos"
	case TabDownloads:
		return "Descargas"
	case TabReviews:
		return "Reseñas"
	default:
		return "Descripción"
	}
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}

// Prev returns the preceding tab, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(int(t)+len(Tabs)-1)%len(Tabs)]
}
