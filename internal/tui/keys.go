package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Home    key.Binding
	Games   key.Binding
	Contact key.Binding
	Account key.Binding

	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Open   key.Binding
	Back   key.Binding
	Search key.Binding

	Sort        key.Binding
	Category    key.Binding
	Popularity  key.Binding
	Rating      key.Binding
	Size        key.Binding
	GenrePrev   key.Binding
	GenreNext   key.Binding
	GenreToggle key.Binding
	ClearFilter key.Binding

	Tab      key.Binding
	ShiftTab key.Binding
	Download key.Binding

	Submit   key.Binding
	SwitchTo key.Binding
	Toggle   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "salir")),
		Home:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "inicio")),
		Games:   key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "juegos")),
		Contact: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "contacto")),
		Account: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "cuenta")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "bajar")),
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "anterior")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "siguiente")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "volver")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),

		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "ordenar")),
		Category:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "categoría")),
		Popularity:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "popularidad")),
		Rating:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "calificación")),
		Size:        key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "tamaño")),
		GenrePrev:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "género ant.")),
		GenreNext:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "género sig.")),
		GenreToggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("espacio", "marcar género")),
		ClearFilter: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "limpiar filtros")),

		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "siguiente")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "anterior")),
		Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "descargar")),

		Submit:   key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "enviar")),
		SwitchTo: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "cambiar formulario")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("espacio", "marcar")),
	}
}

func (k keyMap) nav() []key.Binding {
	return []key.Binding{k.Home, k.Games, k.Contact, k.Account, k.Quit}
}

func (k keyMap) homeHelp() []key.Binding {
	return append([]key.Binding{k.Up, k.Down, k.Open}, k.nav()...)
}

func (k keyMap) gamesHelp() []key.Binding {
	return append([]key.Binding{
		k.Up, k.Down, k.Prev, k.Next, k.Open, k.Search,
		k.Sort, k.Category, k.Popularity, k.Rating, k.Size,
		k.GenrePrev, k.GenreNext, k.GenreToggle, k.ClearFilter,
	}, k.nav()...)
}

func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/esc", "terminar búsqueda")),
		k.Quit,
	}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Tab, k.ShiftTab, k.Prev, k.Next, k.Download, k.Back, k.Quit}
}

func (k keyMap) authHelp() []key.Binding {
	return []key.Binding{k.Tab, k.ShiftTab, k.Submit, k.Toggle, k.SwitchTo, k.Back}
}

func (k keyMap) contactHelp() []key.Binding {
	return append([]key.Binding{
		k.Tab, k.ShiftTab,
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "enviar")),
	}, k.nav()...)
}
