package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding
	Back     key.Binding

	// Playback
	Play key.Binding

	// Favourites
	AddFavourite  key.Binding
	MoveUp        key.Binding
	MoveDown      key.Binding
	DeleteEntry   key.Binding
	ConfirmDelete key.Binding

	// Search
	Search key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First item"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last item"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Open folder"),
		),
		Back: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Parent folder"),
		),

		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Play station"),
		),

		AddFavourite: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add to favourites"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+up", "Move favourite up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+down", "Move favourite down"),
		),
		DeleteEntry: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete favourite"),
		),
		ConfirmDelete: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Confirm delete"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search folder"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp, k.Top, k.Bottom},
		{k.Enter, k.Back, k.Play, k.Search},
		{k.AddFavourite, k.MoveUp, k.MoveDown, k.DeleteEntry},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
