// Package ui implements the Bubble Tea front end: a virtualized list over
// the directory tree, playback keys, and the now-playing status line fed by
// the background poller.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"tunetree/internal/listview"
	"tunetree/internal/outline"
	"tunetree/internal/prefs"
	"tunetree/internal/state"
)

// Player is the slice of the player session the UI drives. Starting the
// process also restarts it when one is already running.
type Player interface {
	Start(url string) error
}

// Poller starts the status polling loop; only the first call has an effect.
type Poller interface {
	Start(ctx context.Context)
}

// Options configure the UI.
type Options struct {
	Context    context.Context
	Root       *outline.Record
	Favourites *outline.Favourites
	Fetcher    outline.Fetcher
	Session    Player
	Store      *state.Store
	Poller     Poller
	ThemeName  string
	PrefsPath  string
	Version    string
}

const uiTick = time.Second

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx        context.Context
	root       *outline.Record
	favourites *outline.Favourites
	fetcher    outline.Fetcher
	session    Player
	store      *state.Store
	poller     Poller
	prefsPath  string
	version    string

	keys   keyMap
	theme  Theme
	styles Styles
	help   help.Model

	node  *outline.Record
	frame *listview.Frame
	list  *listview.List

	width  int
	height int
	ready  bool

	status        string
	notice        string
	showHelp      bool
	confirmDelete bool

	searching   bool
	searchInput textinput.Model
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "search"
	input.CharLimit = 64

	frame := listview.NewFrame(1)
	node := opts.Root
	list := listview.New(frame, nodeSource{node})

	return Model{
		ctx:         ctx,
		root:        opts.Root,
		favourites:  opts.Favourites,
		fetcher:     opts.Fetcher,
		session:     opts.Session,
		store:       opts.Store,
		poller:      opts.Poller,
		prefsPath:   prefsPath,
		version:     opts.Version,
		keys:        DefaultKeyMap(),
		theme:       theme,
		styles:      theme.Styles(),
		help:        help.New(),
		node:        node,
		frame:       frame,
		list:        list,
		searchInput: input,
	}
}

// nodeSource adapts the displayed record's children to the list engine.
// Directories get a trailing separator glyph.
type nodeSource struct {
	node *outline.Record
}

func (s nodeSource) Len() int { return s.node.Len() }

func (s nodeSource) RowText(i int) string {
	r := s.node.Children[i]
	if r.IsDir() {
		return r.Text() + "/"
	}
	return r.Text()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.frame.Resize(m.listRows())
		m.list.Refresh()
		m.ready = true
		m.store.RequestRefresh()
		return m, nil

	case tickMsg:
		m.status = m.store.Status()
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) listRows() int {
	rows := m.height - 2 // header and status line
	if rows < 1 {
		rows = 1
	}
	return rows
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help; the list window repaints underneath, so ask
		// the poller to republish the status line too.
		m.showHelp = false
		m.store.RequestRefresh()
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.confirmDelete {
		m.confirmDelete = false
		if key.Matches(msg, m.keys.ConfirmDelete) {
			m.deleteFavourite()
		} else {
			m.notice = ""
		}
		return m, nil
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.StepDown()
	case key.Matches(msg, m.keys.Up):
		m.list.StepUp()
	case key.Matches(msg, m.keys.Top):
		m.list.JumpTop()
	case key.Matches(msg, m.keys.Bottom):
		m.list.JumpBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.list.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.list.PageDown()

	case key.Matches(msg, m.keys.Enter):
		m.descend()
	case key.Matches(msg, m.keys.Back):
		m.ascend()
	case key.Matches(msg, m.keys.Play):
		m.play()

	case key.Matches(msg, m.keys.AddFavourite):
		m.addFavourite()
	case key.Matches(msg, m.keys.MoveUp):
		m.moveFavourite(-1)
	case key.Matches(msg, m.keys.MoveDown):
		m.moveFavourite(1)
	case key.Matches(msg, m.keys.DeleteEntry):
		m.askDelete()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.jumpToMatch(m.searchInput.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// selected returns the record under the cursor, nil for an empty folder.
func (m *Model) selected() *outline.Record {
	if m.node.Len() == 0 {
		return nil
	}
	return m.node.Children[m.list.Index()]
}

func (m *Model) savePos() {
	m.node.Pos = outline.Position{Cursor: m.list.Cursor(), Index: m.list.Index()}
}

func (m *Model) show(node *outline.Record) {
	m.node = node
	m.list.SetSource(nodeSource{node}, node.Pos.Cursor, node.Pos.Index)
	m.list.Refresh()
	m.store.RequestRefresh()
}

func (m *Model) descend() {
	r := m.selected()
	if r == nil || !r.IsDir() {
		return
	}
	m.savePos()
	r.Populate(m.fetcher)
	m.show(r)
}

func (m *Model) ascend() {
	if m.node.Parent == nil {
		return
	}
	m.savePos()
	m.show(m.node.Parent)
}

func (m *Model) play() {
	r := m.selected()
	if r == nil {
		return
	}
	if !r.IsPlayable() {
		m.descend()
		return
	}
	m.savePos()
	if err := m.session.Start(r.URL()); err != nil {
		m.notice = "player: " + err.Error()
		return
	}
	m.store.SetStation(r.Text())
	m.status = m.store.Status()
	m.poller.Start(m.ctx)
}

func (m *Model) addFavourite() {
	r := m.selected()
	if r == nil {
		return
	}
	if !r.IsPlayable() {
		m.notice = "only stations can be added to favourites"
		return
	}
	if m.favourites.Add(r) {
		m.notice = "added to favourites"
	} else {
		m.notice = "favourites updated, no new entry added"
	}
	if m.node == m.favourites.Record {
		m.list.Refresh()
	}
}

func (m *Model) moveFavourite(dir int) {
	if m.node != m.favourites.Record {
		return
	}
	i := m.list.Index()
	if dir < 0 {
		if m.node.MoveChildUp(i) {
			m.list.MoveUp()
		}
		return
	}
	if m.node.MoveChildDown(i) {
		m.list.MoveDown()
	}
}

func (m *Model) askDelete() {
	if m.node != m.favourites.Record || m.selected() == nil {
		return
	}
	m.confirmDelete = true
	m.notice = fmt.Sprintf("delete %q? press y to confirm", m.selected().Text())
}

func (m *Model) deleteFavourite() {
	if m.node != m.favourites.Record {
		return
	}
	if m.node.RemoveChild(m.list.Index()) {
		m.notice = "favourite deleted"
		m.list.Refresh()
	}
}

func (m *Model) jumpToMatch(query string) {
	query = strings.TrimSpace(query)
	if query == "" || m.node.Len() == 0 {
		return
	}
	texts := make([]string, m.node.Len())
	for i, c := range m.node.Children {
		texts[i] = c.Text()
	}
	matches := fuzzy.Find(query, texts)
	if len(matches) == 0 {
		m.notice = fmt.Sprintf("no match for %q", query)
		return
	}
	m.list.JumpTo(matches[0].Index)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	for row := 0; row < m.frame.Rows(); row++ {
		b.WriteString(m.renderRow(row))
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := fmt.Sprintf("tunetree v%s", m.version)
	crumb := m.breadcrumb()
	avail := m.width - len([]rune(title)) - 2
	out := m.styles.Header.Render(truncate(title, m.width))
	if crumb != "" && avail > 0 {
		out += "  " + m.styles.Muted.Render(truncate(crumb, avail))
	}
	return out
}

func (m Model) renderRow(row int) string {
	cell := m.frame.Row(row)
	text := truncate(cell.Text, m.width)
	if cell.Selected {
		return m.styles.Selected.Render(text)
	}
	if strings.HasSuffix(cell.Text, "/") {
		return m.styles.Directory.Render(text)
	}
	return m.styles.Text.Render(text)
}

func (m Model) renderFooter() string {
	if m.searching {
		return m.searchInput.View()
	}
	if m.notice != "" {
		return m.styles.Notice.Render(truncate(m.notice, m.width))
	}
	return m.styles.Status.Render(truncate(m.status, m.width))
}

func (m Model) renderHelp() string {
	m.help.ShowAll = true
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Press any key to continue..."))
	return b.String()
}

func (m Model) breadcrumb() string {
	var parts []string
	for n := m.node; n != nil && n.Parent != nil; n = n.Parent {
		parts = append([]string{n.Text()}, parts...)
	}
	if len(parts) == 0 {
		return ""
	}
	return "/" + strings.Join(parts, "/")
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Messages

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(uiTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
