package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Jinsoo1210/carrot/internal/calendar"
	"github.com/Jinsoo1210/carrot/internal/checklist"
	"github.com/Jinsoo1210/carrot/internal/edit"
	"github.com/Jinsoo1210/carrot/internal/logs"
	"github.com/Jinsoo1210/carrot/internal/selection"
	"github.com/Jinsoo1210/carrot/internal/todo"
)

// Screen layout rows.
const (
	headerRow = 0
	stripTop  = 2
	listTop   = stripTop + stripRows + 1
)

// inputMode says what the text input is currently collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputRename
	inputFilter
	inputExport
	inputImport
)

// Options holds configuration needed by the TUI.
type Options struct {
	Theme        Theme
	Locale       calendar.Locale
	Window       calendar.WindowOptions
	FollowScroll bool
	MaxTitle     int
	Today        time.Time // anchor day; zero means now
	Start        time.Time // initially selected day; zero means today
	Seed         []checklist.Day
}

type mountMsg struct{}

type focusMsg struct {
	token edit.FocusToken
}

type exportDoneMsg struct {
	path string
	days int
	err  error
}

type importLoadedMsg struct {
	path string
	days []checklist.Day
	err  error
}

// homeModel is the home screen: date header, calendar strip and the todo
// list of the selected day.
type homeModel struct {
	opts   Options
	keys   keyMap
	help   help.Model
	mapper calendar.Mapper
	window *calendar.Window
	sel    *selection.Controller
	store  *todo.Store
	coord  *edit.Coordinator
	// Todo list
	cursor int
	filter string
	// Text input (add, rename, filter, export and import paths)
	input textinput.Model
	mode  inputMode
	// Action sheet
	actionCursor int
	// Help overlay
	helpActive bool
	// Common
	status  string
	width   int
	height  int
	ready   bool
	mounted bool
}

func newHomeModel(opts Options) homeModel {
	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	mapper := calendar.NewMapper(today)
	window := calendar.NewWindow(calendar.Center, opts.Window)
	sel := selection.New(mapper, window)
	sel.SetFollowScroll(opts.FollowScroll)
	if !opts.Start.IsZero() {
		sel.SelectDate(opts.Start)
	}

	store := todo.NewStore(sel, todo.WithMaxTitle(opts.MaxTitle))
	coord := edit.New(store)
	sel.Subscribe(func(selection.Selection) { coord.Reset() })
	if n := checklist.Apply(store, opts.Seed); n > 0 {
		logs.Logger.Printf("seeded %d todos", n)
	}

	ti := textinput.New()
	ti.CharLimit = store.MaxTitle()

	return homeModel{
		opts:   opts,
		keys:   defaultKeyMap(),
		help:   help.New(),
		mapper: mapper,
		window: window,
		sel:    sel,
		store:  store,
		coord:  coord,
		input:  ti,
	}
}

func (m homeModel) Init() tea.Cmd {
	return tea.Tick(edit.MountDelay, func(time.Time) tea.Msg { return mountMsg{} })
}

func (m homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		m.window.SetViewport(msg.Width)
		if m.mounted {
			m.window.CenterOn(m.sel.Selected().Index, 0.5)
		}
		return m, nil

	case mountMsg:
		m.mounted = true
		m.window.CenterOn(m.sel.Selected().Index, 0.5)
		return m, nil

	case focusMsg:
		if !m.coord.FocusDue(msg.token) {
			return m, nil
		}
		return m, m.input.Focus()

	case exportDoneMsg:
		if msg.err != nil {
			logs.Logger.Printf("export %s: %v", msg.path, msg.err)
			m.status = fmt.Sprintf("export failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("exported %d days to %s", msg.days, msg.path)
		return m, nil

	case importLoadedMsg:
		if msg.err != nil {
			logs.Logger.Printf("import %s: %v", msg.path, msg.err)
			m.status = fmt.Sprintf("import failed: %v", msg.err)
			return m, nil
		}
		n := checklist.Apply(m.store, msg.days)
		logs.Logger.Printf("imported %d todos from %s", n, msg.path)
		m.status = fmt.Sprintf("imported %d todos", n)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		// Help overlay: intercept all keys when active
		if m.helpActive {
			if key.Matches(msg, m.keys.Help, m.keys.Back) {
				m.helpActive = false
			}
			return m, nil
		}

		if m.mode != inputNone {
			return m.updateInput(msg)
		}

		if m.coord.State() == edit.ActionOpen {
			return m.updateActions(msg)
		}

		return m.updateHome(msg)
	}

	if m.mode != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m homeModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	prev := m.sel.Key()
	cmd := m.homeKey(msg)
	m.daySwitched(prev)
	return m, cmd
}

func (m *homeModel) homeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpActive = true
	case key.Matches(msg, m.keys.PrevDay):
		m.applySelection(m.sel.Step(-1))
	case key.Matches(msg, m.keys.NextDay):
		m.applySelection(m.sel.Step(1))
	case key.Matches(msg, m.keys.Today):
		m.applySelection(m.sel.GoToToday(), true)
	case key.Matches(msg, m.keys.PanLeft):
		m.pan(-m.window.ItemWidth())
	case key.Matches(msg, m.keys.PanRight):
		m.pan(m.window.ItemWidth())
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if e, ok := m.current(); ok {
			m.store.Toggle(e.ID)
		}
	case key.Matches(msg, m.keys.Actions):
		if e, ok := m.current(); ok {
			m.coord.OpenActions(e.ID)
			m.actionCursor = 0
		}
	case key.Matches(msg, m.keys.Edit):
		if e, ok := m.current(); ok {
			return m.beginRename(e, m.coord.BeginEdit(e.ID))
		}
	case key.Matches(msg, m.keys.Add):
		return m.openInput(inputAdd, "", "New todo")
	case key.Matches(msg, m.keys.Filter):
		return m.openInput(inputFilter, m.filter, "Filter")
	case key.Matches(msg, m.keys.Export):
		return m.openInput(inputExport, "carrot-"+m.sel.Key()+".md", "Export to (.md or .pdf)")
	case key.Matches(msg, m.keys.Import):
		return m.openInput(inputImport, "", "Import checklist")
	}
	return nil
}

func (m homeModel) updateActions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.coord.Choose(edit.ActionCancel)
	case key.Matches(msg, m.keys.ActionUp):
		if m.actionCursor > 0 {
			m.actionCursor--
		}
	case key.Matches(msg, m.keys.ActionDown):
		if m.actionCursor < len(edit.Actions)-1 {
			m.actionCursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		return m.choose(edit.Actions[m.actionCursor])
	}
	return m, nil
}

func (m homeModel) choose(a edit.Action) (tea.Model, tea.Cmd) {
	id, _ := m.coord.Target()
	tok := m.coord.Choose(a)
	switch a {
	case edit.ActionEdit:
		if e, ok := m.store.Get(id); ok {
			return m, m.beginRename(e, tok)
		}
	case edit.ActionDelete:
		m.clampCursor()
	}
	return m, nil
}

func (m homeModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.mode == inputFilter {
			m.filter = ""
			m.cursor = 0
		}
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == inputFilter {
		m.filter = m.input.Value()
		m.clampCursor()
	}
	return m, cmd
}

func (m homeModel) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	mode := m.mode
	target, _ := m.coord.Target()
	m.closeInput()

	switch mode {
	case inputAdd:
		if _, ok := m.store.Add(value); ok {
			m.cursor = len(m.store.List()) - 1
			m.filter = ""
		}
	case inputRename:
		m.store.Rename(target, value)
	case inputFilter:
		m.filter = value
		m.clampCursor()
	case inputExport:
		path := strings.TrimSpace(value)
		if path == "" {
			return m, nil
		}
		return m, exportCmd(path, checklist.FromStore(m.store))
	case inputImport:
		path := strings.TrimSpace(value)
		if path == "" {
			return m, nil
		}
		return m, importCmd(path, m.sel.Key())
	}
	return m, nil
}

func (m homeModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	prev := m.sel.Key()
	m.mouse(msg)
	m.daySwitched(prev)
	return m, nil
}

func (m *homeModel) mouse(msg tea.MouseMsg) {
	onStrip := msg.Y >= stripTop && msg.Y < stripTop+stripRows
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if onStrip {
			m.pan(-m.window.ItemWidth())
		} else if m.cursor > 0 {
			m.cursor--
		}
		return
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if onStrip {
			m.pan(m.window.ItemWidth())
		} else if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if m.mode != inputNone || m.helpActive {
		return
	}

	switch {
	case msg.Y == headerRow && msg.X >= m.width-lipgloss.Width(m.todayButton()):
		m.applySelection(m.sel.GoToToday(), true)
	case onStrip:
		if i, ok := m.window.IndexAt(msg.X); ok {
			m.applySelection(m.sel.SelectByIndex(i))
		}
	case msg.Y >= m.rowsTop():
		row := msg.Y - m.rowsTop()
		rows := m.rows()
		if row < len(rows) && m.coord.State() == edit.Idle {
			m.cursor = row
			// The checkbox column toggles, the title opens the sheet.
			if msg.X < 6 {
				m.store.Toggle(rows[row].ID)
			} else {
				m.coord.OpenActions(rows[row].ID)
				m.actionCursor = 0
			}
		}
	}
}

// applySelection scrolls the strip to a successful selection.
func (m *homeModel) applySelection(cmd selection.ScrollCommand, ok bool) {
	if ok {
		m.window.CenterOn(cmd.Index, cmd.ViewPosition)
	}
}

// pan scrolls the strip without selecting. In follow mode the day under the
// viewport centre becomes the selection.
func (m *homeModel) pan(delta int) {
	m.window.ScrollBy(delta)
	m.sel.FollowScroll(m.window.CenterIndex())
}

// daySwitched resets the list state when the selected day is no longer prev.
func (m *homeModel) daySwitched(prev string) {
	if m.sel.Key() == prev {
		return
	}
	m.cursor = 0
	m.filter = ""
	if m.mode == inputRename {
		m.closeInput()
	}
}

func (m *homeModel) openInput(mode inputMode, value, placeholder string) tea.Cmd {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.CharLimit = 0
	if mode == inputAdd || mode == inputRename {
		m.input.CharLimit = m.store.MaxTitle()
	}
	m.input.SetValue(value)
	return m.input.Focus()
}

// beginRename opens the input on e without focus. Focus arrives with the
// token once FocusDelay has passed.
func (m *homeModel) beginRename(e todo.Entry, tok edit.FocusToken) tea.Cmd {
	m.mode = inputRename
	m.input.Reset()
	m.input.Placeholder = ""
	m.input.CharLimit = m.store.MaxTitle()
	m.input.SetValue(e.Title)
	m.input.Blur()
	return tea.Tick(edit.FocusDelay, func(time.Time) tea.Msg { return focusMsg{token: tok} })
}

func (m *homeModel) closeInput() {
	if m.mode == inputRename {
		m.coord.Blur()
	}
	m.mode = inputNone
	m.input.Blur()
	m.input.Reset()
}

// rows returns the selected day's todos after the filter.
func (m *homeModel) rows() []todo.Entry {
	entries := m.store.List()
	if m.filter == "" {
		return entries
	}
	matches := todo.Search(entries, m.filter)
	out := make([]todo.Entry, len(matches))
	for i, match := range matches {
		out[i] = match.Entry
	}
	return out
}

func (m *homeModel) current() (todo.Entry, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return todo.Entry{}, false
	}
	return rows[m.cursor], true
}

func (m *homeModel) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *homeModel) rowsTop() int {
	if m.filter != "" {
		return listTop + 1
	}
	return listTop
}

func (m homeModel) todayButton() string {
	return m.opts.Theme.AccentStyle().Render("[t] " + m.opts.Locale.TodayLabel())
}

func exportCmd(path string, days []checklist.Day) tea.Cmd {
	return func() tea.Msg {
		var err error
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			err = checklist.WritePDF(path, days)
		} else {
			err = writeMarkdownFile(path, days)
		}
		return exportDoneMsg{path: path, days: len(days), err: err}
	}
}

func writeMarkdownFile(path string, days []checklist.Day) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return checklist.WriteMarkdown(f, days)
}

func importCmd(path, fallback string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importLoadedMsg{path: path, err: err}
		}
		defer f.Close()
		days, err := checklist.Parse(f, fallback)
		return importLoadedMsg{path: path, days: days, err: err}
	}
}

func (m homeModel) View() string {
	if !m.ready {
		// No PaintScreen here: dimensions are unknown until the first WindowSizeMsg.
		return "Loading..."
	}
	if m.helpActive {
		return m.opts.Theme.ClearLineEnds(m.helpOverlay())
	}

	theme := m.opts.Theme
	loc := m.opts.Locale
	date := m.sel.Selected().Date

	var sections []string

	// Header: compact date on the left, today button on the right
	left := theme.HeaderStyle().Render(loc.Heading(date))
	right := m.todayButton()
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	sections = append(sections, left+theme.ViewPaneStyle().Render(strings.Repeat(" ", gap))+right)
	sections = append(sections, theme.HelpStyle().Render(loc.MonthYear(date)))

	// Strip
	sections = append(sections, renderStrip(m.window, m.mapper, m.sel.Selected().Index, loc, theme))
	sections = append(sections, "")

	// Todos
	if m.filter != "" {
		sections = append(sections, theme.AccentStyle().Render("filter: "+m.filter))
	}
	sections = append(sections, m.listView())

	// Action sheet
	if m.coord.State() == edit.ActionOpen {
		sections = append(sections, "", m.actionsView())
	}

	// Footer
	switch {
	case m.mode != inputNone && m.mode != inputRename:
		sections = append(sections, "", m.input.View())
	case m.status != "":
		sections = append(sections, "", theme.HelpStyle().Render(m.status))
	}
	sections = append(sections, theme.HelpStyle().Render(m.help.View(m.keys)))

	return theme.PaintScreen(strings.Join(sections, "\n"), m.width, m.height, m.width)
}

func (m homeModel) listView() string {
	theme := m.opts.Theme
	rows := m.rows()
	if len(rows) == 0 {
		if m.filter != "" {
			return theme.HelpStyle().Render("  no matches")
		}
		return theme.HelpStyle().Render("  nothing planned. press a to add a todo")
	}

	lines := make([]string, len(rows))
	for i, e := range rows {
		focused := i == m.cursor
		pointer := "  "
		if focused {
			pointer = "> "
		}
		box := "[ ] "
		if e.Checked {
			box = "[x] "
		}
		title := theme.TodoStyle(e.Checked, focused).Render(e.Title)
		if m.coord.Editing(e.ID) {
			title = m.input.View()
		}
		lines[i] = theme.AccentStyle().Render(pointer) + theme.ViewPaneStyle().Render(box) + title
	}
	return strings.Join(lines, "\n")
}

func (m homeModel) actionsView() string {
	theme := m.opts.Theme
	id, _ := m.coord.Target()
	e, _ := m.store.Get(id)

	var b strings.Builder
	b.WriteString(theme.HeaderStyle().Render(e.Title))
	for i, a := range edit.Actions {
		b.WriteString("\n")
		label := "  " + a.String()
		style := theme.ViewPaneStyle()
		if a == edit.ActionDelete {
			style = theme.DangerStyle()
		}
		if i == m.actionCursor {
			label = "> " + a.String()
			if a != edit.ActionDelete {
				style = theme.AccentStyle()
			}
		}
		b.WriteString(style.Render(label))
	}
	sheet := theme.BorderStyle().Padding(0, 1).Render(b.String())

	if m.coord.InfoVisible() {
		info := RenderMarkdown(infoMarkdown(e, m.sel.Key(), m.opts.Locale), max(m.width-4, 20), theme.MarkdownStyle)
		sheet += "\n" + info
	}
	return sheet
}

func (m homeModel) helpOverlay() string {
	width := min(max(m.width-8, 20), 60)
	intro := wordwrap.String("Each day on the strip keeps its own todo list while carrot runs. "+
		"Pick a day with the arrow keys or a click, then add, check and edit todos for it.", width)
	body := intro + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()) + "\n\n? close help"
	box := m.opts.Theme.BorderStyle().Padding(1, 2).Width(width + 4).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(m.opts.Theme.Background))
}

// RunTUI launches the home screen.
func RunTUI(opts Options) error {
	p := tea.NewProgram(newHomeModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
