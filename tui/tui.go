package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/ui"
	"todolist/listclient"
)

// entryItem adapts a listclient.Entry to bubbles/list.Item
type entryItem struct {
	entry listclient.Entry
}

func (i entryItem) Title() string       { return i.entry.Item.Name }
func (i entryItem) Description() string { return "" }
func (i entryItem) FilterValue() string { return i.entry.Item.Name }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}

	box := ui.MutedStyle.Render(ui.BoxUnchecked)
	text := it.entry.Item.Name
	if it.entry.Class() == "done" {
		box = ui.SuccessStyle.Render(ui.BoxChecked)
		text = ui.DoneStyle.Render(text)
	}
	if !it.entry.HasDoneControl {
		box = " "
	}

	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

// reloadedMsg carries the view after a load or a mutation and its reload.
type reloadedMsg struct {
	entries []listclient.Entry
	err     error
}

// Model is the interactive list: a name field plus the item list.
type Model struct {
	ctx    context.Context
	client *listclient.Client

	list   list.Model
	input  textinput.Model
	typing bool // the name field has focus
	status string

	width, height int
}

var (
	addBind    = key.NewBinding(key.WithKeys("a", "tab"), key.WithHelp("a", "add"))
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done"))
	removeBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	reloadBind = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
)

// New builds the model; nothing is fetched until Init runs.
func New(ctx context.Context, client *listclient.Client) Model {
	l := list.New(nil, itemDelegate{}, 76, 18)
	l.Title = ui.Header(0, 0)
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.SetStatusBarItemName("item", "items")

	bindings := []key.Binding{addBind, reloadBind}
	if client.Revision().HasDoneControl() {
		bindings = append(bindings, toggleBind)
	}
	if client.Revision().HasRemoveControl() {
		bindings = append(bindings, removeBind)
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return bindings }
	l.AdditionalFullHelpKeys = func() []key.Binding { return bindings }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item name, Enter to add"
	ti.CharLimit = 200

	return Model{
		ctx:    ctx,
		client: client,
		list:   l,
		input:  ti,
		width:  80,
		height: 24,
	}
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, client *listclient.Client) error {
	_, err := tea.NewProgram(New(ctx, client), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		entries, err := client.Load(ctx)
		if err != nil {
			entries = client.Entries()
		}
		return reloadedMsg{entries: entries, err: err}
	}
}

// mutateCmd runs a client mutation (which reloads on its own) off the UI loop.
func (m Model) mutateCmd(fn func(ctx context.Context) error) tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		err := fn(ctx)
		return reloadedMsg{entries: client.Entries(), err: err}
	}
}

func (m Model) selected() (listclient.Entry, bool) {
	it, ok := m.list.SelectedItem().(entryItem)
	return it.entry, ok
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case reloadedMsg:
		m.status = ""
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		items := make([]list.Item, len(msg.entries))
		done := 0
		for i, e := range msg.entries {
			items[i] = entryItem{entry: e}
			if e.Item.Done {
				done++
			}
		}
		m.list.Title = ui.Header(done, len(msg.entries)-done)
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		if m.typing {
			return m.updateInput(msg)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a", "tab":
			m.typing = true
			return m, m.input.Focus()
		case "r":
			return m, m.loadCmd()
		case " ", "space":
			e, ok := m.selected()
			if !ok || !e.HasDoneControl {
				return m, nil
			}
			return m, m.mutateCmd(func(ctx context.Context) error { return m.client.ToggleDone(ctx, e) })
		case "d":
			e, ok := m.selected()
			if !ok || !e.HasRemoveControl {
				return m, nil
			}
			return m, m.mutateCmd(func(ctx context.Context) error { return m.client.RemoveItem(ctx, e) })
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.typing = false
		m.input.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		value := m.input.Value()
		m.input.SetValue("")
		return m, m.mutateCmd(func(ctx context.Context) error { return m.client.KeyPress(ctx, "enter", value) })
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	listHeight := m.height - 6
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(ui.ErrorStyle.Render(m.status))
	}
	return ui.Panel(b.String())
}
