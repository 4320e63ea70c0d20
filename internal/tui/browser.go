package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/university/internal/person"
)

type item struct {
	p     person.Person
	today time.Time
}

func (i item) Title() string {
	return i.p.GetProfile().FullName()
}

func (i item) Description() string {
	return i.p.Kind().String() + " · " + person.Format(i.p, i.today)
}

func (i item) FilterValue() string { return i.p.GetProfile().FullName() }

// Browser is a read-only, filterable list of directory records.
type Browser struct {
	list     list.Model
	detail   bool
	quitting bool
	today    time.Time
}

// NewBrowser lists persons in the order given.
func NewBrowser(persons []person.Person, today time.Time) Browser {
	items := make([]list.Item, len(persons))
	for i, p := range persons {
		items[i] = item{p: p, today: today}
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Green).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Green).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Copy().Foreground(DarkGreen)

	l := list.New(items, d, 80, 20)
	l.Title = fmt.Sprintf("Directory (%d)", len(persons))
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Foreground(Green).Bold(true).MarginLeft(2)

	return Browser{
		list:  l,
		today: today,
	}
}

func (m Browser) Init() tea.Cmd {
	return nil
}

func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := BoxStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		// Keys belong to the filter input while it is open
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc", "q":
			if m.detail {
				m.detail = false
				return m, nil
			}
			if msg.String() == "esc" && m.list.FilterState() == list.FilterApplied {
				break
			}
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if _, ok := m.list.SelectedItem().(item); ok {
				m.detail = !m.detail
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Browser) View() string {
	if m.quitting {
		return ""
	}
	if m.detail {
		if it, ok := m.list.SelectedItem().(item); ok {
			return DetailStyle.Render(detailView(it.p, m.today))
		}
	}
	return BoxStyle.Render(m.list.View())
}

func detailView(p person.Person, today time.Time) string {
	pr := p.GetProfile()

	var b strings.Builder
	b.WriteString(LabelStyle.Render(pr.FullName()) + "\n")
	b.WriteString(SeparatorStyle.Render(strings.Repeat("─", 40)) + "\n")

	field := func(name, value string) {
		b.WriteString(fmt.Sprintf("%-12s %s\n", name+":", value))
	}
	field("Kind", p.Kind().String())
	field("Birth date", pr.BirthDate.Format(person.DateLayout))
	field("Age", strconv.Itoa(p.Age(today)))

	switch v := p.(type) {
	case *person.Student:
		field("Course", strconv.Itoa(v.Course))
		field("Group", strconv.Itoa(v.Group))
		field("Score", strconv.FormatFloat(v.Score, 'f', -1, 64))
	case *person.Teacher:
		field("Department", v.Department)
		field("Experience", strconv.Itoa(v.Experience))
		field("Position", v.Position.String())
	}
	b.WriteString(MutedStyle.Render(fmt.Sprintf("%-12s %s", "ID:", pr.ID.String())) + "\n")

	b.WriteString("\n" + HelpStyle.Render("enter/esc/q: back to list"))
	return b.String()
}

// Browse runs the browser until the user quits.
func Browse(persons []person.Person, today time.Time) error {
	p := tea.NewProgram(NewBrowser(persons, today), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
