// Package tui is the terminal front end of the board: a three-field project
// form with both project lists rendered underneath.
//
// It follows the bubbletea Model/Update/View cycle. Submissions and list
// reads go through the same ports as the HTTP adapter.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

const callTimeout = 5 * time.Second

// Form field positions, in tab order.
const (
	fieldTitle = iota
	fieldDescription
	fieldPeople
	fieldCount
)

type (
	submittedMsg struct {
		project *project.Project
		err     error
	}
	listsMsg struct {
		lists []*ports.ListSnapshot
		err   error
	}
)

// Model is the board's bubbletea model.
type Model struct {
	svc   ports.ProjectService
	board ports.BoardService

	inputs [fieldCount]textinput.Model
	focus  int

	lists  []*ports.ListSnapshot
	banner string
	status string

	width    int
	quitting bool
}

// New creates a Model with the title field focused.
func New(svc ports.ProjectService, board ports.BoardService) Model {
	m := Model{svc: svc, board: board}

	placeholders := [fieldCount]string{"Title", "Description", "People"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Prompt = ""
		in.CharLimit = 2000
		m.inputs[i] = in
	}
	m.inputs[fieldPeople].CharLimit = 4
	m.inputs[fieldTitle].Focus()

	return m
}

// Init loads the lists and starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadLists)
}

// Update handles key presses and the results of submit and list commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case submittedMsg:
		return m.handleSubmitted(msg)

	case listsMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not load lists: %v", msg.err)
			return m, nil
		}
		m.lists = msg.lists
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// The banner blocks the form until it is acknowledged.
	if m.banner != "" {
		m.banner = ""
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd
	case tea.KeyShiftTab, tea.KeyUp:
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case tea.KeyEnter:
		return m, m.submit(m.form())
	}

	return m.updateFocused(msg)
}

func (m Model) handleSubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = ""
		if errors.Is(msg.err, domain.ErrValidation) {
			m.banner = domain.InvalidInputMessage
		} else {
			m.banner = fmt.Sprintf("Could not add project: %v", msg.err)
		}
		return m, nil
	}

	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.status = fmt.Sprintf("Added %q", msg.project.Title)
	cmd := m.setFocus(fieldTitle)

	return m, tea.Batch(m.loadLists, cmd)
}

// setFocus focuses field i and blurs the others.
func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) form() project.Form {
	return project.Form{
		Title:       m.inputs[fieldTitle].Value(),
		Description: m.inputs[fieldDescription].Value(),
		People:      m.inputs[fieldPeople].Value(),
	}
}

func (m Model) submit(form project.Form) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		p, err := m.svc.SubmitProject(ctx, form)
		return submittedMsg{project: p, err: err}
	}
}

func (m Model) loadLists() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	kinds := project.ListKinds()
	lists := make([]*ports.ListSnapshot, 0, len(kinds))
	for _, kind := range kinds {
		snap, err := m.board.List(ctx, kind)
		if err != nil {
			return listsMsg{err: err}
		}
		lists = append(lists, snap)
	}
	return listsMsg{lists: lists}
}
