package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
)

// maxLogLines bounds the battle log kept on screen.
const maxLogLines = 12

type Model struct {
	Title    string
	Log      []string
	Board    string
	Prompt   *promptMsg
	Cursor   int
	Waiting  bool
	Done     bool
	Result   engine.Result
	Quitting bool
	Spinner  spinner.Model
	Err      error

	// onQuit releases the engine goroutine when the user leaves early.
	onQuit func()
}

func NewModel(title string, onQuit func()) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		Title:   title,
		Waiting: true,
		Spinner: s,
		onQuit:  onQuit,
	}
}

func (m Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			if m.onQuit != nil {
				m.onQuit()
			}
			return m, tea.Quit
		case "up", "k":
			if m.Prompt != nil && m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Prompt != nil && m.Cursor < len(m.Prompt.Options)-1 {
				m.Cursor++
			}
		case "enter", " ":
			if m.Prompt != nil && len(m.Prompt.Options) > 0 {
				return m.answer(m.Cursor)
			}
		default:
			if n, err := strconv.Atoi(msg.String()); err == nil && m.Prompt != nil && n >= 1 && n <= len(m.Prompt.Options) {
				return m.answer(n - 1)
			}
		}
	case promptMsg:
		m.Prompt = &msg
		m.Cursor = 0
		m.Waiting = false
		if msg.Board != "" {
			m.Board = msg.Board
		}
		if len(msg.Options) == 0 {
			// Nothing to pick from; let the engine reject the choice.
			return m.answer(0)
		}
	case eventMsg:
		m.Log = append(m.Log, engine.Describe(msg.Event))
		if len(m.Log) > maxLogLines {
			m.Log = m.Log[len(m.Log)-maxLogLines:]
		}
		if msg.Board != "" {
			m.Board = msg.Board
		}
	case matchDoneMsg:
		m.Done = true
		m.Waiting = false
		m.Prompt = nil
		m.Result = msg.Result
		m.Err = msg.Err
	case spinner.TickMsg:
		if m.Waiting {
			var cmd tea.Cmd
			m.Spinner, cmd = m.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if len(cmds) > 0 {
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

// answer hands choice to the waiting engine goroutine.
func (m Model) answer(choice int) (tea.Model, tea.Cmd) {
	m.Prompt.reply <- choice
	m.Prompt = nil
	m.Cursor = 0
	m.Waiting = true
	return m, m.Spinner.Tick
}

func (m Model) View() string {
	if m.Quitting {
		return "Goodbye\n"
	}
	s := fmt.Sprintf("-- %s --\n", m.Title)
	if m.Board != "" {
		s += m.Board + "\n"
	}
	if len(m.Log) > 0 {
		s += strings.Join(m.Log, "\n") + "\n\n"
	}
	switch {
	case m.Done:
		if m.Err != nil {
			s += fmt.Sprintf("Error: %v\n", m.Err)
		} else if m.Result.Draw {
			s += "The battle ended in a draw.\n"
		} else if m.Result.Winner != nil {
			s += fmt.Sprintf("%s won in %d turns.\n", m.Result.Winner.Name, m.Result.Turns)
		}
		s += "[q] Quit"
	case m.Prompt != nil:
		s += fmt.Sprintf("%s: %s\n", m.Prompt.Player, m.Prompt.Title)
		for i, o := range m.Prompt.Options {
			cursor := " "
			if i == m.Cursor {
				cursor = ">"
			}
			s += fmt.Sprintf("%s [%d] %s\n", cursor, i+1, o)
		}
		s += "[up/down] Move  [enter] Choose  [q] Quit"
	case m.Waiting:
		s += fmt.Sprintf("%s Resolving...\n", m.Spinner.View())
	}
	return s
}
