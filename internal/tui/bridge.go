package tui

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

// ErrClosed is returned to the engine once the UI has gone away.
var ErrClosed = errors.New("console closed")

// promptMsg asks the UI to pick one of Options for Player. The answer, an
// index into Options, is sent on reply.
type promptMsg struct {
	Player  string
	Title   string
	Options []string
	Board   string
	reply   chan int
}

type eventMsg struct {
	Event engine.Event
	Board string
}

type matchDoneMsg struct {
	Result engine.Result
	Err    error
}

// Bridge runs on the engine goroutine. It turns every engine prompt into a
// message for the bubbletea program and blocks until the UI answers.
type Bridge struct {
	send  func(tea.Msg)
	match *game.Match

	once sync.Once
	done chan struct{}
}

// NewBridge returns a bridge delivering messages through send, normally
// (*tea.Program).Send. match is only read from the engine goroutine.
func NewBridge(send func(tea.Msg), match *game.Match) *Bridge {
	return &Bridge{send: send, match: match, done: make(chan struct{})}
}

// Close releases a blocked prompt with ErrClosed. Safe to call more than once.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}

func (b *Bridge) ask(p *game.Player, title string, options []string) (int, error) {
	reply := make(chan int, 1)
	select {
	case <-b.done:
		return 0, ErrClosed
	default:
	}
	b.send(promptMsg{Player: p.Name, Title: title, Options: options, Board: board(b.match), reply: reply})
	select {
	case i := <-reply:
		return i, nil
	case <-b.done:
		return 0, ErrClosed
	}
}

func (b *Bridge) Notify(e engine.Event) {
	select {
	case <-b.done:
		return
	default:
	}
	b.send(eventMsg{Event: e, Board: board(b.match)})
}

func (b *Bridge) SelectAction(p *game.Player) (engine.ActionKind, error) {
	kinds := engine.ValidActions(p)
	options := make([]string, len(kinds))
	for i, k := range kinds {
		options[i] = actionLabel(k)
	}
	i, err := b.ask(p, "What will you do?", options)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(kinds) {
		return "", nil
	}
	return kinds[i], nil
}

func (b *Bridge) SelectAttackIndex(p *game.Player) (int, error) {
	var options []string
	if p.Selected != nil {
		for _, a := range p.Selected.Attacks {
			options = append(options, fmt.Sprintf("%s (%s, power %d, acc %d)", a.Name, a.Element, a.Power, a.Accuracy))
		}
	}
	return b.ask(p, "Choose an attack", options)
}

func (b *Bridge) SelectRosterIndex(p *game.Player, excludeFainted bool) (int, error) {
	title := "Choose a creature"
	if excludeFainted {
		title = "Choose a creature to send out"
	}
	return b.ask(p, title, creatureOptions(p.Roster))
}

func (b *Bridge) SelectInventorySlot(p *game.Player) (int, error) {
	options := make([]string, len(p.Inventory))
	for i, s := range p.Inventory {
		options[i] = fmt.Sprintf("%s x%d", s.Item.Name, s.Count)
	}
	return b.ask(p, "Choose an item", options)
}

func (b *Bridge) SelectFaintedIndex(p *game.Player) (int, error) {
	return b.ask(p, "Choose a creature to revive", creatureOptions(p.Fainted))
}

// board renders the selected creature of each side. It runs on the engine
// goroutine so the UI never touches live match state.
func board(m *game.Match) string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range m.Players {
		if p == nil {
			continue
		}
		c := p.Selected
		if c == nil {
			fmt.Fprintf(&sb, "%s: no creature (%d fainted)\n", p.Name, len(p.Fainted))
			continue
		}
		fmt.Fprintf(&sb, "%s: %s [%s] %s %d/%d%s  items:%d\n",
			p.Name, c.Name, c.Element, healthBar(c.Health, c.MaxHealth), c.Health, c.MaxHealth, statusTag(c.Status), p.ItemCount())
	}
	return sb.String()
}

const barWidth = 20

func healthBar(hp, maxHP int) string {
	if maxHP <= 0 {
		return ""
	}
	filled := hp * barWidth / maxHP
	if hp > 0 && filled == 0 {
		filled = 1
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

func creatureOptions(list []*game.Creature) []string {
	options := make([]string, len(list))
	for i, c := range list {
		options[i] = fmt.Sprintf("%s [%s] %d/%d HP%s", c.Name, c.Element, c.Health, c.MaxHealth, statusTag(c.Status))
	}
	return options
}

func statusTag(s game.Status) string {
	if s == game.StatusNone {
		return ""
	}
	return " " + s.String()
}

func actionLabel(k engine.ActionKind) string {
	switch k {
	case engine.ActionAttack:
		return "Attack"
	case engine.ActionUseItem:
		return "Use item"
	case engine.ActionSwitch:
		return "Switch creature"
	}
	return string(k)
}
