package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/service"
)

// Run plays m as a hot-seat match in the terminal. Both players answer
// prompts from the same keyboard. Extra sinks receive every engine event
// alongside the screen.
func Run(m *game.Match, rng engine.Roller, extra []engine.PresentationSink, opts ...tea.ProgramOption) (engine.Result, error) {
	var bridge *Bridge
	model := NewModel("Pokebattle", func() { bridge.Close() })
	p := tea.NewProgram(model, opts...)
	bridge = NewBridge(p.Send, m)

	sinks := append(engine.MultiSink{bridge}, extra...)

	var (
		g   errgroup.Group
		res engine.Result
	)
	g.Go(func() error {
		var err error
		res, err = service.PlayMatch(m, bridge, sinks, rng)
		p.Send(matchDoneMsg{Result: res, Err: err})
		if errors.Is(err, ErrClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer bridge.Close()
		_, err := p.Run()
		return err
	})
	if err := g.Wait(); err != nil {
		return res, err
	}
	if !m.Over() {
		return res, ErrClosed
	}
	return res, nil
}
