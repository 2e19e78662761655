package service

import (
	"math/rand"
	"time"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/logging"
)

// NewRoller returns a seeded random source for the engine. A zero seed uses
// the current time.
func NewRoller(seed int64) engine.Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// PlayMatch runs m to completion and logs its lifecycle. It blocks for as
// long as choices does.
func PlayMatch(m *game.Match, choices engine.ChoiceSource, sink engine.PresentationSink, rng engine.Roller) (engine.Result, error) {
	ctl, err := engine.NewController(m, choices, sink, rng)
	if err != nil {
		return engine.Result{}, err
	}
	fields := logging.Fields{constants.LogFieldMatchID: m.ID.String()}
	logging.Info("match started", logging.Fields{
		constants.LogFieldMatchID: m.ID.String(),
		constants.LogFieldPlayer:  m.ActivePlayer().Name,
	})

	res, err := ctl.Run()
	fields[constants.LogFieldTurn] = res.Turns
	if err != nil {
		logging.Error("match aborted", err, fields)
		return res, err
	}
	switch {
	case res.Draw:
		logging.Info("match ended in a draw", fields)
	case res.Winner != nil:
		fields[constants.LogFieldWinner] = res.Winner.Name
		logging.Info("match finished", fields)
	}
	return res, nil
}
