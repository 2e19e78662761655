package service

import (
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/logging"
)

// LogSink writes every engine event as a structured log line.
type LogSink struct {
	MatchID string
}

func (s LogSink) Notify(e engine.Event) {
	fields := logging.Fields{
		constants.LogFieldMatchID: s.MatchID,
		constants.LogFieldTurn:    e.Turn,
		constants.LogFieldEvent:   string(e.Kind),
	}
	if e.Player != "" {
		fields[constants.LogFieldPlayer] = e.Player
	}
	if e.Creature != "" {
		fields[constants.LogFieldCreature] = e.Creature
	}
	if e.Kind == engine.EventChoiceRejected {
		logging.Warn(engine.Describe(e), fields)
		return
	}
	logging.Info(engine.Describe(e), fields)
}
