package service

import (
	"strings"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/logging"
)

type MatchRequest struct {
	Player1 PlayerSpec
	Player2 PlayerSpec
}

// NewMatch builds both players from the catalog and wraps them in a match.
func NewMatch(cat engine.Catalog, rules Rules, req MatchRequest) (*game.Match, error) {
	if strings.EqualFold(strings.TrimSpace(req.Player1.Name), strings.TrimSpace(req.Player2.Name)) {
		return nil, ErrDuplicateName
	}
	p1, err := BuildPlayer(cat, rules, req.Player1)
	if err != nil {
		return nil, err
	}
	p2, err := BuildPlayer(cat, rules, req.Player2)
	if err != nil {
		return nil, err
	}
	m := game.NewMatch(p1, p2)
	logging.Info("match created", logging.Fields{
		constants.LogFieldMatchID: m.ID.String(),
		"player1":                 p1.Name,
		"player2":                 p2.Name,
		"roster_size":             len(p1.Roster),
	})
	return m, nil
}
