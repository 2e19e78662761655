package game

import "github.com/google/uuid"

// Phase is the state of the turn machine.
type Phase string

const (
	PhaseTurnStart Phase = "turn_start"
	PhaseTurnEnd   Phase = "turn_end"
	PhaseMatchOver Phase = "match_over"
)

// Match is the aggregate owning both players for the lifetime of one battle.
type Match struct {
	ID      uuid.UUID  `json:"id"`
	Players [2]*Player `json:"players"`
	// Active is the index in Players of the side taking the current turn.
	Active int   `json:"active"`
	Turn   int   `json:"turn"`
	Phase  Phase `json:"phase"`
	// Winner is nil until the match is over, and stays nil on a draw.
	Winner *Player `json:"-"`
}

func NewMatch(p1, p2 *Player) *Match {
	return &Match{ID: uuid.New(), Players: [2]*Player{p1, p2}, Phase: PhaseTurnStart}
}

func (m *Match) ActivePlayer() *Player   { return m.Players[m.Active] }
func (m *Match) OpposingPlayer() *Player { return m.Players[1-m.Active] }

// Over reports whether the match reached its terminal phase.
func (m *Match) Over() bool { return m.Phase == PhaseMatchOver }
