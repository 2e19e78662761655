package engine

import "errors"

// Precondition errors. The engine leaves state unchanged when returning one of
// these so the caller can retry with a corrected choice.
var (
	ErrNilArgument        = errors.New("required argument is nil")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrTargetFainted      = errors.New("target has fainted")
	ErrTargetNotFainted   = errors.New("target has not fainted")
	ErrNoItemsLeft        = errors.New("no items left in that slot")
	ErrNoItems            = errors.New("inventory is empty")
	ErrNoFaintedCreatures = errors.New("no fainted creature to revive")
	ErrSameCreature       = errors.New("creature is already in battle")
	ErrNoAlternative      = errors.New("no other creature to switch to")
	ErrUnknownAction      = errors.New("unknown action")
	ErrUnknownConsumable  = errors.New("unknown consumable kind")
	ErrNoAttacks          = errors.New("creature has no attacks")
)

// Errors that are not re-promptable.
var (
	ErrMatchOver  = errors.New("match is over")
	ErrNoCreature = errors.New("player has no creature in battle")
)

var preconditionErrors = []error{
	ErrNilArgument, ErrIndexOutOfRange, ErrTargetFainted, ErrTargetNotFainted,
	ErrNoItemsLeft, ErrNoItems, ErrNoFaintedCreatures, ErrSameCreature,
	ErrNoAlternative, ErrUnknownAction, ErrUnknownConsumable, ErrNoAttacks,
}

// IsPrecondition reports whether err is a re-promptable input error.
func IsPrecondition(err error) bool {
	for _, p := range preconditionErrors {
		if errors.Is(err, p) {
			return true
		}
	}
	return false
}
