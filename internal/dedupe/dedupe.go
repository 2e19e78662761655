package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent catalog loads. Only one query runs for a given key while other
// callers wait for its result.

import "golang.org/x/sync/singleflight"

// AttackSetGroup deduplicates attack-set loads keyed by element
// and repository.
var AttackSetGroup singleflight.Group

// SpeciesGroup deduplicates species template loads keyed by species ID
// and repository.
var SpeciesGroup singleflight.Group
