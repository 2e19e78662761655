package constants

// Centralized constants for env keys, routes and log fields.
const (
	// Environment variable keys
	EnvConfigPath = "POKEBATTLE_CONFIG"
	EnvDatabase   = "POKEBATTLE_DB"
	EnvAddress    = "POKEBATTLE_ADDR"

	DefaultConfigPath = "pokebattle_config.yaml"
	DefaultDatabase   = "pokebattle.db"
	DefaultAddress    = ":8080"

	CacheControlHeader = "Cache-Control"
	CacheControlPublic = "public, max-age=300"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteSpecies       = "/species"
	RouteSpeciesByID   = "/species/:id"
	RouteMoves         = "/moves"
	RouteEffectiveness = "/effectiveness"
	RouteVersion       = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidSpeciesID     = "Invalid species ID"
	ErrSpeciesNotFound      = "Species not found"
	ErrFailedFetchSpecies   = "Failed to fetch species"
	ErrFailedFetchMoves     = "Failed to fetch moves"
	ErrFailedEncode         = "Failed to encode response"
	ErrUnknownElementFmt    = "unknown element: %s"
	ErrElementParamRequired = "attack and target query parameters are required"
)

// Logging field names
const (
	LogFieldMatchID  = "match_id"
	LogFieldPlayer   = "player"
	LogFieldCreature = "creature"
	LogFieldTurn     = "turn"
	LogFieldEvent    = "event"
	LogFieldSource   = "source"
	LogFieldKey      = "key"
	LogFieldElement  = "element"
	LogFieldAddr     = "addr"
	LogFieldWinner   = "winner"
	LogFieldCount    = "count"
)
