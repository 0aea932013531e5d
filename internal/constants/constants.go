package constants

// Centralized constants for env keys, routes and the PokeAPI integration.
const (
	// Environment variable keys
	EnvConfigPath   = "POKEHELPER_CONFIG"
	EnvDatabasePath = "POKEHELPER_DB"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	// PokeAPI base URL and paths
	PokeAPIBaseURL     = "https://pokeapi.co/api/v2"
	PokeAPISpeciesPath = "/pokemon/"
	PokeAPIMovePath    = "/move/"

	// Lookup cache kinds
	LookupKindSpecies = "species"
	LookupKindMove    = "move"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteVersion       = "/version"
	RouteParseShowdown = "/parse-showdown"
	RouteSimulateTurn  = "/simulate-turn"
	RouteSearch        = "/search"
	RouteStrategy      = "/battle-strategy"
	RouteBattles       = "/battles"
	RouteBattleByID    = "/battles/:battleID"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidBattleState  = "Invalid battle state"
	ErrInvalidBattleID     = "Invalid battle ID"
	ErrBattleNotFound      = "Battle not found"
	ErrEmptyExport         = "Export text is empty"
	ErrSpeciesNotFound     = "Species not found"
	ErrMoveNotFound        = "Move not found"
	ErrFailedParseExport   = "Failed to parse export"
	ErrFailedFetchBattles  = "Failed to fetch battles"
	ErrFailedSaveBattle    = "Failed to save battle"
	ErrFailedResolveBattle = "Failed to resolve battle"
	ErrInvalidSearchDepth  = "Search depth must be between 1 and 8"
)

// Logging field names
const (
	LogFieldAddr     = "addr"
	LogFieldBattleID = "battle_id"
	LogFieldDepth    = "depth"
	LogFieldKind     = "kind"
	LogFieldName     = "name"
	LogFieldOutcome  = "outcome"
	LogFieldSource   = "source"
	LogFieldTurns    = "turns"
	LogFieldURL      = "url"
)
