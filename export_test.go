package relay

// Test-only exports for internal functions.
var (
	Normalize = normalize
	Compose   = compose
	RouteKey  = routeKey
)
