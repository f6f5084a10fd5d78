// Package regions maps the platform regions the dashboard supports to the
// continental routes the Riot API expects. Account and match-list lookups
// go through a continental host while summoner and league lookups hit the
// platform host directly, so both mappings live here as explicit tables.
package regions

// Region is a fine-grained platform region, e.g. "tw2" or "euw1".
type Region string

// Route is a coarse continental routing value, e.g. "asia" or "americas".
type Route string

const (
	TW2  Region = "tw2"
	KR   Region = "kr"
	JP1  Region = "jp1"
	NA1  Region = "na1"
	EUW1 Region = "euw1"
	EUN1 Region = "eun1"
)

const (
	RouteAsia     Route = "asia"
	RouteAmericas Route = "americas"
	RouteEurope   Route = "europe"
	RouteSEA      Route = "sea"
)

// accountRoutes is the continental routing for account lookups.
var accountRoutes = map[Region]Route{
	TW2:  RouteAsia,
	KR:   RouteAsia,
	JP1:  RouteAsia,
	NA1:  RouteAmericas,
	EUW1: RouteEurope,
	EUN1: RouteEurope,
}

// matchRouteOverrides lists regions whose match API routing differs from
// their account routing. Taiwan's match data is served from the sea
// cluster even though its accounts route through asia. This is an
// upstream operational quirk and must stay a lookup, not a rule.
var matchRouteOverrides = map[Region]Route{
	TW2: RouteSEA,
}

// Valid reports whether the region is one the dashboard supports.
func Valid(r Region) bool {
	_, ok := accountRoutes[r]
	return ok
}

// AccountRoute returns the continental route for account lookups.
func AccountRoute(r Region) (Route, bool) {
	route, ok := accountRoutes[r]
	return route, ok
}

// MatchRoute returns the continental route for match lookups, honoring
// the per-region overrides.
func MatchRoute(r Region) (Route, bool) {
	if route, ok := matchRouteOverrides[r]; ok {
		return route, true
	}
	return AccountRoute(r)
}

// All returns the supported regions. Order is not significant.
func All() []Region {
	out := make([]Region, 0, len(accountRoutes))
	for r := range accountRoutes {
		out = append(out, r)
	}
	return out
}
