package regions

import "testing"

func TestAccountRoute(t *testing.T) {
	tests := []struct {
		region Region
		want   Route
	}{
		{TW2, RouteAsia},
		{KR, RouteAsia},
		{JP1, RouteAsia},
		{NA1, RouteAmericas},
		{EUW1, RouteEurope},
		{EUN1, RouteEurope},
	}

	for _, tt := range tests {
		got, ok := AccountRoute(tt.region)
		if !ok {
			t.Errorf("AccountRoute(%q) not found", tt.region)
			continue
		}
		if got != tt.want {
			t.Errorf("AccountRoute(%q) = %q, want %q", tt.region, got, tt.want)
		}
	}
}

func TestMatchRoute_TaiwanUsesSEA(t *testing.T) {
	got, ok := MatchRoute(TW2)
	if !ok {
		t.Fatal("MatchRoute(tw2) not found")
	}
	if got != RouteSEA {
		t.Errorf("MatchRoute(tw2) = %q, want %q", got, RouteSEA)
	}

	// The override only applies to match lookups.
	acct, _ := AccountRoute(TW2)
	if acct != RouteAsia {
		t.Errorf("AccountRoute(tw2) = %q, want %q", acct, RouteAsia)
	}
}

func TestMatchRoute_FallsBackToAccountRoute(t *testing.T) {
	for _, r := range []Region{KR, JP1, NA1, EUW1, EUN1} {
		match, ok := MatchRoute(r)
		if !ok {
			t.Errorf("MatchRoute(%q) not found", r)
			continue
		}
		acct, _ := AccountRoute(r)
		if match != acct {
			t.Errorf("MatchRoute(%q) = %q, want account route %q", r, match, acct)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid(TW2) {
		t.Error("Valid(tw2) = false, want true")
	}
	for _, r := range []Region{"", "oce", "br1", "TW2"} {
		if Valid(r) {
			t.Errorf("Valid(%q) = true, want false", r)
		}
	}
}

func TestAll_CoversEveryRegion(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("All() returned %d regions, want 6", len(all))
	}
	for _, r := range all {
		if !Valid(r) {
			t.Errorf("All() returned unsupported region %q", r)
		}
	}
}
