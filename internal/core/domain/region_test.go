package domain

import "testing"

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SN", "SN"},
		{"sn", "SN"},
		{"Senegal", "SN"},
		{"Sénégal", "SN"},
		{"  senegal  ", "SN"},
		{"France", "FR"},
		{"états-unis", "US"},
		{"United States", "US"},
		{"Côte d'Ivoire", "CI"},
		{"ivory coast", "CI"},
		{"royaume-uni", "GB"},
		{"Atlantis", "ATLANTIS"}, // unknown names pass through upper-cased
	}
	for _, tc := range tests {
		if got := NormalizeCountry(tc.in); got != tc.want {
			t.Errorf("NormalizeCountry(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveRegion(t *testing.T) {
	tests := []struct {
		in   string
		want Region
	}{
		{"SN", RegionSenegal},
		{"Sénégal", RegionSenegal},
		{"FR", RegionFrance},
		{"US", RegionUSA},
		{"CA", RegionCanada},
		{"ML", RegionAfrica},
		{"Côte d'Ivoire", RegionAfrica},
		{"MA", RegionAfrica},
		{"DE", RegionEurope},
		{"Belgique", RegionEurope},
		{"JP", RegionWorld},
		{"BR", RegionWorld},
		{"", RegionWorld},
		{"NOWHERE", RegionWorld},
	}
	for _, tc := range tests {
		if got := ResolveRegion(tc.in); got != tc.want {
			t.Errorf("ResolveRegion(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestIsRemoteCity(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Kédougou", true},
		{"kedougou", true},
		{"TAMBACOUNDA", true},
		{"  Matam ", true},
		{"Kolda", true},
		{"Ziguinchor", true},
		{"Bakel", true},
		{"Dakar", false},
		{"Thiès", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsRemoteCity(tc.in); got != tc.want {
			t.Errorf("IsRemoteCity(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
