package domain

import "strings"

// Region is a tariff bucket. Destination countries are mapped to exactly one
// bucket; anything unrecognised lands in RegionWorld, never an error.
type Region string

const (
	RegionSenegal Region = "SN"
	RegionFrance  Region = "FR"
	RegionUSA     Region = "US"
	RegionCanada  Region = "CA"
	RegionAfrica  Region = "AFRICA"
	RegionEurope  Region = "EUROPE"
	RegionWorld   Region = "WORLD"
)

// africanCountries are the ISO alpha-2 codes bucketed under RegionAfrica.
var africanCountries = map[string]struct{}{
	"CI": {}, "ML": {}, "GN": {}, "GM": {}, "GW": {}, "MR": {}, "BF": {},
	"NE": {}, "NG": {}, "GH": {}, "TG": {}, "BJ": {}, "CM": {}, "CD": {},
	"CG": {}, "GA": {}, "MA": {}, "DZ": {}, "TN": {}, "KE": {}, "ZA": {},
	"ET": {}, "TZ": {}, "UG": {}, "RW": {},
}

// europeanCountries are the ISO alpha-2 codes bucketed under RegionEurope.
// France has its own bucket and is deliberately absent here.
var europeanCountries = map[string]struct{}{
	"BE": {}, "CH": {}, "DE": {}, "ES": {}, "IT": {}, "PT": {}, "NL": {},
	"LU": {}, "GB": {}, "IE": {}, "AT": {}, "SE": {}, "NO": {}, "DK": {},
	"FI": {}, "PL": {}, "CZ": {}, "GR": {},
}

// countryAliases maps the country names the platform historically accepted to
// their ISO alpha-2 codes, so older clients sending names keep resolving to
// the same bucket.
var countryAliases = map[string]string{
	"senegal":        "SN",
	"sénégal":        "SN",
	"france":         "FR",
	"usa":            "US",
	"united states":  "US",
	"etats-unis":     "US",
	"états-unis":     "US",
	"canada":         "CA",
	"cote d'ivoire":  "CI",
	"côte d'ivoire":  "CI",
	"ivory coast":    "CI",
	"mali":           "ML",
	"guinee":         "GN",
	"guinée":         "GN",
	"gambie":         "GM",
	"mauritanie":     "MR",
	"burkina faso":   "BF",
	"niger":          "NE",
	"nigeria":        "NG",
	"ghana":          "GH",
	"togo":           "TG",
	"benin":          "BJ",
	"bénin":          "BJ",
	"cameroun":       "CM",
	"maroc":          "MA",
	"algerie":        "DZ",
	"algérie":        "DZ",
	"tunisie":        "TN",
	"belgique":       "BE",
	"suisse":         "CH",
	"allemagne":      "DE",
	"espagne":        "ES",
	"italie":         "IT",
	"portugal":       "PT",
	"pays-bas":       "NL",
	"luxembourg":     "LU",
	"royaume-uni":    "GB",
	"united kingdom": "GB",
}

// NormalizeCountry returns the ISO alpha-2 code for a country input, accepting
// either a code or a known country name (case-insensitive). Unknown inputs are
// returned upper-cased unchanged so they resolve to RegionWorld downstream.
func NormalizeCountry(country string) string {
	c := strings.TrimSpace(country)
	if code, ok := countryAliases[strings.ToLower(c)]; ok {
		return code
	}
	return strings.ToUpper(c)
}

// ResolveRegion maps a country (code or name) to its tariff bucket.
func ResolveRegion(country string) Region {
	switch code := NormalizeCountry(country); code {
	case "SN":
		return RegionSenegal
	case "FR":
		return RegionFrance
	case "US":
		return RegionUSA
	case "CA":
		return RegionCanada
	default:
		if _, ok := africanCountries[code]; ok {
			return RegionAfrica
		}
		if _, ok := europeanCountries[code]; ok {
			return RegionEurope
		}
		return RegionWorld
	}
}

// remoteCities are Senegalese cities that carry a remote-area surcharge.
var remoteCities = map[string]struct{}{
	"kedougou":    {},
	"kédougou":    {},
	"tambacounda": {},
	"kolda":       {},
	"ziguinchor":  {},
	"matam":       {},
	"bakel":       {},
}

// IsRemoteCity reports whether a Senegalese city is on the remote-area list.
func IsRemoteCity(city string) bool {
	_, ok := remoteCities[strings.ToLower(strings.TrimSpace(city))]
	return ok
}
