package lookup

import "strings"

// placePrefixes maps the qualifier prefix of a {{place|...}} argument
// ("c/Finland", "r/Lapland") to the holonym kind recorded for it.
var placePrefixes = map[string]string{
	"c":        "country",
	"cc":       "country",
	"country":  "country",
	"co":       "county",
	"county":   "county",
	"continent": "continent",
	"cont":     "continent",
	"p":        "province",
	"prov":     "province",
	"province": "province",
	"r":        "region",
	"reg":      "region",
	"region":   "region",
	"s":        "state",
	"state":    "state",
	"dist":     "district",
	"district": "district",
	"dept":     "department",
	"department": "department",
	"mun":      "municipality",
	"municipality": "municipality",
	"city":     "city",
	"town":     "town",
	"village":  "village",
	"par":      "parish",
	"parish":   "parish",
	"isl":      "island",
	"island":   "island",
	"pref":     "prefecture",
	"prefecture": "prefecture",
	"riv":      "river",
	"river":    "river",
	"sea":      "sea",
	"ocean":    "ocean",
	"lake":     "lake",
	"terr":     "territory",
	"territory": "territory",
	"bor":      "borough",
	"borough":  "borough",
}

// SplitPlaceArg splits a place descriptor of the form "kind/Name" into
// the canonical holonym kind and the place name. Arguments without a
// recognized prefix are returned with ok=false.
func SplitPlaceArg(arg string) (kind, name string, ok bool) {
	i := strings.IndexByte(arg, '/')
	if i < 0 {
		return "", "", false
	}
	k, found := placePrefixes[strings.ToLower(strings.TrimSpace(arg[:i]))]
	if !found {
		return "", "", false
	}
	return k, strings.TrimSpace(arg[i+1:]), true
}

// placeKinds are descriptor words accepted as the kind of place being
// defined (the first positional arguments of {{place}} before any
// holonym descriptors).
var placeKinds = map[string]bool{
	"city": true, "town": true, "village": true, "hamlet": true,
	"municipality": true, "borough": true, "county": true,
	"province": true, "state": true, "region": true, "country": true,
	"continent": true, "island": true, "peninsula": true, "river": true,
	"lake": true, "sea": true, "ocean": true, "mountain": true,
	"valley": true, "district": true, "department": true,
	"prefecture": true, "parish": true, "territory": true,
	"suburb": true, "neighborhood": true, "neighbourhood": true,
	"capital": true, "port": true,
}

// IsPlaceKind reports whether the descriptor names a kind of place.
func IsPlaceKind(s string) bool {
	return placeKinds[strings.ToLower(strings.TrimSpace(s))]
}
