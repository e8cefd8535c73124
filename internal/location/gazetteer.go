// Package location resolves free-text locations and scores the relationship
// between a candidate's location and a job's location.
package location

// defaultCountry is assumed when a location string carries no country; the
// gazetteer covers the Indian metros this system primarily recruits in.
const defaultCountry = "india"

// cityAliases folds alternative spellings onto the gazetteer key.
var cityAliases = map[string]string{
	"bengaluru":          "bangalore",
	"gurugram":           "gurgaon",
	"newdelhi":           "delhi",
	"bombay":             "mumbai",
	"calcutta":           "kolkata",
	"madras":             "chennai",
	"trivandrum":         "thiruvananthapuram",
	"vizag":              "visakhapatnam",
	"mysuru":             "mysore",
	"ncr":                "delhi",
	"delhincr":           "delhi",
	"greaternoida":       "greater noida",
	"navimumbai":         "navi mumbai",
	"pimprichinchwad":    "pimpri chinchwad",
}

// cityStates maps known cities to their state.
var cityStates = map[string]string{
	"delhi":              "delhi",
	"noida":              "uttar pradesh",
	"greater noida":      "uttar pradesh",
	"ghaziabad":          "uttar pradesh",
	"lucknow":            "uttar pradesh",
	"kanpur":             "uttar pradesh",
	"gurgaon":            "haryana",
	"faridabad":          "haryana",
	"chandigarh":         "chandigarh",
	"mohali":             "punjab",
	"jaipur":             "rajasthan",
	"mumbai":             "maharashtra",
	"navi mumbai":        "maharashtra",
	"thane":              "maharashtra",
	"pune":               "maharashtra",
	"pimpri chinchwad":   "maharashtra",
	"nagpur":             "maharashtra",
	"bangalore":          "karnataka",
	"mysore":             "karnataka",
	"chennai":            "tamil nadu",
	"coimbatore":         "tamil nadu",
	"hyderabad":          "telangana",
	"secunderabad":       "telangana",
	"vijayawada":         "andhra pradesh",
	"visakhapatnam":      "andhra pradesh",
	"kolkata":            "west bengal",
	"howrah":             "west bengal",
	"ahmedabad":          "gujarat",
	"gandhinagar":        "gujarat",
	"vadodara":           "gujarat",
	"surat":              "gujarat",
	"indore":             "madhya pradesh",
	"bhopal":             "madhya pradesh",
	"kochi":              "kerala",
	"thiruvananthapuram": "kerala",
	"bhubaneswar":        "odisha",
}

// metroClusters groups nearby cities treated as one commute zone.
var metroClusters = [][]string{
	{"delhi", "noida", "greater noida", "gurgaon", "ghaziabad", "faridabad"},
	{"mumbai", "navi mumbai", "thane"},
	{"pune", "pimpri chinchwad"},
	{"hyderabad", "secunderabad"},
	{"kolkata", "howrah"},
	{"ahmedabad", "gandhinagar"},
	{"chandigarh", "mohali"},
}

// nearbyDistances holds travel-time units between cross-state city pairs
// that fall outside any shared metro cluster. Same-state pairs are covered
// by the same-state tier and are not listed. Keys are ordered alphabetically.
var nearbyDistances = map[[2]string]int{
	{"delhi", "jaipur"}:         5,
	{"chandigarh", "delhi"}:     5,
	{"bangalore", "chennai"}:    7,
	{"hyderabad", "vijayawada"}: 6,
	{"coimbatore", "kochi"}:     4,
	{"bhubaneswar", "kolkata"}:  6,
}

var (
	metroIndex = buildMetroIndex()
	cityIndex  = buildCityIndex()
)

// buildCityIndex keys known cities by their normalized (letters-only) form.
func buildCityIndex() map[string]string {
	idx := make(map[string]string, len(cityStates))
	for city := range cityStates {
		idx[normalizeName(city)] = city
	}
	return idx
}

func buildMetroIndex() map[string]int {
	idx := make(map[string]int)
	for i, cluster := range metroClusters {
		for _, city := range cluster {
			idx[city] = i
		}
	}
	return idx
}

// sameMetro reports whether two known cities share a metro cluster.
func sameMetro(a, b string) bool {
	ca, ok := metroIndex[a]
	if !ok {
		return false
	}
	cb, ok := metroIndex[b]
	return ok && ca == cb
}

// nearbyDistance returns the travel-time units between two cities and
// whether the pair is in the nearby table.
func nearbyDistance(a, b string) (int, bool) {
	if a > b {
		a, b = b, a
	}
	d, ok := nearbyDistances[[2]string{a, b}]
	return d, ok
}
