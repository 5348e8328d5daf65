package lookup

// Country is one entry of the fixed player-number prefix table.
type Country struct {
	Code  string
	Name  string
	Color string
}

// Player numbers encode the delegation in their first two digits. Two
// prefixes map to Honduras.
var countryConfigs = map[string]Country{
	"08": {Code: "08", Name: "Costa Rica", Color: "VERDE"},
	"85": {Code: "85", Name: "República Dominicana", Color: "GRIS"},
	"92": {Code: "92", Name: "Guatemala", Color: "CAFÉ"},
	"81": {Code: "81", Name: "El Salvador", Color: "ROJO"},
	"80": {Code: "80", Name: "Nicaragua", Color: "AMARILLO"},
	"43": {Code: "43", Name: "Honduras", Color: "AZUL"},
	"41": {Code: "41", Name: "Honduras", Color: "AZUL"},
}

// CountryFromNumber resolves a player number to its country by the first two
// characters. An unknown prefix (or a number shorter than two characters) is
// not an error: callers get (zero, false) and fall back to neutral defaults.
func CountryFromNumber(playerNumber string) (Country, bool) {
	if len(playerNumber) < 2 {
		return Country{}, false
	}
	c, ok := countryConfigs[playerNumber[:2]]
	return c, ok
}
