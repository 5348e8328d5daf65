package lookup

import "strings"

// Icon is a presentation handle; clients map it to an actual glyph.
type Icon string

const (
	IconPingPong   Icon = "ping-pong-bat"
	IconPool       Icon = "eight-ball"
	IconChess      Icon = "chess-king"
	IconCards      Icon = "card-ace-spades"
	IconSoccer     Icon = "soccer-ball"
	IconBasketball Icon = "basketball-ball"
	IconVolleyball Icon = "volleyball-ball"
	IconTennis     Icon = "tennis-ball"
	IconDominoes   Icon = "domino-tiles"
	IconBowling    Icon = "bowling-pin"
	IconDarts      Icon = "dart"
	IconTabletop   Icon = "tabletop-players"
	IconMiniGolf   Icon = "golf-flag"
	IconFifa       Icon = "fifa"
	IconFortnite   Icon = "epic-games"
	IconLol        Icon = "riot-games"
	IconMarioKart  Icon = "race-car"
	IconMortal     Icon = "boxing-glove"
	IconStreet     Icon = "ninja-heroic-stance"
	IconPubg       Icon = "pistol-gun"
	IconValorant   Icon = "battle-tank"
	IconVideoGame  Icon = "gamepad"
)

type IconEntry struct {
	Name string `json:"name"`
	Icon Icon   `json:"icon"`
}

// Declaration order matters: IconForGame returns the first substring match,
// so a game named "Ping" resolves through the "Ping Pong" entry.
var gameIcons = []IconEntry{
	{"Ping Pong", IconPingPong},
	{"Pool", IconPool},
	{"Ajedrez", IconChess},
	{"Cartas", IconCards},
	{"Fútbol", IconSoccer},
	{"Basketball", IconBasketball},
	{"Voleibol", IconVolleyball},
	{"Tenis", IconTennis},
	{"Dominó", IconDominoes},
	{"Boliche", IconBowling},
	{"Dardos", IconDarts},
	{"Juegos de Mesa", IconTabletop},
	{"MiniGolf", IconMiniGolf},
	{"FIFA", IconFifa},
	{"Fortnite", IconFortnite},
	{"League of Legends", IconLol},
	{"Mario Kart", IconMarioKart},
	{"Mortal Kombat", IconMortal},
	{"Street Fighter", IconStreet},
	{"PUBG", IconPubg},
	{"Valorant", IconValorant},
	{"Videojuegos", IconVideoGame},
}

// GameIconEntries exposes the suggestion table for the admin game form.
func GameIconEntries() []IconEntry {
	entries := make([]IconEntry, len(gameIcons))
	copy(entries, gameIcons)
	return entries
}

// IconForGame matches the game name (case-insensitive substring) against the
// fixed table. Names mentioning "videojuego" or "game" always get the generic
// video-game icon; anything unmatched falls back to the tabletop icon.
func IconForGame(gameName string) Icon {
	normalized := strings.ToLower(gameName)

	if strings.Contains(normalized, "videojuego") || strings.Contains(normalized, "game") {
		return IconVideoGame
	}

	for _, entry := range gameIcons {
		if strings.Contains(normalized, strings.ToLower(entry.Name)) {
			return entry.Icon
		}
	}
	return IconTabletop
}
