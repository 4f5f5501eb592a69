package lol

// Map is a game map, keyed upstream by its numeric map id.
type Map int

const (
	MapUnknown Map = iota
	MapSummonersRiftSummer
	MapSummonersRiftAutumn
	MapProvingGrounds
	MapTwistedTreelineOriginal
	MapCrystalScar
	MapTwistedTreeline
	MapSummonersRift
	MapHowlingAbyss
	MapButchersBridge
	numMaps
)

var mapsByID = map[int]Map{
	1:  MapSummonersRiftSummer,
	2:  MapSummonersRiftAutumn,
	3:  MapProvingGrounds,
	4:  MapTwistedTreelineOriginal,
	8:  MapCrystalScar,
	10: MapTwistedTreeline,
	11: MapSummonersRift,
	12: MapHowlingAbyss,
	14: MapButchersBridge,
}

var mapNames = [numMaps]string{
	MapUnknown:                 "Unknown Map",
	MapSummonersRiftSummer:     "Summoner's Rift (Summer)",
	MapSummonersRiftAutumn:     "Summoner's Rift (Autumn)",
	MapProvingGrounds:          "The Proving Grounds",
	MapTwistedTreelineOriginal: "Twisted Treeline (Original)",
	MapCrystalScar:             "The Crystal Scar",
	MapTwistedTreeline:         "Twisted Treeline",
	MapSummonersRift:           "Summoner's Rift",
	MapHowlingAbyss:            "Howling Abyss",
	MapButchersBridge:          "Butcher's Bridge",
}

func MapFromID(id int) Map {
	if m, ok := mapsByID[id]; ok {
		return m
	}
	return MapUnknown
}

func (m Map) String() string {
	if m < 0 || m >= numMaps {
		return mapNames[MapUnknown]
	}
	return mapNames[m]
}

// GameMode is the mode string reported for a match (CLASSIC, ARAM, ...).
type GameMode int

const (
	GameModeUnknown GameMode = iota
	GameModeARAM
	GameModeAscension
	GameModeClassic
	GameModeShowdown
	GameModePoroKing
	GameModeDominion
	GameModeOneForAll
	GameModeTutorial
	GameModeNexusSiege
	numGameModes
)

var gameModesByCode = map[string]GameMode{
	"ARAM":       GameModeARAM,
	"ASCENSION":  GameModeAscension,
	"CLASSIC":    GameModeClassic,
	"FIRSTBLOOD": GameModeShowdown,
	"KINGPORO":   GameModePoroKing,
	"ODIN":       GameModeDominion,
	"ONEFORALL":  GameModeOneForAll,
	"TUTORIAL":   GameModeTutorial,
	"SIEGE":      GameModeNexusSiege,
}

var gameModeNames = [numGameModes]string{
	GameModeUnknown:    "Unknown Mode",
	GameModeARAM:       "ARAM",
	GameModeAscension:  "Ascension",
	GameModeClassic:    "Classic",
	GameModeShowdown:   "Showdown",
	GameModePoroKing:   "Poro King",
	GameModeDominion:   "Dominion",
	GameModeOneForAll:  "One For All",
	GameModeTutorial:   "Tutorial",
	GameModeNexusSiege: "Nexus Siege",
}

func GameModeFromCode(code string) GameMode {
	if m, ok := gameModesByCode[code]; ok {
		return m
	}
	return GameModeUnknown
}

func (m GameMode) String() string {
	if m < 0 || m >= numGameModes {
		return gameModeNames[GameModeUnknown]
	}
	return gameModeNames[m]
}

// GameType distinguishes custom, tutorial and matchmade games.
type GameType int

const (
	GameTypeUnknown GameType = iota
	GameTypeCustom
	GameTypeTutorial
	GameTypeMatched
	numGameTypes
)

var gameTypesByCode = map[string]GameType{
	"CUSTOM_GAME":   GameTypeCustom,
	"TUTORIAL_GAME": GameTypeTutorial,
	"MATCHED_GAME":  GameTypeMatched,
}

var gameTypeNames = [numGameTypes]string{
	GameTypeUnknown:  "Unknown Type",
	GameTypeCustom:   "Custom",
	GameTypeTutorial: "Tutorial",
	GameTypeMatched:  "Matched",
}

func GameTypeFromCode(code string) GameType {
	if t, ok := gameTypesByCode[code]; ok {
		return t
	}
	return GameTypeUnknown
}

func (t GameType) String() string {
	if t < 0 || t >= numGameTypes {
		return gameTypeNames[GameTypeUnknown]
	}
	return gameTypeNames[t]
}
