package riot

// Summoner is one entry of the summoner by-name response, which is keyed by the
// standardized summoner name.
type Summoner struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
	RevisionDate  int64  `json:"revisionDate"`
}

// CurrentGameInfo is the spectator view of an active game.
type CurrentGameInfo struct {
	GameID            int64                    `json:"gameId"`
	MapID             int                      `json:"mapId"`
	GameMode          string                   `json:"gameMode"`
	GameType          string                   `json:"gameType"`
	GameQueueConfigID int                      `json:"gameQueueConfigId"`
	GameStartTime     int64                    `json:"gameStartTime"` // epoch millis
	GameLength        int64                    `json:"gameLength"`    // seconds
	PlatformID        string                   `json:"platformId"`
	Participants      []CurrentGameParticipant `json:"participants"`
}

type CurrentGameParticipant struct {
	SummonerID   int64  `json:"summonerId"`
	SummonerName string `json:"summonerName"`
	ChampionID   int    `json:"championId"`
	TeamID       int    `json:"teamId"`
	Spell1ID     int    `json:"spell1Id"`
	Spell2ID     int    `json:"spell2Id"`
	Bot          bool   `json:"bot"`
}

// ChampionList is the static-data champion response requested with champData=spells.
type ChampionList struct {
	Type    string              `json:"type"`
	Version string              `json:"version"`
	Data    map[string]Champion `json:"data"`
}

type Champion struct {
	ID     int             `json:"id"`
	Key    string          `json:"key"`
	Name   string          `json:"name"`
	Title  string          `json:"title"`
	Spells []ChampionSpell `json:"spells"`
}

type ChampionSpell struct {
	Name         string    `json:"name"`
	Key          string    `json:"key"`
	MaxRank      int       `json:"maxrank"`
	Cooldown     []float64 `json:"cooldown"`
	CooldownBurn string    `json:"cooldownBurn"`
}

// statusPayload is the error shape the API uses, sometimes with a 200 status.
type statusPayload struct {
	Status *struct {
		StatusCode int    `json:"status_code"`
		Message    string `json:"message"`
	} `json:"status"`
}
