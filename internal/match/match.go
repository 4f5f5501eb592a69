// Package match resolves summoners and reports whether they are in an active game.
package match

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/riot"
)

type PlayerID int64

type Participant struct {
	SummonerID   PlayerID
	SummonerName string
	ChampionID   int
	TeamID       int
	Bot          bool
}

// Snapshot is an active game as seen by one poll. ID is only compared for equality.
type Snapshot struct {
	ID           int64
	Platform     lol.Platform
	Mode         lol.GameMode
	Map          lol.Map
	Queue        lol.Queue
	Type         lol.GameType
	StartTime    time.Time
	Participants []Participant
}

func (s *Snapshot) Same(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ID == other.ID
}

var lower = cases.Lower(language.Und)

// NormalizeName folds a summoner name the way the API keys its responses: lower case
// with every whitespace rune removed.
func NormalizeName(name string) string {
	folded := lower.String(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

func fromGameInfo(p lol.Platform, info *riot.CurrentGameInfo) *Snapshot {
	snap := &Snapshot{
		ID:           info.GameID,
		Platform:     p,
		Mode:         lol.GameModeFromCode(info.GameMode),
		Map:          lol.MapFromID(info.MapID),
		Queue:        lol.QueueFromID(info.GameQueueConfigID),
		Type:         lol.GameTypeFromCode(info.GameType),
		Participants: make([]Participant, 0, len(info.Participants)),
	}
	if info.GameStartTime > 0 {
		snap.StartTime = time.UnixMilli(info.GameStartTime)
	}
	for _, part := range info.Participants {
		snap.Participants = append(snap.Participants, Participant{
			SummonerID:   PlayerID(part.SummonerID),
			SummonerName: part.SummonerName,
			ChampionID:   part.ChampionID,
			TeamID:       part.TeamID,
			Bot:          part.Bot,
		})
	}
	return snap
}
