// Package cooldowns joins the participants of a match with champion ability data.
package cooldowns

import (
	"errors"
	"fmt"
	"sort"

	"github.com/marcin-skalski/lol-cooldowns/internal/match"
	"github.com/marcin-skalski/lol-cooldowns/internal/staticdata"
)

const (
	TeamBlue = 100
	TeamRed  = 200
)

var (
	ErrTeamCount       = errors.New("match must have exactly two teams")
	ErrUnknownChampion = errors.New("champion missing from static data")
)

// ConsistencyError means the match and the static data disagree. The render is
// aborted; polling may continue.
type ConsistencyError struct {
	Detail string
	Err    error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Detail, e.Err)
}

func (e *ConsistencyError) Unwrap() error { return e.Err }

// Lookup resolves champion ability data. *staticdata.Cache implements it.
type Lookup interface {
	Lookup(championID int) (staticdata.ChampionAbilitySet, bool)
}

type Row struct {
	ChampionID   int
	ChampionName string
	SummonerName string
	Cooldowns    [4]string
	IsViewer     bool
	Bot          bool
}

type Team struct {
	ID   int
	Rows []Row
}

func (t Team) HasViewer() bool {
	for _, r := range t.Rows {
		if r.IsViewer {
			return true
		}
	}
	return false
}

// Name is the side of the map the team plays on.
func (t Team) Name() string {
	switch t.ID {
	case TeamBlue:
		return "Blue Team"
	case TeamRed:
		return "Red Team"
	}
	return fmt.Sprintf("Team %d", t.ID)
}

// TeamView is recomputed for every render. Teams are in ascending id order.
type TeamView struct {
	Teams [2]Team
}

// Viewer returns the team of the viewing player, if present.
func (v TeamView) Viewer() (Team, bool) {
	for _, t := range v.Teams {
		if t.HasViewer() {
			return t, true
		}
	}
	return Team{}, false
}

// Aggregate groups participants by team. Order inside a team follows the match source.
// The team count is checked before any lookup, and a champion missing from lookup
// fails the whole view.
func Aggregate(participants []match.Participant, viewer match.PlayerID, lookup Lookup) (TeamView, error) {
	var ids []int
	byTeam := make(map[int][]match.Participant)
	for _, p := range participants {
		if _, seen := byTeam[p.TeamID]; !seen {
			ids = append(ids, p.TeamID)
		}
		byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
	}

	if len(ids) != 2 {
		return TeamView{}, &ConsistencyError{
			Detail: fmt.Sprintf("found %d teams %v", len(ids), ids),
			Err:    ErrTeamCount,
		}
	}
	sort.Ints(ids)

	var view TeamView
	for i, id := range ids {
		team := Team{ID: id, Rows: make([]Row, 0, len(byTeam[id]))}
		for _, p := range byTeam[id] {
			set, ok := lookup.Lookup(p.ChampionID)
			if !ok {
				return TeamView{}, &ConsistencyError{
					Detail: fmt.Sprintf("champion %d of %s", p.ChampionID, p.SummonerName),
					Err:    ErrUnknownChampion,
				}
			}

			row := Row{
				ChampionID:   set.ID,
				ChampionName: set.Name,
				SummonerName: p.SummonerName,
				IsViewer:     viewer != 0 && p.SummonerID == viewer,
				Bot:          p.Bot,
			}
			for slot, ability := range set.Abilities {
				row.Cooldowns[slot] = ability.FormattedCooldown()
			}
			team.Rows = append(team.Rows, row)
		}
		view.Teams[i] = team
	}
	return view, nil
}
