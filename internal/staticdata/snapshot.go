package staticdata

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/marcin-skalski/lol-cooldowns/internal/riot"
)

// AbilitySlots is the canonical order of a champion's abilities.
var AbilitySlots = [4]string{"Q", "W", "E", "R"}

type Ability struct {
	Name         string    `json:"name"`
	Cooldowns    []float64 `json:"cooldowns"`
	CooldownBurn string    `json:"cooldownBurn"`
}

// FormattedCooldown is the human readable cooldown per rank, e.g. "12/11/10/9/8".
func (a Ability) FormattedCooldown() string {
	if a.CooldownBurn != "" {
		return a.CooldownBurn
	}
	if len(a.Cooldowns) == 0 {
		return "-"
	}

	parts := make([]string, len(a.Cooldowns))
	same := true
	for i, cd := range a.Cooldowns {
		parts[i] = strconv.FormatFloat(cd, 'f', -1, 64)
		if cd != a.Cooldowns[0] {
			same = false
		}
	}
	if same {
		return parts[0]
	}
	return strings.Join(parts, "/")
}

// ChampionAbilitySet is immutable once part of a Snapshot.
type ChampionAbilitySet struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Abilities [4]Ability `json:"abilities"`
}

// Snapshot is a versioned set of champion ability data. It is replaced wholesale,
// never modified after construction.
type Snapshot struct {
	Version   string                     `json:"version"`
	Champions map[int]ChampionAbilitySet `json:"champions"`
}

func (s *Snapshot) Lookup(championID int) (ChampionAbilitySet, bool) {
	if s == nil {
		return ChampionAbilitySet{}, false
	}
	c, ok := s.Champions[championID]
	return c, ok
}

func (s *Snapshot) validate() error {
	if s.Version == "" {
		return fmt.Errorf("snapshot has no version")
	}
	if len(s.Champions) == 0 {
		return fmt.Errorf("snapshot %s has no champions", s.Version)
	}
	return nil
}

// FromChampionList converts a static-data response. Every champion must have exactly
// four spells; a list that violates this is rejected as a whole.
func FromChampionList(list *riot.ChampionList) (*Snapshot, error) {
	snap := &Snapshot{
		Version:   list.Version,
		Champions: make(map[int]ChampionAbilitySet, len(list.Data)),
	}

	keys := make([]string, 0, len(list.Data))
	for k := range list.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		champ := list.Data[key]
		if len(champ.Spells) != len(AbilitySlots) {
			return nil, fmt.Errorf("champion %s (%d): expected %d spells, got %d",
				champ.Name, champ.ID, len(AbilitySlots), len(champ.Spells))
		}
		if _, dup := snap.Champions[champ.ID]; dup {
			return nil, fmt.Errorf("duplicate champion id %d (%s)", champ.ID, champ.Name)
		}

		set := ChampionAbilitySet{ID: champ.ID, Name: champ.Name}
		for i, spell := range champ.Spells {
			set.Abilities[i] = Ability{
				Name:         spell.Name,
				Cooldowns:    append([]float64(nil), spell.Cooldown...),
				CooldownBurn: spell.CooldownBurn,
			}
		}
		snap.Champions[champ.ID] = set
	}

	if err := snap.validate(); err != nil {
		return nil, err
	}
	return snap, nil
}
