// Package lol holds the closed sets of game identifiers reported by the Riot API:
// platforms, maps, game modes, game types and queues. Every table maps unknown
// upstream codes to an explicit Unknown variant so display code never fails on
// values added after this list was written.
package lol

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownRegion = errors.New("region not found")

// Platform is the platform id used by the spectator endpoints (EUW1, NA1, ...).
type Platform string

const (
	PlatformBR   Platform = "BR1"
	PlatformEUNE Platform = "EUN1"
	PlatformEUW  Platform = "EUW1"
	PlatformJP   Platform = "JP1"
	PlatformKR   Platform = "KR"
	PlatformLAN  Platform = "LA1"
	PlatformLAS  Platform = "LA2"
	PlatformNA   Platform = "NA1"
	PlatformOCE  Platform = "OC1"
	PlatformPBE  Platform = "PBE1"
	PlatformRU   Platform = "RU"
	PlatformTR   Platform = "TR1"
)

// region code -> platform
var platforms = map[string]Platform{
	"br":   PlatformBR,
	"eune": PlatformEUNE,
	"euw":  PlatformEUW,
	"jp":   PlatformJP,
	"kr":   PlatformKR,
	"lan":  PlatformLAN,
	"las":  PlatformLAS,
	"na":   PlatformNA,
	"oce":  PlatformOCE,
	"pbe":  PlatformPBE,
	"ru":   PlatformRU,
	"tr":   PlatformTR,
}

// ParsePlatform resolves a region code such as "euw" to its platform.
func ParsePlatform(region string) (Platform, error) {
	p, ok := platforms[strings.ToLower(strings.TrimSpace(region))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return p, nil
}

// Region returns the short region code, which doubles as the API endpoint name.
func (p Platform) Region() string {
	for region, platform := range platforms {
		if platform == p {
			return region
		}
	}
	return ""
}

func (p Platform) String() string {
	return string(p)
}

// Regions lists the known region codes in alphabetical order.
func Regions() []string {
	regions := make([]string, 0, len(platforms))
	for r := range platforms {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}
