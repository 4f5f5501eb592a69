package tui

import (
	"time"

	"github.com/marcin-skalski/lol-cooldowns/internal/render"
)

type Snapshot struct {
	Timestamp     time.Time
	Summoner      string
	Region        string
	State         string // idle|active
	MatchID       int64
	LastPoll      time.Time
	NextPoll      time.Time
	LastError     string
	Polls         int
	Renders       int
	StaticVersion string
	Frame         *render.Frame
}
