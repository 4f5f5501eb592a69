package monitor

import (
	"errors"

	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/match"
	"github.com/marcin-skalski/lol-cooldowns/internal/riot"
)

// Process exit codes. Not being in a match is a success.
const (
	ExitOK             = 0
	ExitUnknownRegion  = 1
	ExitPlayerNotFound = 2
	ExitCredential     = 3
	ExitFailure        = 4
)

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, lol.ErrUnknownRegion):
		return ExitUnknownRegion
	case errors.Is(err, match.ErrPlayerNotFound):
		return ExitPlayerNotFound
	case riot.IsCredentialError(err):
		return ExitCredential
	default:
		return ExitFailure
	}
}
