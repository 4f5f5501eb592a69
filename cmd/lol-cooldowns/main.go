package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/marcin-skalski/lol-cooldowns/internal/config"
	"github.com/marcin-skalski/lol-cooldowns/internal/journal"
	"github.com/marcin-skalski/lol-cooldowns/internal/logging"
	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/match"
	"github.com/marcin-skalski/lol-cooldowns/internal/monitor"
	"github.com/marcin-skalski/lol-cooldowns/internal/notify"
	"github.com/marcin-skalski/lol-cooldowns/internal/render"
	"github.com/marcin-skalski/lol-cooldowns/internal/riot"
	"github.com/marcin-skalski/lol-cooldowns/internal/staticdata"
	"github.com/marcin-skalski/lol-cooldowns/internal/storage"
	"github.com/marcin-skalski/lol-cooldowns/internal/tui"
)

// counter is a repeatable boolean flag (-v -v).
type counter int

func (c *counter) String() string   { return strconv.Itoa(int(*c)) }
func (c *counter) IsBoolFlag() bool { return true }

func (c *counter) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*c++
	}
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config file (default ./lol-cooldowns.yaml if present)")
	key := flag.String("key", "", "Riot API key (otherwise RIOT_API_KEY or the key file)")
	keyFile := flag.String("key-file", "", "file holding the Riot API key (default ./key)")
	monitorMode := flag.Bool("monitor", false, "keep looking for active games")
	noCheckUpdates := flag.Bool("no-check-updates", false, "disable checking for data updates")
	noTUI := flag.Bool("no-tui", false, "disable TUI mode in --monitor")
	cacheFile := flag.String("cache-file", "", "path of the champion data cache")
	logFile := flag.String("log-file", "", "path of the log file")
	verbosity := flag.Int("verbosity", -1, "verbosity of output, 0 to 4 (default 3)")
	var more, less counter
	flag.Var(&more, "v", "increase verbosity")
	flag.Var(&less, "q", "decrease verbosity")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <region> <summoner name>\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Regions: %s\n\n", strings.Join(lol.Regions(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	o := config.Overrides{
		APIKey:         *key,
		KeyFile:        *keyFile,
		Monitor:        *monitorMode,
		NoCheckUpdates: *noCheckUpdates,
		CacheFile:      *cacheFile,
		LogFile:        *logFile,
	}
	if args := flag.Args(); len(args) > 0 {
		o.Region = args[0]
		o.Summoner = strings.Join(args[1:], " ")
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return monitor.ExitCode(err)
	}

	// Auto-detect TUI capability
	enableTUI := cfg.Monitor && !*noTUI && os.Getenv("LOLCD_TUI") != "0" &&
		isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	level := logging.ParseLevel(cfg.Log.Level)
	switch {
	case *verbosity >= 0:
		level = logging.LevelFromVerbosity(*verbosity)
	case more > 0 || less > 0:
		level = logging.LevelFromVerbosity(logging.DefaultVerbosity + int(more) - int(less))
	}

	logger, err := logging.SetupLogger(cfg.LogFile, level, enableTUI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup logger: %v\n", err)
		return monitor.ExitFailure
	}
	defer logging.CloseFile()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = execute(ctx, stop, cfg, enableTUI, logger)
	switch {
	case err == nil:
	case errors.Is(err, match.ErrPlayerNotFound):
		logger.Error("summoner name not found", "summoner", cfg.Summoner, "region", cfg.Region)
	case riot.IsCredentialError(err):
		logger.Error("api key rejected", "err", err)
	default:
		logger.Error("failed", "err", err)
	}
	if err != nil && enableTUI {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return monitor.ExitCode(err)
}

func execute(ctx context.Context, stop context.CancelFunc, cfg *config.Config, enableTUI bool, logger *slog.Logger) error {
	var clientOpts []riot.Option
	if cfg.API.BaseURL != "" {
		clientOpts = append(clientOpts, riot.WithBaseURL(cfg.API.BaseURL))
	}
	if cfg.API.StaticBaseURL != "" {
		clientOpts = append(clientOpts, riot.WithStaticBaseURL(cfg.API.StaticBaseURL))
	}
	clientOpts = append(clientOpts, riot.WithTimeout(cfg.API.Timeout))
	client := riot.NewClient(cfg.APIKey, logger, clientOpts...)

	err := retryStartup(ctx, cfg.Monitor, cfg.IdleInterval, logger, "validate api key", func(ctx context.Context) error {
		valid, err := client.ValidateKey(ctx)
		if err != nil {
			return fmt.Errorf("validate api key: %w", err)
		}
		if !valid {
			return fmt.Errorf("validate api key: %w", riot.ErrUnauthorized)
		}
		return nil
	})
	if err != nil {
		return startupErr(ctx, err)
	}

	players := storage.NewPlayerCache(ctx, cfg.Redis.URL, cfg.Redis.TTL, logger)
	defer players.Close()

	var ids match.IDCache
	if players.Enabled() {
		ids = players
	}

	logger.Info("loading current game info", "summoner", cfg.Summoner, "region", cfg.Region)
	locator := match.NewLocator(client, ids, logger)
	var playerID match.PlayerID
	err = retryStartup(ctx, cfg.Monitor, cfg.IdleInterval, logger, "resolve summoner", func(ctx context.Context) error {
		var err error
		playerID, err = locator.ResolvePlayer(ctx, cfg.Platform, cfg.Summoner)
		return err
	})
	if err != nil {
		return startupErr(ctx, err)
	}
	logger.Debug("summoner id", "id", playerID)

	cache := staticdata.New(cfg.CacheFile, staticdata.NewRiotSource(client), logger)
	if err := cache.Load(); err != nil {
		logger.Warn("cached champion data unusable, downloading again", "err", err)
	}
	if cache.Empty() {
		logger.Info("no champion data cached yet", "path", cache.Path())
	}

	var opts []monitor.Option
	if cfg.Journal.Path != "" {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			logger.Warn("match journal disabled", "err", err)
		} else {
			defer j.Close()
			if recent, err := j.Recent(ctx, 1); err == nil && len(recent) > 0 {
				logger.Debug("last recorded match", "match", recent[0].MatchID, "first_seen", recent[0].FirstSeen)
			}
			opts = append(opts, monitor.WithJournal(j))
		}
	}
	if cfg.Discord.WebhookURL != "" {
		d, err := notify.NewDiscord(cfg.Discord.WebhookURL, logger)
		if err != nil {
			logger.Warn("discord notifications disabled", "err", err)
		} else {
			opts = append(opts, monitor.WithNotifier(d))
		}
	}

	mcfg := monitor.Config{
		Platform:        cfg.Platform,
		Player:          playerID,
		Summoner:        cfg.Summoner,
		CheckForUpdates: *cfg.CheckForUpdates,
		IdleInterval:    cfg.IdleInterval,
		ActiveInterval:  cfg.ActiveInterval,
	}

	if !cfg.Monitor {
		m := monitor.New(mcfg, locator, cache, render.NewTerminal(os.Stdout), logger, opts...)
		res, err := m.Once(ctx)
		if err != nil {
			return err
		}
		if !res.Rendered {
			logger.Warn("summoner not currently in game")
		}
		return nil
	}

	if !enableTUI {
		// Headless mode
		m := monitor.New(mcfg, locator, cache, render.NewTerminal(os.Stdout), logger, opts...)
		return m.Run(ctx)
	}

	// TUI mode: monitor in background, TUI in foreground
	m := monitor.New(mcfg, locator, cache, nil, logger, opts...)
	p := tea.NewProgram(tui.NewModel(m, cfg.TUI.RefreshInterval), tea.WithAltScreen(), tea.WithContext(ctx))

	runErr := make(chan error, 1)
	go func() {
		err := m.Run(ctx)
		runErr <- err
		// Exit if the monitor fails
		if err != nil {
			p.Send(tea.Quit())
		}
	}()

	_, tuiErr := p.Run()
	stop()
	err = <-runErr
	if tuiErr != nil && !errors.Is(tuiErr, tea.ErrProgramKilled) && err == nil {
		return fmt.Errorf("tui: %w", tuiErr)
	}
	return err
}

// retryStartup runs step once. In monitor mode a failed step is retried every
// interval until it succeeds, ctx is done, or the failure cannot go away by waiting.
func retryStartup(ctx context.Context, monitorMode bool, interval time.Duration, logger *slog.Logger, name string, step func(context.Context) error) error {
	for {
		err := step(ctx)
		if err == nil || !monitorMode || permanent(err) || ctx.Err() != nil {
			return err
		}

		wait := interval
		var statusErr *riot.StatusError
		if errors.As(err, &statusErr) && statusErr.RetryAfter > wait {
			wait = statusErr.RetryAfter
		}
		logger.Error("startup step failed, retrying", "step", name, "retry_in", wait, "err", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func permanent(err error) bool {
	return riot.IsCredentialError(err) || errors.Is(err, match.ErrPlayerNotFound)
}

// startupErr treats cancellation during startup as a normal shutdown.
func startupErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	return err
}
