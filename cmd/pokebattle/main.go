package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/config"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/engine"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/logging"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/service"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/tui"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pokebattle: %v\n", err)
		os.Exit(1)
	}
}

// run plays one hot-seat match. Errors are logged to the log file and
// returned so main can report them on the terminal.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("pokebattle", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "config file (default $"+constants.EnvConfigPath+" or "+constants.DefaultConfigPath+")")
		seed       = fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
		name1      = fs.String("p1", "Player 1", "name of the first player")
		name2      = fs.String("p2", "Player 2", "name of the second player")
		team1      = fs.String("team1", "", "comma separated species IDs for the first player (random when empty)")
		team2      = fs.String("team2", "", "comma separated species IDs for the second player (random when empty)")
		logPath    = fs.String("log", "pokebattle.log", "file receiving the structured log")
		list       = fs.Bool("list", false, "print the species catalog and exit")
		showVer    = fs.Bool("version", false, "print the build version and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVer {
		fmt.Fprintln(stdout, version.String())
		return nil
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logging.SetOutput(logFile)
	defer logging.SetOutput(os.Stderr)

	cfg, err := loadConfig(config.ResolvePath(*configPath))
	if err != nil {
		return err
	}
	repo, err := createRepository(cfg)
	if err != nil {
		return err
	}

	if *list {
		return printCatalog(stdout, repo)
	}

	rng := service.NewRoller(*seed)
	rules := service.Rules{MaxRosterSize: cfg.MaxRosterSize, StartingInventory: cfg.StartingInventory}
	ids1, err := pickTeam(repo, *team1, cfg.MaxRosterSize, rng)
	if err != nil {
		return logged("first team", err)
	}
	ids2, err := pickTeam(repo, *team2, cfg.MaxRosterSize, rng)
	if err != nil {
		return logged("second team", err)
	}

	m, err := service.NewMatch(repo, rules, service.MatchRequest{
		Player1: service.PlayerSpec{Name: *name1, SpeciesIDs: ids1},
		Player2: service.PlayerSpec{Name: *name2, SpeciesIDs: ids2},
	})
	if err != nil {
		return logged("cannot create match", err)
	}

	logSink := service.LogSink{MatchID: m.ID.String()}
	res, err := tui.Run(m, rng, []engine.PresentationSink{logSink})
	if err != nil {
		return logged("battle aborted", err)
	}
	if res.Winner != nil {
		fmt.Fprintf(stdout, "%s won after %d turns.\n", res.Winner.Name, res.Turns)
	} else if res.Draw {
		fmt.Fprintf(stdout, "Draw after %d turns.\n", res.Turns)
	}
	return nil
}

func logged(what string, err error) error {
	logging.Error(what, err, nil)
	return fmt.Errorf("%s: %w", what, err)
}
