package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/horta/internal/cli"
	"github.com/julianstephens/horta/internal/config"
	"github.com/julianstephens/horta/internal/constants"
	"github.com/julianstephens/horta/internal/errors"
	"github.com/julianstephens/horta/internal/garden"
	"github.com/julianstephens/horta/internal/logger"
	"github.com/julianstephens/horta/internal/seed"
	"github.com/julianstephens/horta/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`
	Seed    string `help:"Seed file to start the garden from." type:"path"`
	Strict  bool   `help:"Only move a streak when a habit actually changes state."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Garden   cli.GardenCmd   `cmd:"" help:"Show the garden."`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage garden habits."`
	Plant    cli.PlantCmd    `cmd:"" help:"Inspect plants."`
	Stage    cli.StageCmd    `cmd:"" help:"Show the growth stage for a completion percentage."`
	Calendar cli.CalendarCmd `cmd:"" help:"Track calendar habits by day."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show monthly calendar statistics."`
	Replay   cli.ReplayCmd   `cmd:"" help:"Apply a YAML script of events to the garden."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A habit tracker that grows a virtual garden"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Log.Debug = true
	}
	if CLI.Seed != "" {
		cfg.Garden.SeedFile = CLI.Seed
	}
	if CLI.Strict {
		cfg.Garden.StrictStreaks = true
	}

	logCfg := logger.Config{
		Debug: cfg.Log.Debug,
		Dir:   cfg.Log.Dir,
		Quiet: ctx.Command() == "tui",
	}
	if err := logger.Init(logCfg); err != nil {
		// The program still works without a log file
		logger.Discard()
	}
	logger.Debug("Config loaded", "path", CLI.Config, "seed", cfg.Garden.SeedFile, "timezone", cfg.Calendar.Timezone)

	data, err := seed.Load(cfg.Garden.SeedFile)
	if err != nil {
		errors.Fatal(err)
	}

	s, err := session.New(data, session.Options{
		Garden: garden.Options{
			StrictStreaks:     cfg.Garden.StrictStreaks,
			RecomputeOnDelete: cfg.Garden.RecomputeOnDelete,
		},
		Location: cfg.Location(),
	})
	if err != nil {
		errors.Fatal(err)
	}

	if err := ctx.Run(&cli.Context{Session: s, Config: cfg}); err != nil {
		errors.Fatal(err)
	}
}
