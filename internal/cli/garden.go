package cli

import (
	"fmt"

	"github.com/julianstephens/horta/internal/errors"
	"github.com/julianstephens/horta/internal/garden"
)

type GardenCmd struct{}

func (c *GardenCmd) Run(ctx *Context) error {
	plants := ctx.Session.Garden.Plants()
	if len(plants) == 0 {
		ctx.println("The garden is empty.")
		return nil
	}

	ctx.println("Garden:")
	for _, p := range plants {
		ctx.printf("  %s %-12s %s %5.1f%%  %s\n",
			p.Icon(), p.Name, progressBar(p.Completed, 20), p.Completed, p.Stage)
	}
	ctx.printf("\nLongest streak: %d\n", ctx.Session.Garden.LongestStreak())
	return nil
}

type PlantCmd struct {
	Inspect PlantInspectCmd `cmd:"" help:"Show a plant and the habits that tend it."`
}

type PlantInspectCmd struct {
	ID string `arg:"" help:"Plant ID."`
}

func (c *PlantInspectCmd) Run(ctx *Context) error {
	status, ok := ctx.Session.Garden.Inspect(c.ID)
	if !ok {
		return errors.Usagef("plant not found: %s", c.ID)
	}

	p := status.Plant
	ctx.printf("%s %s (%s)\n", p.Icon(), p.Name, p.Type)
	ctx.printf("  Stage:    %s\n", p.Stage)
	ctx.printf("  Progress: %s %.1f%%\n", progressBar(p.Completed, 20), p.Completed)

	if len(status.Habits) == 0 {
		ctx.println("  No habits tend this plant.")
		return nil
	}

	ctx.println("  Habits:")
	for _, h := range status.Habits {
		ctx.printf("    %s %s (%s, streak %d)\n", checkbox(h.Completed), h.Name, h.Type, h.Streak)
	}
	if status.Healthy {
		ctx.println("  Healthy: every habit is done.")
	} else {
		ctx.printf("  %d habit(s) still need care.\n", status.Pending)
	}
	return nil
}

type StageCmd struct {
	Percentage string `arg:"" help:"Completion percentage (0-100)."`
}

func (c *StageCmd) Run(ctx *Context) error {
	pct, err := ParsePercentage(c.Percentage)
	if err != nil {
		return err
	}
	ctx.println(fmt.Sprint(garden.DeriveStage(pct)))
	return nil
}
