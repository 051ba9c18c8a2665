package cli

import (
	"github.com/julianstephens/horta/internal/errors"
	"github.com/julianstephens/horta/internal/session"
)

type ReplayCmd struct {
	File string `arg:"" help:"YAML event script." type:"existingfile"`
}

func (c *ReplayCmd) Run(ctx *Context) error {
	sc, err := session.LoadScript(c.File)
	if err != nil {
		return err
	}

	res, err := ctx.Session.Replay(sc)
	if err != nil {
		return &errors.UsageError{Err: err}
	}

	ctx.printf("Applied %d event(s)", res.Applied)
	if res.Ignored > 0 {
		ctx.printf(", ignored %d for unknown habits", res.Ignored)
	}
	ctx.println()
	for _, h := range res.Added {
		ctx.printf("  added %s %s [%s]\n", h.Emoji, h.Name, h.ID)
	}
	for _, r := range res.Records {
		ctx.printf("  %s %s on %s\n", stateMark(r.State), ctx.habitLabel(r.HabitID), r.Date)
	}
	ctx.println()

	return (&GardenCmd{}).Run(ctx)
}
