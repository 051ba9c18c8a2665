package cli

import (
	"github.com/julianstephens/horta/internal/errors"
	"github.com/julianstephens/horta/internal/models"
)

type HabitCmd struct {
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Toggle HabitToggleCmd `cmd:"" help:"Mark a habit as done, or undo it."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitListCmd struct {
	Pending bool `help:"Show only habits still to do." xor:"filter"`
	Done    bool `help:"Show only completed habits." xor:"filter"`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	var habits []models.Habit
	switch {
	case c.Pending:
		habits = ctx.Session.Garden.PendingHabits()
	case c.Done:
		habits = ctx.Session.Garden.CompletedHabits()
	default:
		habits = ctx.Session.Garden.Habits()
	}

	if len(habits) == 0 {
		ctx.println("No habits found.")
		return nil
	}

	for _, h := range habits {
		plant := h.PlantID
		if p, ok := ctx.Session.Garden.Plant(h.PlantID); ok {
			plant = p.Name
		}
		ctx.printf("  %s %-24s %-9s streak %-3d %s  [%s]\n",
			checkbox(h.Completed), h.Name, h.Type, h.Streak, plant, h.ID)
	}
	return nil
}

type HabitToggleCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Undo bool   `help:"Mark the habit as not done."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	if !ctx.Session.ToggleHabit(c.ID, !c.Undo) {
		return errors.Usagef("habit not found: %s", c.ID)
	}

	h, _ := ctx.Session.Garden.Habit(c.ID)
	p, _ := ctx.Session.Garden.Plant(h.PlantID)
	ctx.printf("%s %s (streak %d)\n", checkbox(h.Completed), h.Name, h.Streak)
	ctx.printf("%s %s is now %s at %.1f%%\n", p.Icon(), p.Name, p.Stage, p.Completed)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	h, ok := ctx.Session.Garden.Habit(c.ID)
	if !ok || !ctx.Session.DeleteHabit(c.ID) {
		return errors.Usagef("habit not found: %s", c.ID)
	}
	ctx.printf("Deleted habit: %s\n", h.Name)
	return nil
}
