package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/horta/internal/errors"
	"github.com/julianstephens/horta/internal/stats"
)

type StatsCmd struct {
	Month int  `help:"Month (1-12); defaults to the current month."`
	Year  int  `help:"Year; defaults to the current year."`
	Days  bool `help:"Also print every day of the month."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	now := ctx.Session.Now()
	year, month := now.Year(), now.Month()
	if c.Year != 0 {
		year = c.Year
	}
	if c.Month != 0 {
		if c.Month < 1 || c.Month > 12 {
			return errors.Usagef("invalid month %d", c.Month)
		}
		month = time.Month(c.Month)
	}

	s := ctx.Session.MonthStats(year, month)

	ctx.printf("%s %d\n\n", s.Month, s.Year)
	ctx.printf("  Completion: %5.1f%%  (%d of %d)\n", s.CompletionRate, s.TotalCompleted, s.TotalPossible)
	ctx.printf("  Skipped:    %5.1f%%  (%d of %d)\n", s.SkipRate, s.TotalSkipped, s.TotalPossible)
	if s.BestStreak != nil {
		ctx.printf("  Best streak: %s %s (%d days)\n", s.BestStreak.Emoji, s.BestStreak.Name, s.BestStreak.Streak)
	}

	if len(s.Habits) > 0 {
		ctx.println("\nHabits:")
		for _, hp := range s.Habits {
			goal := ""
			if hp.Reached {
				goal = " ✓ goal reached"
			}
			ctx.printf("  %s %-20s %s %3.0f%%  %d this month%s\n",
				hp.Habit.Emoji, hp.Habit.Name, progressBar(hp.Progress, 10), hp.Progress, hp.Completions, goal)
		}
	}

	if c.Days {
		ctx.println("\nDays:")
		for _, d := range s.Days {
			ctx.printf("  %s  %s\n", d.Day, dayLine(d))
		}
	}
	return nil
}

func dayLine(d stats.DaySummary) string {
	switch d.Status {
	case stats.DayFuture:
		return "-"
	case stats.DayNoData:
		return "no data"
	}
	line := progressBar(d.Percentage, 10)
	line += fmt.Sprintf(" %d/%d", d.Completed, d.Total)
	if d.Skipped > 0 {
		line += fmt.Sprintf(", %d skipped", d.Skipped)
	}
	return line
}
