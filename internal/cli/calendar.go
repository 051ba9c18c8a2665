package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/horta/internal/errors"
	"github.com/julianstephens/horta/internal/ledger"
	"github.com/julianstephens/horta/internal/models"
)

type CalendarCmd struct {
	List   CalendarListCmd   `cmd:"" help:"List calendar habits."`
	Week   CalendarWeekCmd   `cmd:"" help:"Show a week of calendar habits." default:"1"`
	Toggle CalendarToggleCmd `cmd:"" help:"Mark a calendar habit done on a day, or undo it."`
	Skip   CalendarSkipCmd   `cmd:"" help:"Mark a calendar habit as skipped on a past day."`
	Add    CalendarAddCmd    `cmd:"" help:"Add a calendar habit."`
}

type CalendarListCmd struct{}

func (c *CalendarListCmd) Run(ctx *Context) error {
	habits := ctx.Session.Calendar.All()
	if len(habits) == 0 {
		ctx.println("No calendar habits found.")
		return nil
	}

	records := ctx.Session.Ledger.Records()
	today := ctx.Session.Today()
	for _, h := range habits {
		ctx.printf("  %s %-20s streak %-3d goal %-3d recorded %-3d [%s]\n",
			h.Emoji, h.Name, h.Streak, h.MinimumDays,
			ledger.RecordedStreak(records, h.ID, today), h.ID)
	}
	return nil
}

type CalendarWeekCmd struct {
	Date string `help:"Centre the week on this day (YYYY-MM-DD)." placeholder:"DATE"`
}

func (c *CalendarWeekCmd) Run(ctx *Context) error {
	today := ctx.Session.Today()
	center := today
	if c.Date != "" {
		t, err := ctx.ParseDate(c.Date)
		if err != nil {
			return err
		}
		center = models.DayOf(t)
	}

	week := ledger.NewWeek(center, today)
	days := week.Days()
	habits := ctx.Session.Calendar.All()

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", 24))
	for _, d := range days {
		label := d.Time(ctx.Session.Location()).Format("Mon 02")
		if d == today {
			label = "[" + label + "]"
		}
		header.WriteString(padRight(label, 10))
	}
	ctx.println(strings.TrimRight(header.String(), " "))

	if len(habits) == 0 {
		ctx.println("No calendar habits found.")
		return nil
	}

	for i, row := range week.Grid(ctx.Session.Ledger, habits) {
		var line strings.Builder
		line.WriteString(padRight(habits[i].Emoji+" "+habits[i].Name, 24))
		for _, cell := range row {
			line.WriteString(padRight(stateMark(cell.State), 10))
		}
		ctx.println(strings.TrimRight(line.String(), " "))
	}
	ctx.println("\n✓ done   – skipped   · open")
	return nil
}

type CalendarToggleCmd struct {
	Habit string `arg:"" help:"Calendar habit ID."`
	Date  string `help:"Day to record (YYYY-MM-DD); defaults to today." placeholder:"DATE"`
	Undo  bool   `help:"Mark the day as not done."`
}

func (c *CalendarToggleCmd) Run(ctx *Context) error {
	if err := ctx.requireCalendarHabit(c.Habit); err != nil {
		return err
	}
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	cell := ctx.cell(c.Habit, models.DayOf(date))
	if !cell.CanToggle {
		return errors.Usagef("cannot record %s: it is after today", cell.Day)
	}

	r, _ := ctx.Session.ToggleCalendarHabit(c.Habit, date, !c.Undo)
	ctx.printf("%s %s on %s\n", stateMark(r.State), ctx.habitLabel(c.Habit), r.Date)
	return nil
}

type CalendarSkipCmd struct {
	Habit string `arg:"" help:"Calendar habit ID."`
	Date  string `help:"Day to skip (YYYY-MM-DD); defaults to yesterday." placeholder:"DATE"`
}

func (c *CalendarSkipCmd) Run(ctx *Context) error {
	if err := ctx.requireCalendarHabit(c.Habit); err != nil {
		return err
	}
	day := ctx.Session.Today().AddDays(-1)
	if c.Date != "" {
		t, err := ctx.ParseDate(c.Date)
		if err != nil {
			return err
		}
		day = models.DayOf(t)
	}

	cell := ctx.cell(c.Habit, day)
	if !cell.CanSkip {
		return errors.Usagef("cannot skip %s: only open days before today can be skipped", day)
	}

	r, _ := ctx.Session.SkipCalendarHabit(c.Habit, day.Time(ctx.Session.Location()))
	ctx.printf("%s %s on %s\n", stateMark(r.State), ctx.habitLabel(c.Habit), r.Date)
	return nil
}

type CalendarAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Emoji string `help:"Emoji shown in the calendar." required:""`
	Days  int    `help:"Minimum days to build the habit (1-365)." default:"7"`
}

func (c *CalendarAddCmd) Run(ctx *Context) error {
	h, err := ctx.Session.AddCalendarHabit(ledger.NewCalendarHabit{
		Name:        c.Name,
		Emoji:       c.Emoji,
		MinimumDays: c.Days,
	})
	if err != nil {
		return &errors.UsageError{Err: err}
	}
	ctx.printf("Added calendar habit: %s %s (goal %d days) [%s]\n", h.Emoji, h.Name, h.MinimumDays, h.ID)
	return nil
}

func (c *Context) cell(habitID string, day models.Day) ledger.Cell {
	today := c.Session.Today()
	return ledger.NewWeek(day, today).Cell(c.Session.Ledger, habitID, day)
}

func (c *Context) requireCalendarHabit(habitID string) error {
	if _, ok := c.Session.Calendar.Get(habitID); !ok {
		return errors.Usagef("calendar habit not found: %s", habitID)
	}
	return nil
}

func (c *Context) habitLabel(habitID string) string {
	if h, ok := c.Session.Calendar.Get(habitID); ok {
		return h.Emoji + " " + h.Name
	}
	return habitID
}

// padRight pads s with spaces to width terminal columns.
func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}
