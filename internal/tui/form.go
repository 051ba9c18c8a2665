package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/horta/internal/constants"
	"github.com/julianstephens/horta/internal/ledger"
)

func NewCalendarHabitForm(fm *CalendarHabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(ledger.ValidateName),
			huh.NewInput().
				Title("Emoji").
				Placeholder("🌱").
				Value(&fm.Emoji).
				Validate(ledger.ValidateEmoji),
			huh.NewInput().
				Title("Minimum Days").
				Description(fmt.Sprintf("Days needed to build the habit (%d-%d).", constants.MinMinimumDays, constants.MaxMinimumDays)).
				Value(&fm.MinimumDays).
				Validate(func(s string) error {
					days, err := parseMinimumDays(s)
					if err != nil {
						return err
					}
					return ledger.ValidateMinimumDays(days)
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func parseMinimumDays(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return constants.DefaultMinimumDays, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("must be a whole number")
	}
	return days, nil
}

func (fm *CalendarHabitFormModel) input() (ledger.NewCalendarHabit, error) {
	days, err := parseMinimumDays(fm.MinimumDays)
	if err != nil {
		return ledger.NewCalendarHabit{}, err
	}
	return ledger.NewCalendarHabit{Name: fm.Name, Emoji: fm.Emoji, MinimumDays: days}, nil
}
