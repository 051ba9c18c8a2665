package constants

const (
	AppName           = "horta"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/horta/config.yaml"
	DefaultLogDir     = "~/.config/horta"
	LogFileName       = "horta.log"

	// DateFormat is the canonical calendar-day format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Calendar habit creation limits
	MinCalendarHabitNameLen = 2
	DefaultMinimumDays      = 7
	MinMinimumDays          = 1
	MaxMinimumDays          = 365

	// Week view: the window spans WeekLeadDays before and after its center day
	WeekLength   = 7
	WeekLeadDays = 3
)
