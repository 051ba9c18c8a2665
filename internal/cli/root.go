package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/horta/internal/config"
	"github.com/julianstephens/horta/internal/errors"
	"github.com/julianstephens/horta/internal/models"
	"github.com/julianstephens/horta/internal/session"
)

type Context struct {
	Session *session.Session
	Config  *config.Config
	// Out receives command output; stdout when nil
	Out io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

// ParseDate resolves a YYYY-MM-DD flag to midnight in the session's zone.
// An empty string means now.
func (c *Context) ParseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return c.Session.Now(), nil
	}
	day, err := models.ParseDay(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &errors.UsageError{Err: err}
	}
	return day.Time(c.Session.Location()), nil
}

// ParsePercentage parses a completion percentage in [0, 100].
func ParsePercentage(s string) (float64, error) {
	pct, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0, errors.Usagef("invalid percentage %q", s)
	}
	if pct < 0 || pct > 100 {
		return 0, errors.Usagef("percentage %v out of range [0,100]", pct)
	}
	return pct, nil
}

func checkbox(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}

func stateMark(s models.RecordState) string {
	switch s {
	case models.StateCompleted:
		return "✓"
	case models.StateSkipped:
		return "–"
	default:
		return "·"
	}
}

func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
