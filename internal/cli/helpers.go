// Package cli contains the cobra commands of the crewdeck binary.
// Commands are thin translators: parse flags, call the engine through
// wire, print the result. All domain rules live in internal/app.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/crewdeck/internal/core/stock"
	"github.com/example/crewdeck/internal/models"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("!")
)

// fmtMillis renders a unix-milli timestamp in local time, or "-" when
// unset.
func fmtMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

// fmtBand renders a stock band with a severity color.
func fmtBand(item models.Item) string {
	band := stock.BandOf(item)
	switch band {
	case stock.BandEmpty:
		return color.New(color.FgRed, color.Bold).Sprint(string(band))
	case stock.BandLow:
		return color.New(color.FgYellow).Sprint(string(band))
	default:
		return color.New(color.FgGreen).Sprint(string(band))
	}
}

// fmtStatus renders an employee status, highlighting timed states.
func fmtStatus(acc models.Account) string {
	switch acc.Status {
	case models.StatusBreak, models.StatusLunch:
		return color.New(color.FgYellow).Sprintf("%s until %s", acc.Status, fmtMillis(acc.StatusUntil))
	case models.StatusOff:
		return color.New(color.FgHiBlack).Sprint(string(acc.Status))
	default:
		return string(acc.Status)
	}
}

// truncate shortens a string for one-line listings.
func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// parseRole validates a role argument against the known roles.
func parseRole(raw string) (models.Role, error) {
	role := models.Role(raw)
	if !role.Valid() {
		names := make([]string, 0, len(models.AllRoles()))
		for _, r := range models.AllRoles() {
			names = append(names, string(r))
		}
		return "", fmt.Errorf("unknown role %q (valid: %s)", raw, strings.Join(names, ", "))
	}
	return role, nil
}
