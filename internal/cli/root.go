package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/daylog/internal/backup"
	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/storage"
	"github.com/julianstephens/daylog/internal/validation"
)

// Context carries the dependencies every command runs with.
type Context struct {
	Store    storage.Provider
	Journal  *journal.Journal
	Prompter Prompter
	Out      io.Writer

	// BackupDir overrides the backup directory derived from the store path.
	BackupDir string
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) journal() *journal.Journal {
	if c.Journal == nil {
		c.Journal = journal.New()
	}
	return c.Journal
}

func (c *Context) prompter() Prompter {
	if c.Prompter == nil {
		c.Prompter = FormPrompter{}
	}
	return c.Prompter
}

// Entries returns the persistence adapter for the journal document.
func (c *Context) Entries() *storage.EntryStore {
	return storage.NewEntryStore(c.Store, c.journal())
}

func (c *Context) backups() *backup.Manager {
	dir := c.BackupDir
	if dir == "" {
		dir = backup.DefaultDir(c.Store.GetConfigPath())
	}
	return backup.NewManager(c.Store, dir, c.journal())
}

// resolveDate turns a date argument into YYYY-MM-DD. Empty means today.
func resolveDate(s string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return now.Format(constants.DateFormat), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(constants.DateFormat), nil
	}
	if !validation.IsValidDate(s) {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD, 'today' or 'yesterday')", s)
	}
	return s, nil
}

// displayDateFormat is how dates are shown to people (DD/MM/YYYY).
const displayDateFormat = "02/01/2006"

// formatDate renders a YYYY-MM-DD date for display. Anything that is not a
// valid date is returned unchanged.
func formatDate(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(displayDateFormat)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func formatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func describeEntry(e models.Entry) string {
	return fmt.Sprintf("mood %d, pain %d, fatigue %d, nausea %d", e.Mood, e.Pain, e.Fatigue, e.Nausea)
}
