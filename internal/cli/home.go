package cli

import (
	"fmt"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/storage"
	"github.com/julianstephens/daylog/internal/trends"
)

// HomeCmd runs when no command is given and shows the configured start view.
type HomeCmd struct{}

func (c *HomeCmd) Run(ctx *Context) error {
	settings := storage.LoadSettings(ctx.Store)
	entries := ctx.Entries().LoadEntries()

	if storage.BackupDue(ctx.Store, settings, len(entries), ctx.journal().Now()) {
		ctx.println(warnStyle.Render(backupReminder(ctx)))
		ctx.println()
	}

	switch settings.StartView {
	case constants.StartViewHistory:
		return (&HistoryCmd{Limit: 14}).Run(ctx)
	case constants.StartViewTrends:
		return (&TrendsCmd{Days: trends.DefaultDays}).Run(ctx)
	case constants.StartViewExport:
		ctx.printf("%d %s stored.\n", len(entries), pluralize(len(entries), "entry", "entries"))
		ctx.println(mutedStyle.Render("Export with 'daylog export --format csv|json', import with 'daylog import <file>'."))
		return nil
	case constants.StartViewSettings:
		ctx.println(renderSettings(settings))
		return nil
	default:
		return (&ShowCmd{}).Run(ctx)
	}
}

func backupReminder(ctx *Context) string {
	days, ok := storage.DaysSinceBackup(ctx.Store, ctx.journal().Now())
	if !ok {
		return "⚠ You have never backed up your journal. Run 'daylog backup create' or 'daylog export'."
	}
	return fmt.Sprintf("⚠ Last backup was %d days ago. Run 'daylog backup create' or 'daylog export'.", days)
}
