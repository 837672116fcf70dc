package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/daylog/internal/constants"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := ctx.backups()
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	ctx.printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := ctx.backups()
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.println("No backups found.")
		ctx.printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	now := ctx.journal().Now()
	rows := make([][]string, 0, len(backups))
	for _, b := range backups {
		rows = append(rows, []string{
			filepath.Base(b.Path),
			b.Timestamp.Format("2006-01-02 15:04:05"),
			humanize.RelTime(b.Timestamp, now, "ago", "from now"),
			humanize.Bytes(uint64(b.Size)),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FILE", "CREATED", "AGE", "SIZE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	ctx.printf("Available backups (%d total, keeping most recent %d):\n", len(backups), constants.MaxBackups)
	ctx.println(t.Render())
	ctx.printf("Backup directory: %s\n", mgr.GetBackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := ctx.backups()

	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		possiblePath := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
		if _, err := os.Stat(possiblePath); err == nil {
			backupPath = possiblePath
		}
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	restored, err := mgr.Verify(backupPath)
	if err != nil {
		return err
	}

	if !c.Yes {
		ctx.println(warnStyle.Render("⚠ This will replace your current journal with the backup."))
		ctx.println("A backup of your current journal will be created before restoring.")
		confirmed, err := ctx.prompter().Confirm(
			fmt.Sprintf("Restore %d %s from %s?", len(restored), pluralize(len(restored), "entry", "entries"), filepath.Base(backupPath)),
			"Restore", "Cancel")
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.println("Restore cancelled.")
			return nil
		}
	}

	preRestore, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	if preRestore != "" {
		ctx.printf("Previous journal saved to: %s\n", filepath.Base(preRestore))
	}
	ctx.printf("✓ Restored %d %s from %s\n", len(restored), pluralize(len(restored), "entry", "entries"), filepath.Base(backupPath))
	return nil
}
