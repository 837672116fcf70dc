package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/storage"
)

type SettingsCmd struct {
	Reminders string `help:"Turn the weekly backup reminder on or off." placeholder:"on|off"`
	StartView string `help:"View shown when daylog runs without a command (journal, history, trends, export, settings)."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings := storage.LoadSettings(ctx.Store)

	if c.Reminders == "" && c.StartView == "" {
		ctx.println(renderSettings(settings))
		return nil
	}

	if c.Reminders != "" {
		on, err := parseSwitch(c.Reminders)
		if err != nil {
			return err
		}
		settings.RemindersEnabled = on
	}
	if c.StartView != "" {
		view, ok := models.ParseStartView(strings.ToLower(strings.TrimSpace(c.StartView)))
		if !ok {
			return fmt.Errorf("unknown start view: %s (expected one of %s)", c.StartView, startViewNames())
		}
		settings.StartView = view
	}

	if err := storage.SaveSettings(ctx.Store, settings); err != nil {
		return err
	}
	ctx.println("✓ Settings saved")
	ctx.println(renderSettings(settings))
	return nil
}

func renderSettings(s models.Settings) string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + " " + valueStyle.Render(value)
	}
	return strings.Join([]string{
		titleStyle.Render("Settings"),
		row("Reminders", strconv.FormatBool(s.RemindersEnabled)),
		row("Start view", string(s.StartView)),
	}, "\n")
}

func startViewNames() string {
	names := make([]string, len(constants.StartViews))
	for i, v := range constants.StartViews {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid value %q (expected on or off)", s)
}
