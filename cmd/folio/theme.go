package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-sh/folio/internal/logger"
	"github.com/folio-sh/folio/internal/preferences"
)

func newThemeCmd(log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [show|light|dark|toggle]",
		Short:     "Inspect or set the persisted theme preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"show", "light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "show"
			if len(args) == 1 {
				action = args[0]
			}
			return runTheme(cmd, action, log)
		},
	}

	return cmd
}

func runTheme(cmd *cobra.Command, action string, log *logger.Logger) error {
	store := preferences.NewStore(openPreferenceStorage(log), nil, log)
	store.Initialize(preferences.NewTerminalSignal(0).Dark())

	switch action {
	case "show":
		source := "environment default"
		if store.Explicit() {
			source = "persisted"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", store.Current(), source)
		return nil
	case "light":
		store.Set(preferences.ThemeLight)
	case "dark":
		store.Set(preferences.ThemeDark)
	case "toggle":
		store.Toggle()
	default:
		return fmt.Errorf("unknown theme action %q", action)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", store.Current())
	return nil
}
