package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/folio-sh/folio/internal/config"
	"github.com/folio-sh/folio/internal/contact"
	"github.com/folio-sh/folio/internal/content"
	"github.com/folio-sh/folio/internal/logger"
	"github.com/folio-sh/folio/internal/preferences"
	"github.com/folio-sh/folio/internal/tui"
)

type rootFlags struct {
	contentPath string
}

func newRootCmd(settings config.Settings, log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "folio renders a portfolio site in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(flags, settings, log)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.contentPath, "content", "c", "", "Path to a site content file (YAML)")

	cmd.AddCommand(newThemeCmd(log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runApp(flags *rootFlags, settings config.Settings, log *logger.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("folio needs an interactive terminal")
	}

	site, err := content.Load(flags.contentPath)
	if err != nil {
		return err
	}
	content.Enrich(site)

	store := preferences.NewStore(openPreferenceStorage(log), nil, log)
	signal := preferences.NewTerminalSignal(settings.EnvironmentPollInterval)

	var sender contact.Sender
	if settings.ContactEndpoint != "" {
		sender = contact.NewHTTPSender(settings.ContactEndpoint, settings.ContactTimeout)
	} else {
		sender = contact.NewLogSender(log)
	}

	m := tui.NewModel(tui.Options{
		Site:        site,
		Preferences: store,
		Signal:      signal,
		Sender:      sender,
		SendTimeout: settings.ContactTimeout,
		Logger:      log,
	})

	log.Info("launching folio")
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// openPreferenceStorage resolves the preference slot. Failures degrade
// to an in-memory preference for the session.
func openPreferenceStorage(log *logger.Logger) preferences.Storage {
	path, err := preferences.DefaultSlotPath()
	if err != nil {
		log.Debug("preference slot path unavailable, theme will not persist")
		return nil
	}

	storage, err := preferences.NewFileStorage(path)
	if err != nil {
		log.Debug("preference slot unavailable, theme will not persist")
		return nil
	}

	return storage
}
