package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/claude-notify/internal/app"
	"github.com/ariel-frischer/claude-notify/internal/cli/shared"
	"github.com/ariel-frischer/claude-notify/internal/dispatch"
	"github.com/ariel-frischer/claude-notify/internal/notify"
	"github.com/ariel-frischer/claude-notify/internal/runner"
	"github.com/ariel-frischer/claude-notify/internal/slot"
	"github.com/ariel-frischer/claude-notify/internal/target"
)

// Replaced in tests.
var (
	newRunner   = runner.New
	exitProcess = func() { os.Exit(0) }
)

func addAlertFlags(cmd *cobra.Command) {
	cmd.Flags().String("presenter", "", "Presenter override: auto, dialog, notify-send, terminal, none")
	cmd.Flags().Duration("timeout", 0, "Dismiss the alert after this long (default from settings)")
}

// runAlert shows one alert. Configuration and presenter problems are logged and
// replaced by defaults; the alert itself never fails the command.
func runAlert(cmd *cobra.Command, args []string) error {
	settings, logger, _ := shared.LoadSettings(cmd)

	presenterName := settings.Presenter
	if v, _ := cmd.Flags().GetString("presenter"); v != "" {
		presenterName = v
	}
	timeout := settings.Timeout
	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		timeout = v
	}

	r := newRunner()
	env := notify.DefaultEnv(r, logger)
	presenter, err := notify.Select(presenterName, env)
	if err != nil {
		logger.Warn("presenter unavailable, using auto", "presenter", presenterName, "err", err)
		presenter, _ = notify.Select(notify.PresenterAuto, env)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Deps{
		Registry:        target.Default(),
		Runner:          r,
		Presenter:       presenter,
		Sender:          notify.NewSender(r, logger),
		Allocator:       slot.New(settings.SlotDir, slot.WithSize(settings.SlotCount), slot.WithLogger(logger)),
		Logger:          logger,
		EditorsFile:     settings.EditorsFile,
		Timeout:         timeout,
		SoundEnabled:    settings.SoundEnabled,
		CompletionSound: settings.CompletionSound,
		PermissionSound: settings.PermissionSound,
		DispatchOptions: []dispatch.Option{dispatch.WithOpenDelay(settings.OpenDelay)},
		Exit:            exitProcess,
	})

	a.Run(ctx, app.ParseArgs(args))
	return nil
}
