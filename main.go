package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"go.aimuz.me/deskshell/config"
	"go.aimuz.me/deskshell/heartbeat"
	"go.aimuz.me/deskshell/instance"
	"go.aimuz.me/deskshell/internal/app"
	"go.aimuz.me/deskshell/internal/types"
	"go.aimuz.me/deskshell/logging"
	"go.aimuz.me/deskshell/reveal"
	"go.aimuz.me/deskshell/store"
	"go.aimuz.me/deskshell/tray"
)

//go:embed all:frontend/dist
var assets embed.FS

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	appName     = "deskshell"
	appUniqueID = "me.aimuz.deskshell"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type runOptions struct {
	logLevel string
	lang     string
}

func newRootCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   appName + " [args...]",
		Short: "Desktop shell with a system tray",
		// Arguments are forwarded verbatim to a running instance.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "tray menu language for this run")
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", appName, version, commit, date)
		},
	})
	return cmd
}

func run(opts runOptions) error {
	prelude()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		cfg = config.Recover()
	}
	if opts.lang != "" {
		cfg.Language = opts.lang
	}
	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger := logging.Setup(os.Stderr, level)
	slog.Info("starting app", "version", version, "commit", commit, "date", date)

	appService := app.New(cfg, reveal.New())
	guard := instance.New(appUniqueID, instance.Key(cfg.InstanceKey), appService.ForwardInstance)

	// A second launch exits inside application.New after forwarding.
	wailsApp := application.New(application.Options{
		Name:        appName,
		Description: "Desktop application shell",
		Logger:      logger,
		Services: []application.Service{
			application.NewService(appService),
		},
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(assets),
		},
		Mac: application.MacOptions{
			// Don't quit when all windows are closed (we have a system tray)
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
		SingleInstance: guard.Options(),
		OnShutdown:     appService.Shutdown,
	})

	// Hidden until geometry has been restored
	mainWindow := wailsApp.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:   types.MainWindowName,
		Title:  appName,
		Width:  1024,
		Height: 768,
		Hidden: true,
		URL:    "/",
		Mac: application.MacWindow{
			TitleBar:                application.MacTitleBarHiddenInsetUnified,
			InvisibleTitleBarHeight: 38,
		},
	})

	window := app.NewWindow(mainWindow)

	// Intercept window close: hide instead of destroy so tray can reopen
	mainWindow.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		e.Cancel()
		appService.HideToTray(window)
	})

	st, err := store.Open(store.DefaultDir(appName))
	if err != nil {
		slog.Error("open store", "error", err)
		st = nil
	}
	appService.Init(wailsApp, st)

	wailsApp.Event.OnApplicationEvent(events.Common.ApplicationStarted, func(*application.ApplicationEvent) {
		appService.RestoreWindow(window)
	})

	saveGeometry := appService.TrackWindow(window)
	mainWindow.OnWindowEvent(events.Common.WindowDidMove, func(*application.WindowEvent) { saveGeometry() })
	mainWindow.OnWindowEvent(events.Common.WindowDidResize, func(*application.WindowEvent) { saveGeometry() })

	setupTray(wailsApp, appService, cfg.Language)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	beat := heartbeat.New(func() (heartbeat.Target, bool) {
		return appService.MainWindow()
	})
	go beat.Run(ctx)

	if path := cfg.Path(); path != "" {
		go func() {
			if err := config.Watch(ctx, path, appService.ApplyConfig); err != nil {
				slog.Warn("watch config", "error", err)
			}
		}()
	}

	if err := wailsApp.Run(); err != nil {
		slog.Error("run app", "error", err)
		return err
	}
	return nil
}

func setupTray(wailsApp *application.App, appService *app.Service, lang string) {
	systemTray := wailsApp.SystemTray.New()
	systemTray.SetTooltip(appName)

	surface := tray.NewWailsSurface(wailsApp, systemTray)
	ctrl := tray.NewController(tray.Options{
		Surface: surface,
		Window: func() (tray.Window, bool) {
			return appService.MainWindow()
		},
		State:    tray.NewState(),
		Icons:    tray.DefaultIcons,
		Language: lang,
		Exit:     os.Exit,
	})
	surface.OnSelect(ctrl.HandleMenu)

	systemTray.OnClick(ctrl.HandleLeftClick)
	// A custom click handler disables the default menu, so open it here
	systemTray.OnRightClick(func() {
		ctrl.HandleRightClick()
		systemTray.OpenMenu()
	})
	systemTray.OnDoubleClick(ctrl.HandleDoubleClick)

	ctrl.Render()
	appService.AttachTray(ctrl)
}
