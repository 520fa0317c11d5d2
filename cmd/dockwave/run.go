package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/Gaurav-Gosain/dockwave/internal/app"
	"github.com/Gaurav-Gosain/dockwave/internal/config"
	"github.com/Gaurav-Gosain/dockwave/internal/dock"
	"github.com/Gaurav-Gosain/dockwave/internal/loop"
	"github.com/Gaurav-Gosain/dockwave/internal/x11"
)

// newLogger returns a logger writing timestamped records to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func overrides() config.Overrides {
	return config.Overrides{
		ThemeName:           themeName,
		Debug:               debugMode,
		MaxAuthorizedWidth:  maxWidth,
		Amplitude:           amplitude,
		Position:            position,
		Visibility:          visibility,
		BackgroundImage:     backgroundImage,
		NoSubPanelAnimation: noSubPanelAnimation,
	}
}

// loadConfig reads the configuration file, from --config when set, and
// applies the command line overrides. It returns the path being used, empty
// when the defaults are in effect.
func loadConfig() (*config.UserConfig, string, error) {
	path := configPath
	var (
		userConfig *config.UserConfig
		err        error
	)
	if path != "" {
		userConfig, err = config.LoadUserConfigFrom(path)
		if err != nil {
			return nil, "", err
		}
	} else {
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			log.Warn("failed to load config, using defaults", "err", err)
			userConfig = config.DefaultConfig()
		} else if p, perr := config.GetConfigPath(); perr == nil {
			path = p
		}
	}

	userConfig = config.ApplyOverrides(overrides(), userConfig)

	// Overrides may break an otherwise valid file.
	validation := config.ValidateConfig(userConfig)
	if validation.HasErrors() {
		for _, issue := range validation.Errors {
			log.Error("config error", "section", issue.Field, "key", issue.Key, "message", issue.Message)
		}
		return nil, "", fmt.Errorf("configuration has %d error(s)", len(validation.Errors))
	}
	for _, issue := range validation.Warnings {
		log.Warn("config warning", "section", issue.Field, "key", issue.Key, "message", issue.Message)
	}
	return userConfig, path, nil
}

func logLevel(cfg *config.UserConfig) log.Level {
	level, err := log.ParseLevel(cfg.Appearance.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func runDock() error {
	userConfig, path, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, logLevel(userConfig))

	l := loop.New()
	conn, err := x11.Open(l, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to the X server: %w", err)
	}

	a := app.New(app.Options{
		Loop:    l,
		Logger:  logger,
		Params:  userConfig.Params(),
		WMHints: conn,
	})
	defer func() {
		a.Close()
		conn.Close()
	}()

	newWindow := func(_ string, _ dock.Position) (dock.Window, error) {
		w, err := conn.NewWindow(conn.Monitor(0))
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	if err := a.Build(userConfig, newWindow); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if path != "" {
		err := watchConfig(ctx, path, l, logger, func() {
			cfg, _, err := loadConfig()
			if err != nil {
				a.LogError("Configuration not reloaded: %v", err)
				return
			}
			a.Reload(cfg.Params())
		})
		if err != nil {
			logger.Warn("config changes will not be picked up", "err", err)
		}
	}

	go func() {
		if err := conn.Run(ctx, a.Input); err != nil && ctx.Err() == nil {
			logger.Error("X connection lost", "err", err)
			stop()
		}
	}()

	logger.Info("dock running", "panels", len(a.Registry.Panels()), "monitors", len(conn.Monitors()))
	if err := l.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// watchConfig calls reload on the loop every time the file at path is
// written or replaced, until ctx is done. The directory is watched rather than
// the file so that editors saving through a rename keep being followed.
func watchConfig(ctx context.Context, path string, l *loop.Loop, logger *log.Logger, reload func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					logger.Debug("config changed", "path", path, "op", event.Op.String())
					l.Post(reload)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "err", err)
			}
		}
	}()
	return nil
}
