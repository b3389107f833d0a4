// Package app provides application-level orchestration for the canwave
// demo. It wires the logger, the Fyne application and the waveform
// widget together and manages the window lifecycle.
package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/lmangani/canwave/internal/adapter/media"
	"github.com/lmangani/canwave/internal/adapter/ui/fyne/widgets"
	"github.com/lmangani/canwave/internal/logger"
	"github.com/lmangani/canwave/internal/waveform"
)

// Config holds application configuration.
type Config struct {
	// AppID is the unique application identifier.
	AppID string

	// AppName is the window title.
	AppName string

	// LogLevel controls logging verbosity.
	LogLevel slog.Level

	// TestFyneApp allows injecting a test Fyne app (nil for production).
	TestFyneApp fyne.App
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() Config {
	loggerCfg := logger.DefaultConfig()
	return Config{
		AppID:    "com.canwave.app",
		AppName:  "canwave",
		LogLevel: loggerCfg.Level,
	}
}

// Application is the root structure holding all demo dependencies.
type Application struct {
	logger  *slog.Logger
	fyneApp fyne.App
	window  fyne.Window

	wave       *widgets.Waveform
	trackLabel *widget.Label
}

// New creates the application with all dependencies wired.
func New(cfg Config) (*Application, error) {
	app := &Application{}

	app.logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: "text"})

	if cfg.TestFyneApp != nil {
		app.fyneApp = cfg.TestFyneApp
	} else {
		app.fyneApp = fyneapp.NewWithID(cfg.AppID)
	}

	wave, err := widgets.NewWaveform()
	if err != nil {
		return nil, fmt.Errorf("create waveform widget: %w", err)
	}
	wave.SetLogger(app.logger)
	app.wave = wave

	app.window = app.fyneApp.NewWindow(cfg.AppName)
	app.window.Resize(fyne.NewSize(640, 240))
	app.window.SetContent(app.buildContent())
	app.window.SetOnClosed(app.wave.Close)

	return app, nil
}

// Run shows the main window and blocks until the application exits.
func (a *Application) Run() {
	a.logger.Info("starting canwave demo", slog.String("version", GetVersionInfo().FullString()))
	a.window.ShowAndRun()
}

func (a *Application) buildContent() fyne.CanvasObject {
	a.trackLabel = widget.NewLabel("no track loaded")

	regenerate := widget.NewButton("Regenerate", a.wave.Regenerate)

	mirror := widget.NewCheck("Mirror", func(on bool) {
		a.wave.UpdateOptions(waveform.WithMirror(on))
	})
	mirror.SetChecked(a.wave.Options().Mirror)

	randomize := widget.NewCheck("Randomize", func(on bool) {
		a.wave.UpdateOptions(waveform.WithRandomize(on))
	})
	randomize.SetChecked(a.wave.Options().Randomize)

	open := widget.NewButton("Open...", a.openTrack)

	controls := container.NewHBox(open, regenerate, mirror, randomize)
	return container.NewBorder(a.trackLabel, controls, nil, nil, a.wave)
}

// openTrack lets the user pick an audio file and shows its tag metadata.
// The waveform itself stays synthetic; no audio is decoded.
func (a *Application) openTrack() {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()

		label, err := media.Describe(path)
		if err != nil {
			a.logger.Warn("could not read track metadata",
				slog.String("path", path),
				slog.Any("error", err))
			dialog.ShowError(err, a.window)
			return
		}
		a.trackLabel.SetText(label)
		a.wave.Regenerate()
	}, a.window)
}
