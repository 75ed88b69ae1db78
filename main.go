package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pucknet/puck-scout/internal/config"
	"github.com/pucknet/puck-scout/internal/logging"
	"github.com/pucknet/puck-scout/internal/platform"
	"github.com/pucknet/puck-scout/internal/search"
	"github.com/pucknet/puck-scout/internal/sprite"
	"github.com/pucknet/puck-scout/internal/stats"
	"github.com/pucknet/puck-scout/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.pucknet.puck-scout"

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply the dark theme
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	myWindow := myApp.NewWindow(ui.SubtitleLoading + " - " + ui.AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)

	// Initialize services
	settings := config.NewSettings(myApp)
	logger := logging.NewLogger(settings.GetDebugLogging())
	logging.Info(logger, "starting", "app", ui.AppName, "version", version)

	cacheDir := settings.GetSpriteCacheDir()
	if err := platform.CreateDirectoryIfNotExists(cacheDir); err != nil {
		logging.Error(logger, "failed to ensure sprite cache dir", err, logging.FieldPath, cacheDir)
	}

	timeout := settings.GetHTTPTimeout()

	statsClient := stats.NewClient(stats.Config{
		BaseURL: settings.GetStatsBaseURL(),
		Timeout: timeout,
	})

	spriteSvc := sprite.NewService(sprite.Config{
		BaseURL:  settings.GetImageBaseURL(),
		CacheDir: cacheDir,
		Timeout:  timeout,
		Logger:   logger,
	})

	searchSvc := search.NewService(statsClient, spriteSvc, logger)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, searchSvc, logger)

	// Show and run
	myWindow.ShowAndRun()
}
