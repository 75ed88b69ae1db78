package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pucknet/puck-scout/internal/config"
	"github.com/pucknet/puck-scout/internal/logging"
	"github.com/pucknet/puck-scout/internal/search"
	"github.com/pucknet/puck-scout/internal/sprite"
	"github.com/pucknet/puck-scout/internal/stats"
	"github.com/pucknet/puck-scout/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.pucknet.puck-scout")
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	myWindow := myApp.NewWindow(ui.SubtitleLoading + " - " + ui.AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)

	settings := config.NewSettings(myApp)
	logger := logging.NewLogger(settings.GetDebugLogging())

	statsClient := stats.NewClient(stats.Config{BaseURL: settings.GetStatsBaseURL()})
	spriteSvc := sprite.NewService(sprite.Config{
		BaseURL:  settings.GetImageBaseURL(),
		CacheDir: settings.GetSpriteCacheDir(),
		Logger:   logger,
	})

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, search.NewService(statsClient, spriteSvc, logger), logger)

	// Show and run
	myWindow.ShowAndRun()
}
