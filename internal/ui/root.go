package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pucknet/puck-scout/internal/config"
	"github.com/pucknet/puck-scout/internal/logging"
	"github.com/pucknet/puck-scout/internal/model"
	"github.com/pucknet/puck-scout/internal/search"
)

// RootUI represents the main UI structure. It is the only writer of the
// screen state: search outcomes arrive through the outcome callback and are
// applied on the Fyne render thread.
type RootUI struct {
	window    fyne.Window
	searchSvc search.Searcher
	settings  *config.Settings
	logger    *slog.Logger

	state model.SearchState
	team  *model.Team
}

// NewRootUI creates and initializes the main UI and kicks off the first
// search. The initial state is always Loading.
func NewRootUI(window fyne.Window, app fyne.App, searchSvc search.Searcher, logger *slog.Logger) *RootUI {
	ui := &RootUI{
		window:    window,
		searchSvc: searchSvc,
		settings:  config.NewSettings(app),
		logger:    logger,
		state:     model.StateLoading,
	}

	ui.createMenu()
	ui.searchSvc.SetOutcomeCallback(ui.onSearchOutcome)
	ui.render()

	ui.searchSvc.Start(context.Background())
	return ui
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window).Show()
}

// onSearchOutcome receives completions from the search service. It runs on
// the search goroutine, so the state write hops to the render thread.
func (ui *RootUI) onSearchOutcome(outcome model.SearchOutcome) {
	fyne.Do(func() {
		if outcome.Err != nil {
			ui.state = model.StateErrored
			ui.team = nil
		} else {
			ui.state = model.StateLoaded
			ui.team = outcome.Team
		}
		ui.render()
	})
}

// onSearchClick handles both the "Keep searching!" and "Try again" actions.
// The action is ignored while a search is already in flight.
func (ui *RootUI) onSearchClick() {
	if ui.state.IsBusy() {
		return
	}

	ui.state = model.StateLoading
	ui.team = nil
	ui.render()

	gen := ui.searchSvc.Start(context.Background())
	logging.Debug(ui.logger, "search triggered", logging.FieldGeneration, gen)
}

// render rebuilds the window for the current state. Every state is handled
// explicitly; there is no fallback view.
func (ui *RootUI) render() {
	ui.window.SetTitle(ui.title())

	var content fyne.CanvasObject
	switch ui.state {
	case model.StateLoading:
		content = ui.loadingView()
	case model.StateLoaded:
		content = ui.loadedView()
	case model.StateErrored:
		content = ui.erroredView()
	}

	ui.window.SetContent(container.NewCenter(content))
}

// title returns the window title for the current state.
func (ui *RootUI) title() string {
	var subtitle string
	switch ui.state {
	case model.StateLoading:
		subtitle = SubtitleLoading
	case model.StateLoaded:
		subtitle = ui.team.Name
	case model.StateErrored:
		subtitle = SubtitleErrored
	}

	return subtitle + " - " + AppName
}

func (ui *RootUI) loadingView() fyne.CanvasObject {
	text := canvas.NewText(TextSearching, theme.Color(theme.ColorNameForeground))
	text.TextSize = HeadingTextSize
	return text
}

func (ui *RootUI) loadedView() fyne.CanvasObject {
	searchBtn := widget.NewButton(TextKeepSearching, ui.onSearchClick)

	return container.NewVBox(
		newTeamView(ui.team),
		container.NewHBox(layout.NewSpacer(), searchBtn),
	)
}

func (ui *RootUI) erroredView() fyne.CanvasObject {
	text := canvas.NewText(TextWentWrong, theme.Color(theme.ColorNameForeground))
	text.TextSize = HeadingTextSize

	tryAgainBtn := widget.NewButton(TextTryAgain, ui.onSearchClick)

	return container.NewVBox(
		text,
		container.NewHBox(layout.NewSpacer(), tryAgainBtn),
	)
}
