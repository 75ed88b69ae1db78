package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pucknet/puck-scout/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	statsURLEntry *widget.Entry
	imageURLEntry *widget.Entry
	timeoutEntry  *widget.Entry
	cacheDirEntry *widget.Entry
	debugLogCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.statsURLEntry = widget.NewEntry()
	sd.statsURLEntry.SetPlaceHolder(config.DefaultStatsBaseURL)

	sd.imageURLEntry = widget.NewEntry()
	sd.imageURLEntry.SetPlaceHolder(config.DefaultImageBaseURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("1-120 seconds")

	sd.cacheDirEntry = widget.NewEntry()
	sd.cacheDirEntry.SetPlaceHolder("Sprite cache directory")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	cacheDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.cacheDirEntry)

	sd.debugLogCheck = widget.NewCheck("Enable debug logging", nil)

	form := container.NewVBox(
		widget.NewLabel("Endpoints"),
		widget.NewSeparator(),

		widget.NewLabel("Stats API base URL:"),
		sd.statsURLEntry,

		widget.NewLabel("Image host base URL:"),
		sd.imageURLEntry,

		widget.NewLabel("Request timeout (seconds):"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel("Local"),
		widget.NewSeparator(),

		widget.NewLabel("Sprite cache directory:"),
		cacheDirRow,

		sd.debugLogCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 440))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.statsURLEntry.SetText(sd.settings.GetStatsBaseURL())
	sd.imageURLEntry.SetText(sd.settings.GetImageBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetHTTPTimeout().Seconds())))
	sd.cacheDirEntry.SetText(sd.settings.GetSpriteCacheDir())
	sd.debugLogCheck.SetChecked(sd.settings.GetDebugLogging())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.cacheDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings. New endpoints apply on next launch.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.statsURLEntry.Text != "" {
		sd.settings.SetStatsBaseURL(sd.statsURLEntry.Text)
	}

	if sd.imageURLEntry.Text != "" {
		sd.settings.SetImageBaseURL(sd.imageURLEntry.Text)
	}

	if sd.timeoutEntry.Text != "" {
		if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
			sd.settings.SetHTTPTimeoutSec(seconds)
		}
	}

	if sd.cacheDirEntry.Text != "" {
		sd.settings.SetSpriteCacheDir(sd.cacheDirEntry.Text)
	}

	sd.settings.SetDebugLogging(sd.debugLogCheck.Checked)

	dialog.ShowInformation("Settings", "Settings apply on next launch.", sd.window)
}
