package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/pucknet/puck-scout/internal/model"
)

var numberColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// newTeamView renders a resolved team: the logo beside the team name, its
// number in gray, and the active-status line.
func newTeamView(team *model.Team) fyne.CanvasObject {
	logo := canvas.NewImageFromResource(team.Image)
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))

	name := canvas.NewText(team.Name, theme.Color(theme.ColorNameForeground))
	name.TextSize = NameTextSize

	number := canvas.NewText(team.DisplayNumber(), numberColor)
	number.TextSize = NumberTextSize

	active := canvas.NewText(team.ActiveLabel(), theme.Color(theme.ColorNameForeground))

	details := container.NewVBox(
		container.NewHBox(name, number),
		active,
	)

	return container.NewHBox(logo, container.NewCenter(details))
}
