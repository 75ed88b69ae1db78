package model

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// TeamRecord is a single entry from the league team directory.
type TeamRecord struct {
	ID     uint
	Name   string
	Active bool
}

// Team is a fully resolved search result: directory data plus the
// team's logo loaded from the local sprite cache.
type Team struct {
	Number    uint
	Name      string
	Active    bool
	Image     fyne.Resource // vector logo, backed by ImagePath
	ImagePath string        // cached SVG on disk
}

// NewTeam assembles a Team from a directory record and a resolved sprite path.
func NewTeam(rec TeamRecord, image fyne.Resource, imagePath string) *Team {
	return &Team{
		Number:    rec.ID,
		Name:      rec.Name,
		Active:    rec.Active,
		Image:     image,
		ImagePath: imagePath,
	}
}

// DisplayNumber returns the jersey-style number label shown next to the name.
func (t *Team) DisplayNumber() string {
	return fmt.Sprintf("#%d", t.Number)
}

// ActiveLabel returns the active-status line rendered under the team name.
func (t *Team) ActiveLabel() string {
	return fmt.Sprintf("Team is active? %t", t.Active)
}
