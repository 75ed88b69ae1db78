package model

import "testing"

func TestNewTeam(t *testing.T) {
	rec := TeamRecord{ID: 12, Name: "Silver Foxes", Active: true}

	team := NewTeam(rec, nil, "/tmp/12.svg")

	if team.Number != 12 {
		t.Errorf("Expected number 12, got %d", team.Number)
	}
	if team.Name != "Silver Foxes" {
		t.Errorf("Expected name 'Silver Foxes', got '%s'", team.Name)
	}
	if !team.Active {
		t.Error("Expected team to be active")
	}
	if team.ImagePath != "/tmp/12.svg" {
		t.Errorf("Expected image path '/tmp/12.svg', got '%s'", team.ImagePath)
	}
}

func TestTeam_DisplayNumber(t *testing.T) {
	team := &Team{Number: 7}

	if got := team.DisplayNumber(); got != "#7" {
		t.Errorf("Expected display number '#7', got '%s'", got)
	}
}

func TestTeam_ActiveLabel(t *testing.T) {
	tests := []struct {
		active   bool
		expected string
	}{
		{true, "Team is active? true"},
		{false, "Team is active? false"},
	}

	for _, test := range tests {
		team := &Team{Active: test.active}
		if got := team.ActiveLabel(); got != test.expected {
			t.Errorf("ActiveLabel() = '%s', expected '%s'", got, test.expected)
		}
	}
}
