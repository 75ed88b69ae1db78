package stats

import "github.com/pucknet/puck-scout/internal/model"

func mapTeam(t teamResponse) model.TeamRecord {
	return model.TeamRecord{
		ID:     t.ID,
		Name:   t.Name,
		Active: t.Active,
	}
}

func mapTeams(payload teamsResponse) []model.TeamRecord {
	records := make([]model.TeamRecord, 0, len(payload.Teams))
	for _, t := range payload.Teams {
		records = append(records, mapTeam(t))
	}
	return records
}
