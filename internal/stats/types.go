package stats

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
