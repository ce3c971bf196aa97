package models

// Starship is a catalog row. The record stores a Name column, but the create
// payload historically carries the value under "model" (see
// [CreateStarshipRequest]); the two are treated as the same attribute.
type Starship struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Manufacturer  string `json:"manufacturer"`
	Crew          int64  `json:"crew"`
	Passengers    int64  `json:"passengers"`
	Consumables   string `json:"consumables"`
	CostInCredits int64  `json:"cost_in_credits"`
}

// TableName returns the name of the database table
// associated with the Starship model.
func (s Starship) TableName() string {
	return "starships"
}

// RecordID implements [CatalogRecord].
func (s Starship) RecordID() int64 {
	return s.ID
}
