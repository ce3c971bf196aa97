package models

// Planet is a catalog row uniquely identified by Name on the create and
// delete paths. Only Name, Climate and Population are mutable after creation;
// the remaining columns are accepted at create time and left immutable.
type Planet struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Climate        string `json:"climate"`
	Population     int64  `json:"population"`
	OrbitalPeriod  int64  `json:"orbital_period"`
	RotationPeriod int64  `json:"rotation_period"`
	Diameter       int64  `json:"diameter"`
}

// TableName returns the name of the database table
// associated with the Planet model.
func (p Planet) TableName() string {
	return "planets"
}

// RecordID implements [CatalogRecord].
func (p Planet) RecordID() int64 {
	return p.ID
}
