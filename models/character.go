package models

// Character is a catalog row uniquely identified by Name on the create path.
// The API defines no update or delete endpoint for characters.
type Character struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Height    int64  `json:"height"`
	Mass      int64  `json:"mass"`
	HairColor string `json:"hair_color"`
	EyeColor  string `json:"eye_color"`
	Gender    string `json:"gender"`
	BirthYear string `json:"birth_year"`
}

// TableName returns the name of the database table
// associated with the Character model.
func (c Character) TableName() string {
	return "characters"
}

// RecordID implements [CatalogRecord].
func (c Character) RecordID() int64 {
	return c.ID
}
