package models

// User represents an account entity used both as a catalog row and as the
// identity for token-based authentication.
//
// The legacy API serializes every column, password included. That is a
// documented weakness of the contract, not an invitation to rely on it.
type User struct {
	// ID is the store-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// FirstName doubles as the natural key of the generic create and
	// delete-by-name paths. The signup path keys on Email instead.
	FirstName string `json:"first_name"`

	LastName string `json:"last_name"`

	// Email is unique across all users and is the identity bound into
	// issued tokens.
	Email string `json:"email"`

	// Password is an opaque string compared by equality at login.
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RecordID implements [CatalogRecord].
func (u User) RecordID() int64 {
	return u.ID
}
