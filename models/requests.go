package models

// CreateStarshipRequest is the payload of POST /starship. The legacy contract
// carries the ship's designation under "model" even though the stored column
// is "name"; the service treats "model" as the wire alias of the name column.
type CreateStarshipRequest struct {
	Model         string `json:"model"`
	Manufacturer  string `json:"manufacturer"`
	Crew          int64  `json:"crew"`
	Passengers    int64  `json:"passengers"`
	Consumables   string `json:"consumables"`
	CostInCredits int64  `json:"cost_in_credits"`
}

// UpdateUserRequest is the payload of PUT /user. The lookup is keyed on a
// display name users never had, so the update can never match; the shape is
// kept for contract compatibility.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePlanetRequest is the payload of PUT /planet/{id}. Only these three
// attributes are mutable post-creation.
type UpdatePlanetRequest struct {
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Population int64  `json:"population"`
}

// DeleteByNameRequest is the payload of DELETE /user and DELETE /planet.
type DeleteByNameRequest struct {
	Name string `json:"name"`
}

// DeleteFavoritePlanetRequest is the payload of DELETE /favorites/planet/{id}.
// The owning user is taken from the body, not from a token — a known
// authorization gap of the legacy contract, preserved as documented.
type DeleteFavoritePlanetRequest struct {
	UserID    int64 `json:"user_id"`
	PlanetsID int64 `json:"planets_id"`
}

// LoginRequest is the payload of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
