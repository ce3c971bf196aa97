package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TargetKind discriminates the catalog table a favorite points at.
type TargetKind string

const (
	TargetPlanet    TargetKind = "planet"
	TargetCharacter TargetKind = "character"
	TargetStarship  TargetKind = "starship"
)

// Column returns the favorites-table column holding the foreign key for this
// target kind.
func (k TargetKind) Column() (string, error) {
	switch k {
	case TargetPlanet:
		return "planets_id", nil
	case TargetCharacter:
		return "characters_id", nil
	case TargetStarship:
		return "starships_id", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTargetKind, string(k))
	}
}

// ErrUnknownTargetKind is returned when a TargetKind value is none of
// planet, character or starship.
var ErrUnknownTargetKind = errors.New("unknown favorite target kind")

// ErrNoFavoriteTarget is returned when a favorite row carries no target
// foreign key, or more than one. The schema forbids both shapes with a CHECK
// constraint; this error guards the decoding side.
var ErrNoFavoriteTarget = errors.New("favorite must reference exactly one catalog item")

// FavoriteTarget identifies exactly one catalog item. The legacy schema keeps
// three nullable foreign-key columns; modeling the pair (kind, id) as a
// tagged value makes "exactly one target" structural instead of conventional.
type FavoriteTarget struct {
	Kind TargetKind
	ID   int64
}

// Favorite marks one catalog item as a favorite of one user.
type Favorite struct {
	ID     int64
	UserID int64
	Target FavoriteTarget
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}

// favoriteJSON is the legacy wire shape of a favorite row: three nullable
// foreign keys, of which exactly one is set. UserID is not serialized, which
// mirrors the original contract.
type favoriteJSON struct {
	ID           int64  `json:"id"`
	CharactersID *int64 `json:"characters_id"`
	PlanetsID    *int64 `json:"planets_id"`
	StarshipsID  *int64 `json:"starships_id"`
}

// MarshalJSON renders the tagged target in the legacy three-column shape.
func (f Favorite) MarshalJSON() ([]byte, error) {
	out := favoriteJSON{ID: f.ID}

	id := f.Target.ID
	switch f.Target.Kind {
	case TargetPlanet:
		out.PlanetsID = &id
	case TargetCharacter:
		out.CharactersID = &id
	case TargetStarship:
		out.StarshipsID = &id
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTargetKind, string(f.Target.Kind))
	}

	return json.Marshal(out)
}

// UnmarshalJSON accepts the legacy three-column shape and rejects payloads
// that set zero or multiple targets.
func (f *Favorite) UnmarshalJSON(data []byte) error {
	var in favoriteJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	target, err := TargetFromColumns(in.PlanetsID, in.CharactersID, in.StarshipsID)
	if err != nil {
		return err
	}

	f.ID = in.ID
	f.Target = target
	return nil
}

// TargetFromColumns converts the nullable three-column representation into a
// tagged target. Exactly one of the arguments must be non-nil.
func TargetFromColumns(planetsID, charactersID, starshipsID *int64) (FavoriteTarget, error) {
	var target FavoriteTarget
	set := 0

	if planetsID != nil {
		target = FavoriteTarget{Kind: TargetPlanet, ID: *planetsID}
		set++
	}
	if charactersID != nil {
		target = FavoriteTarget{Kind: TargetCharacter, ID: *charactersID}
		set++
	}
	if starshipsID != nil {
		target = FavoriteTarget{Kind: TargetStarship, ID: *starshipsID}
		set++
	}

	if set != 1 {
		return FavoriteTarget{}, ErrNoFavoriteTarget
	}

	return target, nil
}
