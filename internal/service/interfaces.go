package service

import (
	"context"

	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// AuthService owns the identity lifecycle: account creation through signup,
// credential verification, and JWT issue/parse. The identity bound into every
// token is the user's email.
type AuthService interface {
	Signup(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, email string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CheckToken(ctx context.Context, email string) (bool, error)
}

// CatalogService implements the generic catalog operations: list, get by id,
// create with a natural-key pre-check, the two update paths, and the
// delete-by-name paths. Each entity keeps the uniqueness key of its own entry
// point: users are keyed by first_name here (email belongs to the signup
// path), planets and characters by name, starships by the "model" payload
// field matched against the stored name column.
type CatalogService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, update models.UpdateUserRequest) error
	DeleteUserByName(ctx context.Context, name string) (int64, error)
	DeleteAllUsers(ctx context.Context) (int64, error)

	ListPlanets(ctx context.Context) ([]models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (models.Planet, error)
	CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error)
	UpdatePlanet(ctx context.Context, id int64, update models.UpdatePlanetRequest) error
	DeletePlanetByName(ctx context.Context, name string) (int64, error)

	ListCharacters(ctx context.Context) ([]models.Character, error)
	GetCharacter(ctx context.Context, id int64) (models.Character, error)
	CreateCharacter(ctx context.Context, character models.Character) (models.Character, error)

	ListStarships(ctx context.Context) ([]models.Starship, error)
	GetStarship(ctx context.Context, id int64) (models.Starship, error)
	CreateStarship(ctx context.Context, request models.CreateStarshipRequest) (models.Starship, error)
}

// FavoriteService owns the user-to-catalog-item favorite links. Add and
// ListForUser resolve the owning user from the token identity (email); the
// two RemoveByTarget entry points identify the user by a caller-supplied id
// with no identity check, which reproduces the legacy authorization gap.
type FavoriteService interface {
	ListForUser(ctx context.Context, email string) ([]models.Favorite, error)
	Add(ctx context.Context, email string, target models.FavoriteTarget) (models.CatalogRecord, error)
	RemoveByTarget(ctx context.Context, userID int64, target models.FavoriteTarget) error
	RemoveByID(ctx context.Context, email string, favoriteID int64) error
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
