package store

import (
	"context"

	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// UserRepository persists and retrieves user accounts. The generic catalog
// path keys lookups and deletes on first_name; the identity path keys on
// email. Both keys are exposed so the service layer can preserve the two
// entry-point contracts separately.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByFirstName(ctx context.Context, firstName string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	DeleteByFirstName(ctx context.Context, firstName string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// PlanetRepository persists and retrieves planets. Name is the natural key
// of the create and delete paths; updates touch only the mutable columns.
type PlanetRepository interface {
	Create(ctx context.Context, planet models.Planet) (models.Planet, error)
	FindByID(ctx context.Context, id int64) (models.Planet, error)
	FindByName(ctx context.Context, name string) (models.Planet, error)
	List(ctx context.Context) ([]models.Planet, error)
	Update(ctx context.Context, id int64, update models.UpdatePlanetRequest) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// CharacterRepository persists and retrieves characters. The API defines no
// update or delete operations for them.
type CharacterRepository interface {
	Create(ctx context.Context, character models.Character) (models.Character, error)
	FindByID(ctx context.Context, id int64) (models.Character, error)
	FindByName(ctx context.Context, name string) (models.Character, error)
	List(ctx context.Context) ([]models.Character, error)
}

// StarshipRepository persists and retrieves starships.
type StarshipRepository interface {
	Create(ctx context.Context, starship models.Starship) (models.Starship, error)
	FindByID(ctx context.Context, id int64) (models.Starship, error)
	FindByName(ctx context.Context, name string) (models.Starship, error)
	List(ctx context.Context) ([]models.Starship, error)
}

// FavoriteRepository persists the user-to-catalog-item join rows. Targets are
// addressed through the tagged [models.FavoriteTarget]; the repository maps
// the tag onto the legacy three-column layout.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	FindByID(ctx context.Context, id int64) (models.Favorite, error)
	FindByUserAndTarget(ctx context.Context, userID int64, target models.FavoriteTarget) (models.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByUserAndTarget(ctx context.Context, userID int64, target models.FavoriteTarget) (int64, error)
}
