package service

import (
	"context"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/store"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// Function-field mocks of the repository interfaces. Unset fields panic,
// which keeps a test honest about the calls it expects.

type mockUserRepository struct {
	CreateFunc            func(ctx context.Context, user models.User) (models.User, error)
	FindByIDFunc          func(ctx context.Context, id int64) (models.User, error)
	FindByEmailFunc       func(ctx context.Context, email string) (models.User, error)
	FindByFirstNameFunc   func(ctx context.Context, firstName string) (models.User, error)
	ListFunc              func(ctx context.Context) ([]models.User, error)
	DeleteByFirstNameFunc func(ctx context.Context, firstName string) (int64, error)
	DeleteAllFunc         func(ctx context.Context) (int64, error)
}

var _ store.UserRepository = (*mockUserRepository)(nil)

func (m *mockUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindByFirstName(ctx context.Context, firstName string) (models.User, error) {
	return m.FindByFirstNameFunc(ctx, firstName)
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	return m.ListFunc(ctx)
}

func (m *mockUserRepository) DeleteByFirstName(ctx context.Context, firstName string) (int64, error) {
	return m.DeleteByFirstNameFunc(ctx, firstName)
}

func (m *mockUserRepository) DeleteAll(ctx context.Context) (int64, error) {
	return m.DeleteAllFunc(ctx)
}

type mockPlanetRepository struct {
	CreateFunc       func(ctx context.Context, planet models.Planet) (models.Planet, error)
	FindByIDFunc     func(ctx context.Context, id int64) (models.Planet, error)
	FindByNameFunc   func(ctx context.Context, name string) (models.Planet, error)
	ListFunc         func(ctx context.Context) ([]models.Planet, error)
	UpdateFunc       func(ctx context.Context, id int64, update models.UpdatePlanetRequest) (int64, error)
	DeleteByNameFunc func(ctx context.Context, name string) (int64, error)
}

var _ store.PlanetRepository = (*mockPlanetRepository)(nil)

func (m *mockPlanetRepository) Create(ctx context.Context, planet models.Planet) (models.Planet, error) {
	return m.CreateFunc(ctx, planet)
}

func (m *mockPlanetRepository) FindByID(ctx context.Context, id int64) (models.Planet, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockPlanetRepository) FindByName(ctx context.Context, name string) (models.Planet, error) {
	return m.FindByNameFunc(ctx, name)
}

func (m *mockPlanetRepository) List(ctx context.Context) ([]models.Planet, error) {
	return m.ListFunc(ctx)
}

func (m *mockPlanetRepository) Update(ctx context.Context, id int64, update models.UpdatePlanetRequest) (int64, error) {
	return m.UpdateFunc(ctx, id, update)
}

func (m *mockPlanetRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	return m.DeleteByNameFunc(ctx, name)
}

type mockCharacterRepository struct {
	CreateFunc     func(ctx context.Context, character models.Character) (models.Character, error)
	FindByIDFunc   func(ctx context.Context, id int64) (models.Character, error)
	FindByNameFunc func(ctx context.Context, name string) (models.Character, error)
	ListFunc       func(ctx context.Context) ([]models.Character, error)
}

var _ store.CharacterRepository = (*mockCharacterRepository)(nil)

func (m *mockCharacterRepository) Create(ctx context.Context, character models.Character) (models.Character, error) {
	return m.CreateFunc(ctx, character)
}

func (m *mockCharacterRepository) FindByID(ctx context.Context, id int64) (models.Character, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCharacterRepository) FindByName(ctx context.Context, name string) (models.Character, error) {
	return m.FindByNameFunc(ctx, name)
}

func (m *mockCharacterRepository) List(ctx context.Context) ([]models.Character, error) {
	return m.ListFunc(ctx)
}

type mockStarshipRepository struct {
	CreateFunc     func(ctx context.Context, starship models.Starship) (models.Starship, error)
	FindByIDFunc   func(ctx context.Context, id int64) (models.Starship, error)
	FindByNameFunc func(ctx context.Context, name string) (models.Starship, error)
	ListFunc       func(ctx context.Context) ([]models.Starship, error)
}

var _ store.StarshipRepository = (*mockStarshipRepository)(nil)

func (m *mockStarshipRepository) Create(ctx context.Context, starship models.Starship) (models.Starship, error) {
	return m.CreateFunc(ctx, starship)
}

func (m *mockStarshipRepository) FindByID(ctx context.Context, id int64) (models.Starship, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockStarshipRepository) FindByName(ctx context.Context, name string) (models.Starship, error) {
	return m.FindByNameFunc(ctx, name)
}

func (m *mockStarshipRepository) List(ctx context.Context) ([]models.Starship, error) {
	return m.ListFunc(ctx)
}

type mockFavoriteRepository struct {
	CreateFunc                func(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	FindByIDFunc              func(ctx context.Context, id int64) (models.Favorite, error)
	FindByUserAndTargetFunc   func(ctx context.Context, userID int64, target models.FavoriteTarget) (models.Favorite, error)
	ListByUserFunc            func(ctx context.Context, userID int64) ([]models.Favorite, error)
	DeleteByIDFunc            func(ctx context.Context, id int64) (int64, error)
	DeleteByUserAndTargetFunc func(ctx context.Context, userID int64, target models.FavoriteTarget) (int64, error)
}

var _ store.FavoriteRepository = (*mockFavoriteRepository)(nil)

func (m *mockFavoriteRepository) Create(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	return m.CreateFunc(ctx, favorite)
}

func (m *mockFavoriteRepository) FindByID(ctx context.Context, id int64) (models.Favorite, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockFavoriteRepository) FindByUserAndTarget(ctx context.Context, userID int64, target models.FavoriteTarget) (models.Favorite, error) {
	return m.FindByUserAndTargetFunc(ctx, userID, target)
}

func (m *mockFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *mockFavoriteRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	return m.DeleteByIDFunc(ctx, id)
}

func (m *mockFavoriteRepository) DeleteByUserAndTarget(ctx context.Context, userID int64, target models.FavoriteTarget) (int64, error) {
	return m.DeleteByUserAndTargetFunc(ctx, userID, target)
}
