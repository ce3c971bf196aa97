package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/service"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/utils"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; calling an
// unset field panics, which flags unexpected service calls.
type mockAuthService struct {
	signupFn      func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, email string) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	checkTokenFn  func(ctx context.Context, email string) (bool, error)
}

func (m *mockAuthService) Signup(ctx context.Context, user models.User) (models.User, error) {
	return m.signupFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, email string) (models.Token, error) {
	return m.createTokenFn(ctx, email)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CheckToken(ctx context.Context, email string) (bool, error) {
	return m.checkTokenFn(ctx, email)
}

// mockCatalogService implements service.CatalogService for unit tests.
type mockCatalogService struct {
	listUsersFn        func(ctx context.Context) ([]models.User, error)
	getUserFn          func(ctx context.Context, id int64) (models.User, error)
	createUserFn       func(ctx context.Context, user models.User) (models.User, error)
	updateUserFn       func(ctx context.Context, update models.UpdateUserRequest) error
	deleteUserByNameFn func(ctx context.Context, name string) (int64, error)
	deleteAllUsersFn   func(ctx context.Context) (int64, error)

	listPlanetsFn        func(ctx context.Context) ([]models.Planet, error)
	getPlanetFn          func(ctx context.Context, id int64) (models.Planet, error)
	createPlanetFn       func(ctx context.Context, planet models.Planet) (models.Planet, error)
	updatePlanetFn       func(ctx context.Context, id int64, update models.UpdatePlanetRequest) error
	deletePlanetByNameFn func(ctx context.Context, name string) (int64, error)

	listCharactersFn  func(ctx context.Context) ([]models.Character, error)
	getCharacterFn    func(ctx context.Context, id int64) (models.Character, error)
	createCharacterFn func(ctx context.Context, character models.Character) (models.Character, error)

	listStarshipsFn  func(ctx context.Context) ([]models.Starship, error)
	getStarshipFn    func(ctx context.Context, id int64) (models.Starship, error)
	createStarshipFn func(ctx context.Context, request models.CreateStarshipRequest) (models.Starship, error)
}

func (m *mockCatalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockCatalogService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockCatalogService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockCatalogService) UpdateUser(ctx context.Context, update models.UpdateUserRequest) error {
	return m.updateUserFn(ctx, update)
}

func (m *mockCatalogService) DeleteUserByName(ctx context.Context, name string) (int64, error) {
	return m.deleteUserByNameFn(ctx, name)
}

func (m *mockCatalogService) DeleteAllUsers(ctx context.Context) (int64, error) {
	return m.deleteAllUsersFn(ctx)
}

func (m *mockCatalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return m.listPlanetsFn(ctx)
}

func (m *mockCatalogService) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	return m.getPlanetFn(ctx, id)
}

func (m *mockCatalogService) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	return m.createPlanetFn(ctx, planet)
}

func (m *mockCatalogService) UpdatePlanet(ctx context.Context, id int64, update models.UpdatePlanetRequest) error {
	return m.updatePlanetFn(ctx, id, update)
}

func (m *mockCatalogService) DeletePlanetByName(ctx context.Context, name string) (int64, error) {
	return m.deletePlanetByNameFn(ctx, name)
}

func (m *mockCatalogService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return m.listCharactersFn(ctx)
}

func (m *mockCatalogService) GetCharacter(ctx context.Context, id int64) (models.Character, error) {
	return m.getCharacterFn(ctx, id)
}

func (m *mockCatalogService) CreateCharacter(ctx context.Context, character models.Character) (models.Character, error) {
	return m.createCharacterFn(ctx, character)
}

func (m *mockCatalogService) ListStarships(ctx context.Context) ([]models.Starship, error) {
	return m.listStarshipsFn(ctx)
}

func (m *mockCatalogService) GetStarship(ctx context.Context, id int64) (models.Starship, error) {
	return m.getStarshipFn(ctx, id)
}

func (m *mockCatalogService) CreateStarship(ctx context.Context, request models.CreateStarshipRequest) (models.Starship, error) {
	return m.createStarshipFn(ctx, request)
}

// mockFavoriteService implements service.FavoriteService for unit tests.
type mockFavoriteService struct {
	listForUserFn    func(ctx context.Context, email string) ([]models.Favorite, error)
	addFn            func(ctx context.Context, email string, target models.FavoriteTarget) (models.CatalogRecord, error)
	removeByTargetFn func(ctx context.Context, userID int64, target models.FavoriteTarget) error
	removeByIDFn     func(ctx context.Context, email string, favoriteID int64) error
}

func (m *mockFavoriteService) ListForUser(ctx context.Context, email string) ([]models.Favorite, error) {
	return m.listForUserFn(ctx, email)
}

func (m *mockFavoriteService) Add(ctx context.Context, email string, target models.FavoriteTarget) (models.CatalogRecord, error) {
	return m.addFn(ctx, email, target)
}

func (m *mockFavoriteService) RemoveByTarget(ctx context.Context, userID int64, target models.FavoriteTarget) error {
	return m.removeByTargetFn(ctx, userID, target)
}

func (m *mockFavoriteService) RemoveByID(ctx context.Context, email string, favoriteID int64) error {
	return m.removeByIDFn(ctx, email, favoriteID)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the provided services. Fields of
// service.Services left nil are fine as long as the handler under test does
// not touch them.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// withURLParam injects a chi route parameter into the request context, so
// handlers can be exercised without mounting the full router. Repeated calls
// accumulate parameters on the same route context.
func withURLParam(r *http.Request, name, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(name, value)
	return r
}

// withIdentity places an authenticated email into the request context the
// same way the auth middleware does.
func withIdentity(r *http.Request, email string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.EmailCtxKey, email))
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeBody unmarshals the recorded response body into out.
func decodeBody(t *testing.T, body []byte, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, out))
}
