package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init wires the full route table. chi resolves static segments before URL
// parameters, so the authenticated /user/favorites route coexists with the
// public /user/{id} route, and /favorites/planet/{id} with /favorites/{id}.
//
// The two favorite-deletion routes outside the token group are deliberately
// public: the legacy API identifies the owning user by a caller-supplied id
// there, and that contract is kept as-is.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/all_users", h.getAllUsers)
		r.Get("/all_planets", h.getAllPlanets)
		r.Get("/all_characters", h.getAllCharacters)
		r.Get("/all_starships", h.getAllStarships)

		r.Get("/user/{id}", h.getOneUser)
		r.Get("/planets/{id}", h.getOnePlanet)
		r.Get("/characters/{id}", h.getOneCharacter)
		r.Get("/starships/{id}", h.getOneStarship)

		r.Post("/user", h.addNewUser)
		r.Post("/planet", h.addNewPlanet)
		r.Post("/character", h.addNewCharacter)
		r.Post("/starship", h.addNewStarship)

		r.Put("/user", h.updateUser)
		r.Put("/planet/{id}", h.updatePlanet)

		r.Delete("/user", h.deleteUser)
		r.Delete("/users", h.deleteAllUsers)
		r.Delete("/planet", h.deletePlanet)

		r.Delete("/favorites/planet/{id}", h.deleteFavoritePlanet)
		r.Delete("/favorites/character/{user_id}/{id}", h.deleteFavoriteCharacter)

		r.Post("/login", h.login)
		r.Post("/signup", h.signup)

		r.Get("/version", h.getServerVersion)
	})

	// routes behind the bearer-token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/user/favorites", h.getUserFavorites)
		r.Get("/favorites", h.getFavoritesProtected)
		r.Get("/valid-token", h.validToken)

		r.Post("/favorites/planet/{id}", h.addFavoritePlanet)
		r.Post("/favorites/character/{id}", h.addFavoriteCharacter)
		r.Post("/favorites/starship/{id}", h.addFavoriteStarship)

		r.Delete("/favorites/{id}", h.deleteFavoriteByID)
	})

	return router
}
