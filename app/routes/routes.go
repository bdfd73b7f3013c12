package routes

import (
	"net/http"

	"quill/app/auth"
	"quill/app/controllers"
	"quill/app/middleware"
	"quill/app/repositories"
	"quill/app/services"
	"quill/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services, and controllers onto a router
// backed by the given Badger DB.
func SetupRoutes(db *badger.DB, cfg *config.Config) (*mux.Router, error) {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS(cfg.FrontendOrigin))

	tokens := auth.NewTokenService(cfg.Secret, cfg.TokenTTL)

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	assets, err := services.NewAssetService(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}
	userService := services.NewUserService(userRepo, tokens)
	postService := services.NewPostService(postRepo, userRepo)

	authController := controllers.NewAuthController(userService)
	postController := controllers.NewPostController(postService, assets)

	requireAuth := middleware.RequireAuth(tokens)

	// Auth endpoints
	router.HandleFunc("/register", authController.Register).Methods("POST", "OPTIONS")
	router.HandleFunc("/login", authController.Login).Methods("POST", "OPTIONS")
	router.HandleFunc("/logout", authController.Logout).Methods("POST", "OPTIONS")

	// Post endpoints; create and update verify the session cookie
	router.Handle("/post", requireAuth(http.HandlerFunc(postController.Create))).Methods("POST", "OPTIONS")
	router.HandleFunc("/posts", postController.Index).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods("GET")
	router.Handle("/posts/{id:[0-9]+}", requireAuth(http.HandlerFunc(postController.Update))).Methods("PUT", "OPTIONS")
	router.HandleFunc("/posts/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Serve uploaded cover assets
	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	return router, nil
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
