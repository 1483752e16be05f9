package routes

import (
	"net/http"
	"selfrental/internal/handlers"
	"selfrental/internal/middleware"
	"selfrental/internal/services"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	tokens *services.TokenService,
	pageHandler *handlers.PageHandler,
	authHandler *handlers.AuthHandler,
	passwordHandler *handlers.PasswordHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	// --- Публичные маршруты ---
	router.HandleFunc("/", pageHandler.Index).Methods("GET")
	router.HandleFunc("/login", pageHandler.LoginForm).Methods("GET")
	router.HandleFunc("/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/register", pageHandler.RegisterForm).Methods("GET")
	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("GET")
	router.HandleFunc("/about", pageHandler.About).Methods("GET")
	router.HandleFunc("/contact", pageHandler.Contact).Methods("GET")

	router.HandleFunc("/forgot-password", passwordHandler.ForgotForm).Methods("GET")
	router.HandleFunc("/forgot-password", passwordHandler.Forgot).Methods("POST")
	router.HandleFunc("/reset-password", passwordHandler.ResetForm).Methods("GET")
	router.HandleFunc("/reset-password", passwordHandler.Reset).Methods("POST")

	// --- Под сессионной кукой ---
	router.Handle("/home", middleware.SessionAuth(tokens, http.HandlerFunc(authHandler.Home))).Methods("GET")
}
