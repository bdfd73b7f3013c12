package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"quill/app/middleware"
	"quill/app/repositories"
	"quill/app/services"
)

// AuthController handles registration, login, and logout
type AuthController struct {
	userService *services.UserService
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /register
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := ac.userService.Register(creds.Username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			sendError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repositories.ErrDuplicate):
			sendError(w, "username already taken", http.StatusConflict)
		default:
			log.Printf("register failed: %v", err)
			sendError(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	sendJSON(w, http.StatusOK, user.Doc())
}

// Login handles POST /login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := ac.userService.Login(creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendError(w, "wrong username or password", http.StatusBadRequest)
			return
		}
		log.Printf("login failed: %v", err)
		sendError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, sessionCookie(token))
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Logout handles POST /logout. Only the client cookie is cleared; an issued
// token stays valid until its natural expiry.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := sessionCookie("")
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
	sendJSON(w, http.StatusOK, "ok")
}

// sessionCookie builds the token cookie with attributes that allow
// credentialed cross-origin use from the trusted front-end origin.
func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	}
}
