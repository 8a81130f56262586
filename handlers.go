package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"time"
)

type creds struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// userResponse is the public view of an identity. The password hash never
// leaves the server.
type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, FullName: u.FullName, CreatedAt: u.CreatedAt}
}

func (a *App) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var c creds
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if c.Email == "" || c.Password == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Email and password are required")
		return
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "INVALID_EMAIL", "Email address is not valid")
		return
	}

	hashed, err := hashPassword(c.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process password")
		return
	}
	user, err := a.Store.CreateUser(c.Email, hashed, c.FullName)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "USER_EXISTS", "User with this email already exists")
			return
		}
		log.Printf("register: create user: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create user")
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (a *App) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var c creds
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	user, err := authenticate(c.Email, c.Password, a.Store.GetUserByEmail)
	if err != nil {
		log.Printf("login: lookup: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify credentials")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password")
		return
	}

	token, err := a.tokens.issueSession(user.Email)
	if err != nil {
		log.Printf("login: sign token: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   accessTokenCookie,
		Value:  token,
		Path:   "/",
		Secure: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// HandleMe returns the caller's identity. RequireUser has already resolved
// the token by the time this runs.
func (a *App) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
