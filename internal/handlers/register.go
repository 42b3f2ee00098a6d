package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password, confirmation string) (string, error)
}

// NewRegisterPageHandler returns an HTTP handler that shows the registration form.
// @Summary Registration form
// @Tags auth
// @Produce html
// @Success 200 {string} string "Registration page"
// @Router /register [get]
func NewRegisterPageHandler(rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "register", PageData{})
	}
}

// NewRegisterHandler returns an HTTP handler for user registration. A
// successful registration logs the user in.
// @Summary Register a new user
// @Description Creates a new user account and starts a session. Passwords must match and usernames are unique.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param email formData string false "Email"
// @Param password formData string true "Password"
// @Param confirmation formData string true "Password confirmation"
// @Success 303 {string} string "Redirect to the index page"
// @Failure 400 {string} string "Registration page with an error message"
// @Failure 500 {string} string "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, rd *Renderer, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rd.Render(w, r, http.StatusBadRequest, "register", PageData{Message: "Invalid form submission."})
			return
		}

		token, err := svc.Register(r.Context(),
			r.PostForm.Get("username"),
			r.PostForm.Get("email"),
			r.PostForm.Get("password"),
			r.PostForm.Get("confirmation"),
		)
		if err != nil {
			form := url.Values{
				"username": {r.PostForm.Get("username")},
				"email":    {r.PostForm.Get("email")},
			}
			switch {
			case errors.Is(err, services.ErrPasswordMismatch):
				rd.Render(w, r, http.StatusBadRequest, "register", PageData{Message: "Passwords must match.", Form: form})
			case errors.Is(err, services.ErrUsernameTaken):
				rd.Render(w, r, http.StatusBadRequest, "register", PageData{Message: "Username already taken.", Form: form})
			case errors.Is(err, services.ErrInvalidRegistration):
				rd.Render(w, r, http.StatusBadRequest, "register", PageData{Message: "Username and password are required.", Form: form})
			default:
				rd.ServerError(w, r, err)
			}
			return
		}

		cookie.set(w, token)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
