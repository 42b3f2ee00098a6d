package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginPageHandler returns an HTTP handler that shows the login form.
// @Summary Login form
// @Tags auth
// @Produce html
// @Param next query string false "Local path to return to after login"
// @Success 200 {string} string "Login page"
// @Router /login [get]
func NewLoginPageHandler(rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusOK, "login", PageData{Next: r.URL.Query().Get("next")})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates the user and stores the session token in a cookie.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param next formData string false "Local path to return to"
// @Success 303 {string} string "Redirect to next or the index page"
// @Failure 400 {string} string "Login page with an error message"
// @Router /login [post]
func NewLoginHandler(svc Loginer, rd *Renderer, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rd.Render(w, r, http.StatusBadRequest, "login", PageData{Message: "Invalid form submission."})
			return
		}

		next := r.PostForm.Get("next")
		token, err := svc.Login(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				rd.Render(w, r, http.StatusBadRequest, "login", PageData{
					Message: "Invalid username and/or password.",
					Next:    next,
					Form:    url.Values{"username": {r.PostForm.Get("username")}},
				})
				return
			}
			rd.ServerError(w, r, err)
			return
		}

		cookie.set(w, token)
		http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
	}
}
