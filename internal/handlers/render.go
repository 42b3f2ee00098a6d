package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/jwt"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/middlewares"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"index",
	"login",
	"register",
	"create_listing",
	"home",
	"listing",
	"close",
	"error",
}

// PageData is handed to every page template. Pages read only the fields
// they need.
type PageData struct {
	User       *jwt.Claims
	Message    string
	Heading    string
	Next       string
	Categories []string
	Listings   []models.ListingDB
	Listing    *models.ListingPage
	IsOwner    bool
	Home       *models.UserHome
	Closed     *models.CloseResult
	Form       url.Values
	Status     int
}

// Renderer executes the embedded page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the layout.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"pathEscape":  url.PathEscape,
		"listingPath": listingPath,
		"deref": func(p *int64) int64 {
			if p == nil {
				return 0
			}
			return *p
		},
		"formatTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").
			Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the page with the given status. The page is executed into a
// buffer first so that a template error never leaves half a page behind.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data PageData) {
	t, ok := rd.pages[page]
	if !ok {
		logger.Log.Errorw("unknown page template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data.User = middlewares.ClaimsFromContext(r.Context())
	if data.User != nil && data.Listing != nil {
		data.IsOwner = data.User.UserID == data.Listing.Listing.SellerID
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Log.Errorw("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Error renders the error page.
func (rd *Renderer) Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	rd.Render(w, r, status, "error", PageData{Status: status, Message: message})
}

// ServerError logs err and renders a generic 500 page.
func (rd *Renderer) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"err", err,
	)
	rd.Error(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
