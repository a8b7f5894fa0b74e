package httpserver

import (
	"net/http"
	"strings"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

// GET /api/products?q=&category=
func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryAll
	}
	list, loading, err := s.catalog.Filter(r.URL.Query().Get("q"), category)
	resp := map[string]any{
		"products": list,
		"loading":  loading,
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	writeJSON(w, 200, resp)
}

// GET /api/products/{id}
func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" {
		writeError(w, domain.ErrNotFound)
		return
	}
	p, err := s.catalog.FindProduct(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{
		"product": p,
		"reviews": domain.PlaceholderReviews(p.ID),
	})
}

// GET /api/categories
func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, 200, map[string]any{"categories": s.catalog.Categories()})
}

// GET /api/site-info
func (s *Server) apiSiteInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, 200, s.catalog.SiteInfo())
}
