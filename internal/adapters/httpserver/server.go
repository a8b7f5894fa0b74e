package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/mrbebidas/distribuidora/internal/adapters/ai"
	"github.com/mrbebidas/distribuidora/internal/domain"
	"github.com/mrbebidas/distribuidora/internal/usecase"
)

type Server struct {
	mux     *http.ServeMux
	catalog *usecase.CatalogUC
	admin   *usecase.AdminUC
	auth    *usecase.AuthUC
	flows   *ai.Flows

	oauthCfg  *oauth2.Config
	jwtSecret []byte
	baseURL   string
}

func New(catalog *usecase.CatalogUC, admin *usecase.AdminUC, auth *usecase.AuthUC, flows *ai.Flows, oauthCfg *oauth2.Config, jwtSecret []byte, baseURL string) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		catalog:   catalog,
		admin:     admin,
		auth:      auth,
		flows:     flows,
		oauthCfg:  oauthCfg,
		jwtSecret: jwtSecret,
		baseURL:   baseURL,
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/", s.apiProductByID)
	s.mux.HandleFunc("/api/categories", s.apiCategories)
	s.mux.HandleFunc("/api/site-info", s.apiSiteInfo)

	s.mux.HandleFunc("/api/login", s.apiLogin)
	s.mux.HandleFunc("/auth/google", s.handleGoogleLogin)
	s.mux.HandleFunc("/auth/google/callback", s.handleGoogleCallback)

	s.mux.HandleFunc("/api/admin/products", s.apiAdminProducts)
	s.mux.HandleFunc("/api/admin/products/", s.apiAdminProductByID)
	s.mux.HandleFunc("/api/admin/categories", s.apiAdminCategories)
	s.mux.HandleFunc("/api/admin/categories/", s.apiAdminCategoryByID)
	s.mux.HandleFunc("/api/admin/site-info", s.apiAdminSiteInfo)
	s.mux.HandleFunc("/api/admin/refresh", s.apiAdminRefresh)
	s.mux.HandleFunc("/api/admin/export", s.apiAdminExport)

	s.mux.HandleFunc("/api/ai/describe", s.apiAIDescribe)
	s.mux.HandleFunc("/api/ai/similar", s.apiAISimilar)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the single place mutation failures become responses. In
// particular it is the one centralized presenter for permission errors:
// handlers pass them through untouched and never render their own message.
func writeError(w http.ResponseWriter, err error) {
	var perm *domain.PermissionError
	var val *domain.ValidationError
	switch {
	case errors.As(err, &perm):
		log.Warn().Str("path", perm.Path).Str("op", perm.Op).Msg("store denied permission")
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error": "Você não tem permissão para esta operação.",
			"path":  perm.Path,
			"op":    perm.Op,
		})
	case errors.As(err, &val):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": val.Message, "field": val.Field})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "não encontrado"})
	default:
		log.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "erro interno"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "JSON inválido"})
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method"})
}
