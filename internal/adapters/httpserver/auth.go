package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/mrbebidas/distribuidora/internal/usecase"
)

// POST /api/login — email+password sign-in; an unknown account is created on
// the fly with the same credentials.
func (s *Server) apiLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	u, created, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": usecase.AuthMessage(err)})
		return
	}
	tok, err := s.issueToken(u.Email, 24*time.Hour)
	if err != nil {
		writeError(w, err)
		return
	}
	msg := "Login bem-sucedido!"
	if created {
		msg = "Cadastro realizado com sucesso!"
	}
	writeJSON(w, 200, map[string]any{"token": tok, "email": u.Email, "created": created, "message": msg})
}

func (s *Server) issueToken(email string, dur time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   email,
		"email": email,
		"exp":   time.Now().Add(dur).Unix(),
		"iat":   time.Now().Unix(),
		"iss":   "mrbebidas",
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *Server) verifyToken(tok string) (string, error) {
	parsed, err := jwt.Parse(tok, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return email, nil
}

// requireAuth accepts a Bearer token or the session cookie. Any signed-in
// account may manage the catalog; the store's own rules are the final word.
func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		if _, err := s.verifyToken(strings.TrimSpace(auth[7:])); err == nil {
			return true
		}
	}
	if c, err := r.Cookie("token"); err == nil && c.Value != "" {
		if _, err := s.verifyToken(c.Value); err == nil {
			return true
		}
	}
	writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "não autenticado"})
	return false
}

// GET /auth/google — only wired when client credentials are configured.
func (s *Server) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if s.oauthCfg == nil {
		http.Error(w, "oauth não configurado", http.StatusNotImplemented)
		return
	}
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{Name: "oauth_state", Value: state, Path: "/", MaxAge: 300, HttpOnly: true})
	http.Redirect(w, r, s.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline), http.StatusFound)
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if s.oauthCfg == nil {
		http.Error(w, "oauth não configurado", http.StatusNotImplemented)
		return
	}
	q := r.URL.Query()
	c, _ := r.Cookie("oauth_state")
	if c == nil || c.Value == "" || c.Value != q.Get("state") {
		http.Error(w, "state", http.StatusBadRequest)
		return
	}
	tok, err := s.oauthCfg.Exchange(r.Context(), q.Get("code"))
	if err != nil {
		log.Error().Err(err).Msg("oauth exchange failed")
		http.Error(w, "oauth", http.StatusBadRequest)
		return
	}
	client := s.oauthCfg.Client(r.Context(), tok)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil || resp.StatusCode != http.StatusOK {
		log.Error().Err(err).Msg("userinfo fetch failed")
		http.Error(w, "userinfo", http.StatusBadRequest)
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	_ = json.Unmarshal(body, &info)
	if info.Email == "" {
		http.Error(w, "email", http.StatusBadRequest)
		return
	}
	if _, err := s.auth.EnsureAccount(r.Context(), info.Email, info.Name); err != nil {
		writeError(w, err)
		return
	}
	jwtTok, err := s.issueToken(info.Email, 24*time.Hour)
	if err != nil {
		writeError(w, err)
		return
	}
	secure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{Name: "token", Value: jwtTok, Path: "/", MaxAge: 60 * 60 * 24, HttpOnly: true, Secure: secure, SameSite: http.SameSiteStrictMode})
	http.Redirect(w, r, "/", http.StatusFound)
}
