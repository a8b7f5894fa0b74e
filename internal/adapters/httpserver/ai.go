package httpserver

import "net/http"

// POST /api/ai/describe — expand an informal product note into a full
// description. Single shot, no retries.
func (s *Server) apiAIDescribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if s.flows == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "geração de texto não configurada"})
		return
	}
	var req struct {
		ProductNote string `json:"productNote"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	desc, err := s.flows.GenerateProductDescription(r.Context(), req.ProductNote)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"productDescription": desc})
}

// POST /api/ai/similar — similar-product suggestions for a description.
func (s *Server) apiAISimilar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if s.flows == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "geração de texto não configurada"})
		return
	}
	var req struct {
		ProductDescription      string `json:"productDescription"`
		NumberOfRecommendations int    `json:"numberOfRecommendations"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	recs, err := s.flows.RecommendSimilarProducts(r.Context(), req.ProductDescription, req.NumberOfRecommendations)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"recommendedProducts": recs})
}
