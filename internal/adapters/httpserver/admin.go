package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

// POST /api/admin/products
func (s *Server) apiAdminProducts(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req domain.NewProduct
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.admin.CreateProduct(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// PUT/DELETE /api/admin/products/{id}
func (s *Server) apiAdminProductByID(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/products/")
	if id == "" {
		writeError(w, domain.ErrNotFound)
		return
	}
	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var upd domain.ProductUpdate
		if !decodeJSON(w, r, &upd) {
			return
		}
		if err := s.admin.UpdateProduct(r.Context(), id, upd); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"message": "produto atualizado"})
	case http.MethodDelete:
		if err := s.admin.DeleteProduct(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"message": "produto removido"})
	default:
		methodNotAllowed(w)
	}
}

// POST /api/admin/categories
func (s *Server) apiAdminCategories(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := s.admin.CreateCategory(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// PUT/DELETE /api/admin/categories/{id}
func (s *Server) apiAdminCategoryByID(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/categories/")
	if id == "" {
		writeError(w, domain.ErrNotFound)
		return
	}
	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var req struct {
			Name string `json:"name"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := s.admin.RenameCategory(r.Context(), id, req.Name); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"message": "categoria renomeada"})
	case http.MethodDelete:
		if err := s.admin.DeleteCategory(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"message": "categoria removida"})
	default:
		methodNotAllowed(w)
	}
}

// PUT /api/admin/site-info
func (s *Server) apiAdminSiteInfo(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}
	if r.Method != http.MethodPut && r.Method != http.MethodPatch {
		methodNotAllowed(w)
		return
	}
	var upd domain.SiteInfoUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	if err := s.admin.UpdateSiteInfo(r.Context(), upd); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"message": "informações atualizadas"})
}

// POST /api/admin/refresh — force the read model to re-query.
func (s *Server) apiAdminRefresh(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if err := s.catalog.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"message": "catálogo atualizado"})
}

// GET /api/admin/export — current catalog as an xlsx workbook.
func (s *Server) apiAdminExport(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	list, _, _ := s.catalog.Products()

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Catalogo"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		writeError(w, err)
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Nome", "Descrição", "Preço", "Categoria"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, p := range list {
		values := []any{p.ID, p.Name, p.Description, p.Price, p.Category}
		if p.PriceOnRequest() {
			values[3] = "consultar"
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "catalogo.xlsx"))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("xlsx export failed")
	}
}
