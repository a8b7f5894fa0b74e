package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

// AdminUC issues the admin mutations: exactly one store write per operation,
// input validated locally first, and a read model refresh after every
// successful write. Store permission failures come back as
// *domain.PermissionError, translated inside the repo adapters.
type AdminUC struct {
	products   domain.ProductRepo
	categories domain.CategoryRepo
	siteInfo   domain.SiteInfoRepo
	catalog    *CatalogUC
}

func NewAdminUC(p domain.ProductRepo, c domain.CategoryRepo, s domain.SiteInfoRepo, catalog *CatalogUC) *AdminUC {
	return &AdminUC{products: p, categories: c, siteInfo: s, catalog: catalog}
}

func validPrice(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (uc *AdminUC) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "nome é obrigatório"}
	}
	if in.Category == "" {
		return nil, &domain.ValidationError{Field: "category", Message: "categoria é obrigatória"}
	}
	if !validPrice(in.Price) {
		return nil, &domain.ValidationError{Field: "price", Message: "preço deve ser um número não negativo"}
	}

	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
	}
	if err := uc.products.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.refresh(ctx)
	return p, nil
}

func (uc *AdminUC) UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) error {
	if upd.Empty() {
		return &domain.ValidationError{Field: "", Message: "nenhum campo para atualizar"}
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return &domain.ValidationError{Field: "name", Message: "nome é obrigatório"}
	}
	if upd.Category != nil && strings.TrimSpace(*upd.Category) == "" {
		return &domain.ValidationError{Field: "category", Message: "categoria é obrigatória"}
	}
	if upd.Price != nil && !validPrice(*upd.Price) {
		return &domain.ValidationError{Field: "price", Message: "preço deve ser um número não negativo"}
	}
	if err := uc.products.Update(ctx, id, upd); err != nil {
		return err
	}
	uc.refresh(ctx)
	return nil
}

func (uc *AdminUC) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.products.Delete(ctx, id); err != nil {
		return err
	}
	uc.refresh(ctx)
	return nil
}

func (uc *AdminUC) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "nome é obrigatório"}
	}
	c, err := uc.categories.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	uc.refresh(ctx)
	return c, nil
}

func (uc *AdminUC) RenameCategory(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &domain.ValidationError{Field: "name", Message: "nome é obrigatório"}
	}
	if err := uc.categories.Rename(ctx, id, name); err != nil {
		return err
	}
	uc.refresh(ctx)
	return nil
}

// DeleteCategory removes the category document only. Products referencing it
// keep the dangling name until re-categorized by hand.
func (uc *AdminUC) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.categories.Delete(ctx, id); err != nil {
		return err
	}
	uc.refresh(ctx)
	return nil
}

func (uc *AdminUC) UpdateSiteInfo(ctx context.Context, upd domain.SiteInfoUpdate) error {
	if upd.Empty() {
		return &domain.ValidationError{Field: "", Message: "nenhum campo para atualizar"}
	}
	if err := uc.siteInfo.Merge(ctx, upd); err != nil {
		return err
	}
	uc.refresh(ctx)
	return nil
}

func (uc *AdminUC) refresh(ctx context.Context) {
	if uc.catalog == nil {
		return
	}
	if err := uc.catalog.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("read model refresh after admin write failed")
	}
}
