package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

// readState is the two-source read model state: until live data arrives the
// static seed is shown, once the store returns at least one record the live
// snapshot fully replaces it (never a union of the two).
type readState int

const (
	stateNoData readState = iota
	stateFallback
	stateLive
)

// CatalogUC is the storefront read model. It keeps the latest snapshot of the
// products, categories and site info collections, watches the store for
// changes, and falls back to the compiled-in seed whenever the live result is
// empty or unavailable.
type CatalogUC struct {
	products   domain.ProductRepo
	categories domain.CategoryRepo
	siteInfo   domain.SiteInfoRepo

	fallbackProducts   []domain.Product
	fallbackCategories []domain.Category
	defaults           domain.SiteInfo

	mu             sync.RWMutex
	state          readState
	liveProducts   []domain.Product
	liveCategories []domain.Category
	storedInfo     domain.SiteInfo
	hasInfo        bool
	loading        bool
	lastErr        error
}

func NewCatalogUC(p domain.ProductRepo, c domain.CategoryRepo, s domain.SiteInfoRepo) *CatalogUC {
	seedCats := make([]domain.Category, 0, len(domain.SeedCategories()))
	for _, name := range domain.SeedCategories() {
		seedCats = append(seedCats, domain.Category{Name: name})
	}
	return &CatalogUC{
		products:           p,
		categories:         c,
		siteInfo:           s,
		fallbackProducts:   domain.SeedProducts(),
		fallbackCategories: seedCats,
		defaults:           domain.DefaultSiteInfo(),
		state:              stateNoData,
		loading:            true,
	}
}

// Products returns the visible product list, whether the first load is still
// in flight, and the last subscription error if any. Before live data exists,
// or while it is empty, the static seed is the visible list.
func (uc *CatalogUC) Products() ([]domain.Product, bool, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.state == stateLive {
		return uc.liveProducts, uc.loading, uc.lastErr
	}
	return uc.fallbackProducts, uc.loading, uc.lastErr
}

// Filter applies the filter engine over the visible list.
func (uc *CatalogUC) Filter(query, category string) ([]domain.Product, bool, error) {
	list, loading, err := uc.Products()
	return domain.FilterProducts(list, query, category), loading, err
}

// FindProduct resolves a product by id from the visible list.
func (uc *CatalogUC) FindProduct(id string) (*domain.Product, error) {
	list, _, _ := uc.Products()
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Categories returns the visible category list, seed-derived until the store
// has at least one category document.
func (uc *CatalogUC) Categories() []domain.Category {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if len(uc.liveCategories) > 0 {
		return uc.liveCategories
	}
	return uc.fallbackCategories
}

// SiteInfo returns the stored site metadata merged over the defaults, so the
// storefront always has every display string even when the stored document is
// partial or missing.
func (uc *CatalogUC) SiteInfo() domain.SiteInfo {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if !uc.hasInfo {
		return uc.defaults
	}
	return domain.MergeSiteInfo(uc.defaults, uc.storedInfo)
}

// Refresh forces a re-query of all three collections. Admin mutations call it
// after every successful write so the read model reflects the write without
// waiting for the store's own change notification.
func (uc *CatalogUC) Refresh(ctx context.Context) error {
	products, err := uc.products.List(ctx)
	if err != nil {
		uc.mu.Lock()
		uc.loading = false
		uc.lastErr = err
		if uc.state == stateNoData {
			uc.state = stateFallback
		}
		uc.mu.Unlock()
		return err
	}

	categories, catErr := uc.categories.List(ctx)
	info, infoErr := uc.siteInfo.Get(ctx)

	// A partially-denied store (products readable, categories or site info
	// not) would otherwise be invisible: the product query succeeding clears
	// lastErr, so surface the secondary failures in the log.
	if catErr != nil {
		log.Warn().Err(catErr).Msg("categories query failed, keeping previous list")
	}
	if infoErr != nil && !errors.Is(infoErr, domain.ErrNotFound) {
		log.Warn().Err(infoErr).Msg("site info query failed, keeping previous values")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loading = false
	uc.lastErr = nil
	if len(products) > 0 {
		uc.state = stateLive
		uc.liveProducts = products
	} else {
		uc.state = stateFallback
		uc.liveProducts = nil
	}
	if catErr == nil {
		uc.liveCategories = categories
	}
	if infoErr == nil && info != nil {
		uc.storedInfo = *info
		uc.hasInfo = true
	}
	return nil
}

// Start performs the initial load and then follows the store's change feed,
// re-querying on every event, until ctx is done.
func (uc *CatalogUC) Start(ctx context.Context) {
	if err := uc.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("initial catalog load failed, serving static seed")
	}

	events, err := uc.products.Watch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog subscription unavailable")
		return
	}
	go func() {
		for range events {
			if err := uc.Refresh(ctx); err != nil {
				log.Warn().Err(err).Msg("catalog refresh failed")
			}
		}
	}()
}
