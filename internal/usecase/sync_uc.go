package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

// Syncer seeds the remote store from the compiled-in catalog. It is owned by
// the composition root, one instance per process; each target is attempted at
// most once per process lifetime. A failed attempt is not retried until the
// next restart.
type Syncer struct {
	products   domain.ProductRepo
	categories domain.CategoryRepo
	siteInfo   domain.SiteInfoRepo

	productsTried   atomic.Bool
	categoriesTried atomic.Bool
	siteInfoTried   atomic.Bool
}

func NewSyncer(p domain.ProductRepo, c domain.CategoryRepo, s domain.SiteInfoRepo) *Syncer {
	return &Syncer{products: p, categories: c, siteInfo: s}
}

// EnsureSeeded runs every pending sync target. Safe to call from concurrent
// callers: each flag is claimed before any store I/O starts, so near
// simultaneous calls collapse into a single attempt per target. Failures are
// logged and swallowed; the static seed keeps the read model serving.
func (s *Syncer) EnsureSeeded(ctx context.Context) {
	if s.productsTried.CompareAndSwap(false, true) {
		if err := s.seedProducts(ctx); err != nil {
			logSeedFailure("products", err)
		}
	}
	if s.categoriesTried.CompareAndSwap(false, true) {
		if err := s.seedCategories(ctx); err != nil {
			logSeedFailure("categories", err)
		}
	}
	if s.siteInfoTried.CompareAndSwap(false, true) {
		if err := s.siteInfo.EnsureDefaults(ctx, domain.DefaultSiteInfo()); err != nil {
			logSeedFailure("siteInfo", err)
		}
	}
}

// seedProducts writes the whole seed in one batch of id-keyed upserts, and
// only when the collection is empty. A non-empty collection gets zero writes.
func (s *Syncer) seedProducts(ctx context.Context) error {
	n, err := s.products.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Debug().Int64("count", n).Msg("products collection already populated, skipping seed")
		return nil
	}
	seed := domain.SeedProducts()
	if err := s.products.SeedBatch(ctx, seed); err != nil {
		return err
	}
	log.Info().Int("products", len(seed)).Msg("seeded products collection")
	return nil
}

func (s *Syncer) seedCategories(ctx context.Context) error {
	n, err := s.categories.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Debug().Int64("count", n).Msg("categories collection already populated, skipping seed")
		return nil
	}
	names := domain.SeedCategories()
	if err := s.categories.SeedBatch(ctx, names); err != nil {
		return err
	}
	log.Info().Int("categories", len(names)).Msg("seeded categories collection")
	return nil
}

// Permission failures are expected for unauthenticated processes under
// restrictive store rules, so nothing here logs above warn.
func logSeedFailure(target string, err error) {
	var perm *domain.PermissionError
	if errors.As(err, &perm) {
		log.Warn().Str("target", target).Str("path", perm.Path).Msg("seed skipped: store denied permission")
		return
	}
	log.Warn().Str("target", target).Err(err).Msg("seed failed")
}
