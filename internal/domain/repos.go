package domain

import "context"

// ProductRepo is the document-store accessor for the products collection.
type ProductRepo interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	Count(ctx context.Context) (int64, error)
	// SeedBatch writes the whole seed in a single batch of upserts keyed by
	// the products' own ids, so a rerun can never duplicate documents.
	SeedBatch(ctx context.Context, products []Product) error
	Save(ctx context.Context, p *Product) error
	Update(ctx context.Context, id string, upd ProductUpdate) error
	Delete(ctx context.Context, id string) error
	// Watch emits an event whenever the collection changes. The channel is
	// closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// CategoryRepo is the document-store accessor for the categories collection.
type CategoryRepo interface {
	List(ctx context.Context) ([]Category, error)
	Count(ctx context.Context) (int64, error)
	SeedBatch(ctx context.Context, names []string) error
	Create(ctx context.Context, name string) (*Category, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

// SiteInfoRepo is the accessor for the singleton siteInfo/main document.
type SiteInfoRepo interface {
	Get(ctx context.Context) (*SiteInfo, error)
	// EnsureDefaults backfills fields missing from the stored document with
	// the given defaults. Fields already present are never overwritten; a
	// missing document is created whole.
	EnsureDefaults(ctx context.Context, defaults SiteInfo) error
	Merge(ctx context.Context, upd SiteInfoUpdate) error
}

// UserRepo is the accessor for the users collection, keyed by email.
type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
}
