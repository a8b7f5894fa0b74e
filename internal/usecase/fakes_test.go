package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

// fakeProductRepo is an in-memory domain.ProductRepo that counts calls so
// tests can assert how often the store was touched.
type fakeProductRepo struct {
	mu    sync.Mutex
	docs  map[string]domain.Product
	order []string

	countCalls int
	writeCalls int
	listCalls  int

	countErr error
	writeErr error
	listErr  error

	events chan struct{}
}

func newFakeProductRepo(seed ...domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{docs: map[string]domain.Product{}, events: make(chan struct{}, 8)}
	for _, p := range seed {
		r.docs[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *fakeProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out, nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countCalls++
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.docs)), nil
}

func (r *fakeProductRepo) SeedBatch(ctx context.Context, products []domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	for _, p := range products {
		if _, ok := r.docs[p.ID]; !ok {
			r.order = append(r.order, p.ID)
		}
		r.docs[p.ID] = p
	}
	return nil
}

func (r *fakeProductRepo) Save(ctx context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	if _, ok := r.docs[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.docs[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id string, upd domain.ProductUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	p, ok := r.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	r.docs[id] = p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	if _, ok := r.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Watch forwards the test-driven events channel, closing the subscription
// when ctx is done, like the real change stream does.
func (r *fakeProductRepo) Watch(ctx context.Context) (<-chan struct{}, error) {
	out := make(chan struct{})
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-r.events:
				if !ok {
					return
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (r *fakeProductRepo) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}

func (r *fakeProductRepo) writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeCalls
}

func (r *fakeProductRepo) lists() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls
}

type fakeCategoryRepo struct {
	mu   sync.Mutex
	docs []domain.Category

	writeCalls int
	writeErr   error
	listErr    error
	nextID     int
}

func newFakeCategoryRepo(names ...string) *fakeCategoryRepo {
	r := &fakeCategoryRepo{}
	for _, n := range names {
		r.nextID++
		r.docs = append(r.docs, domain.Category{ID: "cat-" + strconv.Itoa(r.nextID), Name: n})
	}
	return r
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.Category(nil), r.docs...), nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.docs)), nil
}

func (r *fakeCategoryRepo) SeedBatch(ctx context.Context, names []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	for _, n := range names {
		r.nextID++
		r.docs = append(r.docs, domain.Category{ID: "cat-" + strconv.Itoa(r.nextID), Name: n})
	}
	return nil
}

func (r *fakeCategoryRepo) Create(ctx context.Context, name string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return nil, r.writeErr
	}
	r.nextID++
	c := domain.Category{ID: "cat-" + strconv.Itoa(r.nextID), Name: name}
	r.docs = append(r.docs, c)
	return &c, nil
}

func (r *fakeCategoryRepo) Rename(ctx context.Context, id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	for i := range r.docs {
		if r.docs[i].ID == id {
			r.docs[i].Name = name
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	for i := range r.docs {
		if r.docs[i].ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSiteInfoRepo struct {
	mu     sync.Mutex
	stored *domain.SiteInfo

	writeCalls int
	writeErr   error
}

func (r *fakeSiteInfoRepo) Get(ctx context.Context) (*domain.SiteInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stored == nil {
		return nil, domain.ErrNotFound
	}
	cp := *r.stored
	return &cp, nil
}

func (r *fakeSiteInfoRepo) EnsureDefaults(ctx context.Context, defaults domain.SiteInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	if r.stored == nil {
		cp := defaults
		r.stored = &cp
		return nil
	}
	merged := domain.MergeSiteInfo(defaults, *r.stored)
	r.stored = &merged
	return nil
}

func (r *fakeSiteInfoRepo) Merge(ctx context.Context, upd domain.SiteInfoUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	if r.stored == nil {
		r.stored = &domain.SiteInfo{}
	}
	if upd.SiteName != nil {
		r.stored.SiteName = *upd.SiteName
	}
	if upd.HeroTitle1 != nil {
		r.stored.HeroTitle1 = *upd.HeroTitle1
	}
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailInUse
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.users[u.Email] = *u
	return nil
}
