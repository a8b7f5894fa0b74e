package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mrbebidas/distribuidora/internal/domain"
	"github.com/mrbebidas/distribuidora/internal/usecase"
)

// memProducts is the minimal in-memory domain.ProductRepo the handler tests
// need. It keeps insertion order so list responses are deterministic.
type memProducts struct {
	mu       sync.Mutex
	docs     map[string]domain.Product
	order    []string
	writeErr error
}

func newMemProducts() *memProducts {
	return &memProducts{docs: map[string]domain.Product{}}
}

func (m *memProducts) List(ctx context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Product, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.docs[id])
	}
	return out, nil
}

func (m *memProducts) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (m *memProducts) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.docs)), nil
}

func (m *memProducts) SeedBatch(ctx context.Context, products []domain.Product) error {
	for i := range products {
		if err := m.Save(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *memProducts) Save(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if _, ok := m.docs[p.ID]; !ok {
		m.order = append(m.order, p.ID)
	}
	m.docs[p.ID] = *p
	return nil
}

func (m *memProducts) Update(ctx context.Context, id string, upd domain.ProductUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	p, ok := m.docs[id]
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
	m.docs[id] = p
	return nil
}

func (m *memProducts) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if _, ok := m.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.docs, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memProducts) Watch(ctx context.Context) (<-chan struct{}, error) {
	return make(chan struct{}), nil
}

type memCategories struct {
	mu   sync.Mutex
	docs []domain.Category
	next int
}

func (m *memCategories) List(ctx context.Context) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Category(nil), m.docs...), nil
}

func (m *memCategories) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.docs)), nil
}

func (m *memCategories) SeedBatch(ctx context.Context, names []string) error {
	for _, n := range names {
		if _, err := m.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (m *memCategories) Create(ctx context.Context, name string) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	c := domain.Category{ID: fmt.Sprintf("cat-%d", m.next), Name: name}
	m.docs = append(m.docs, c)
	return &c, nil
}

func (m *memCategories) Rename(ctx context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs[i].Name = name
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memCategories) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memSiteInfo struct {
	mu     sync.Mutex
	stored *domain.SiteInfo
}

func (m *memSiteInfo) Get(ctx context.Context) (*domain.SiteInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored == nil {
		return nil, domain.ErrNotFound
	}
	cp := *m.stored
	return &cp, nil
}

func (m *memSiteInfo) EnsureDefaults(ctx context.Context, defaults domain.SiteInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored == nil {
		cp := defaults
		m.stored = &cp
		return nil
	}
	merged := domain.MergeSiteInfo(defaults, *m.stored)
	m.stored = &merged
	return nil
}

func (m *memSiteInfo) Merge(ctx context.Context, upd domain.SiteInfoUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored == nil {
		m.stored = &domain.SiteInfo{}
	}
	if upd.SiteName != nil {
		m.stored.SiteName = *upd.SiteName
	}
	return nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) Create(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.users == nil {
		m.users = map[string]domain.User{}
	}
	if _, ok := m.users[u.Email]; ok {
		return domain.ErrEmailInUse
	}
	m.users[u.Email] = *u
	return nil
}

type testEnv struct {
	handler  http.Handler
	products *memProducts
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()
	products := newMemProducts()
	categories := &memCategories{}
	siteInfo := &memSiteInfo{}

	catalog := usecase.NewCatalogUC(products, categories, siteInfo)
	admin := usecase.NewAdminUC(products, categories, siteInfo, catalog)
	auth := usecase.NewAuthUC(&memUsers{})

	h := New(catalog, admin, auth, nil, nil, []byte("segredo-de-teste"), "http://localhost:8080")
	return &testEnv{handler: h, products: products}
}

func (e *testEnv) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "admin@exemplo.com",
		"password": "segredo",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status %d: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Fatal("login returned no token")
	}
	return resp.Token
}

func TestHealthz(t *testing.T) {
	env := newTestServer(t)
	rec := env.do(t, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" && rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("request id header missing")
	}
}

func TestProductsServeSeedFallback(t *testing.T) {
	env := newTestServer(t)
	rec := env.do(t, http.MethodGet, "/api/products", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if got, want := len(resp.Products), len(domain.SeedProducts()); got != want {
		t.Fatalf("got %d products, want the %d-item seed", got, want)
	}
}

func TestProductsFilterParams(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/products?q=dunhill&category=Todos", "", nil)
	var resp struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Products) == 0 {
		t.Fatal(`"dunhill" should match seed products`)
	}
	for _, p := range resp.Products {
		if !strings.Contains(strings.ToLower(p.Name), "dunhill") {
			t.Fatalf("unexpected match %q", p.Name)
		}
	}

	rec = env.do(t, http.MethodGet, "/api/products?q=dunhill&category=Fumos", "", nil)
	resp.Products = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Products) != 0 {
		t.Fatalf("category mismatch must exclude all, got %d", len(resp.Products))
	}
}

func TestProductByIDIncludesReviews(t *testing.T) {
	env := newTestServer(t)
	rec := env.do(t, http.MethodGet, "/api/products/prod-1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Product domain.Product  `json:"product"`
		Reviews []domain.Review `json:"reviews"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Product.ID != "prod-1" {
		t.Fatalf("got product %q", resp.Product.ID)
	}
	if len(resp.Reviews) == 0 {
		t.Fatal("product page must carry placeholder reviews")
	}
}

func TestProductByIDNotFound(t *testing.T) {
	env := newTestServer(t)
	rec := env.do(t, http.MethodGet, "/api/products/nao-existe", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestSiteInfoServesDefaults(t *testing.T) {
	env := newTestServer(t)
	rec := env.do(t, http.MethodGet, "/api/site-info", "", nil)
	var info domain.SiteInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info.SiteName != domain.DefaultSiteInfo().SiteName {
		t.Fatalf("got %q", info.SiteName)
	}
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	env := newTestServer(t)
	targets := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/admin/products"},
		{http.MethodDelete, "/api/admin/products/prod-1"},
		{http.MethodPost, "/api/admin/categories"},
		{http.MethodPut, "/api/admin/site-info"},
		{http.MethodPost, "/api/admin/refresh"},
		{http.MethodGet, "/api/admin/export"},
	}
	for _, tgt := range targets {
		rec := env.do(t, tgt.method, tgt.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status %d, want 401", tgt.method, tgt.path, rec.Code)
		}
	}
}

func TestAdminRejectsForgedToken(t *testing.T) {
	env := newTestServer(t)
	rec := env.do(t, http.MethodPost, "/api/admin/refresh", "nao-e-um-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
}

func TestLoginCreatesAccountAndIssuesToken(t *testing.T) {
	env := newTestServer(t)
	rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "novo@exemplo.com",
		"password": "segredo",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Token   string `json:"token"`
		Created bool   `json:"created"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Created {
		t.Fatal("first login must auto-register")
	}
	if resp.Message != "Cadastro realizado com sucesso!" {
		t.Fatalf("got message %q", resp.Message)
	}
}

func TestLoginWrongPasswordMessage(t *testing.T) {
	env := newTestServer(t)
	env.login(t)

	rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "admin@exemplo.com",
		"password": "senha-errada",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "E-mail já cadastrado com outra senha." {
		t.Fatalf("got message %q", resp.Error)
	}
}

func TestCreateProductFlow(t *testing.T) {
	env := newTestServer(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/admin/products", token, map[string]any{
		"name":     "Cachaça 51",
		"price":    12.5,
		"category": "Bebidas",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d: %s", rec.Code, rec.Body)
	}
	var created domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("created product has no id")
	}

	// live data now fully replaces the seed fallback
	rec = env.do(t, http.MethodGet, "/api/products", "", nil)
	var resp struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Products) != 1 || resp.Products[0].ID != created.ID {
		t.Fatalf("visible list after create: %d products", len(resp.Products))
	}
}

func TestCreateProductValidationRendered(t *testing.T) {
	env := newTestServer(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/admin/products", token, map[string]any{
		"name":     "Cachaça 51",
		"price":    -1,
		"category": "Bebidas",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	var resp struct {
		Field string `json:"field"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Field != "price" {
		t.Fatalf("got field %q", resp.Field)
	}
	if len(env.products.docs) != 0 {
		t.Fatal("invalid product reached the store")
	}
}

func TestPermissionDeniedRenderedOnce(t *testing.T) {
	env := newTestServer(t)
	token := env.login(t)
	env.products.writeErr = &domain.PermissionError{Path: "products", Op: "create"}

	rec := env.do(t, http.MethodPost, "/api/admin/products", token, map[string]any{
		"name":     "Cachaça 51",
		"price":    12.5,
		"category": "Bebidas",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status %d, want 403", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
		Path  string `json:"path"`
		Op    string `json:"op"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "Você não tem permissão para esta operação." {
		t.Fatalf("got message %q", resp.Error)
	}
	if resp.Path != "products" || resp.Op != "create" {
		t.Fatalf("lost error context: path=%q op=%q", resp.Path, resp.Op)
	}
}

func TestAIEndpointsUnconfigured(t *testing.T) {
	env := newTestServer(t)
	rec := env.do(t, http.MethodPost, "/api/ai/describe", "", map[string]string{"productNote": "cerveja gelada"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d, want 503", rec.Code)
	}
}

func TestExportRequiresAuthAndStreamsWorkbook(t *testing.T) {
	env := newTestServer(t)
	token := env.login(t)

	rec := env.do(t, http.MethodGet, "/api/admin/export", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("content type %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("empty workbook")
	}
}
