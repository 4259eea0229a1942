package integration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/vkozyar/catalog-service/internal/auth"
	"github.com/vkozyar/catalog-service/internal/config"
	httpAPI "github.com/vkozyar/catalog-service/internal/http"
	"github.com/vkozyar/catalog-service/internal/http/controller"
	"github.com/vkozyar/catalog-service/internal/model"
	"github.com/vkozyar/catalog-service/internal/repository"
	"github.com/vkozyar/catalog-service/internal/service"
)

const testJWTSecret = "integration-test-secret"

// fakeProductRepository is an in-memory stand-in for the Mongo-backed
// product repository.
type fakeProductRepository struct {
	mu       sync.Mutex
	products map[string]model.Product
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[string]model.Product)}
}

func (r *fakeProductRepository) Create(_ context.Context, product *model.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.InitMeta()
	r.products[product.ID.Hex()] = *product
	return product.ID.Hex(), nil
}

func (r *fakeProductRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &product, nil
}

func (r *fakeProductRepository) UpdateByID(_ context.Context, id string, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()
	r.products[id] = *product
	return nil
}

func (r *fakeProductRepository) List(_ context.Context, _ string, f repository.ProductFilter, p repository.Pagination) (*model.ProductPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []model.Product
	for _, product := range r.products {
		if f.TenantID != "" && product.TenantID != f.TenantID {
			continue
		}
		if f.OnlyPublished && !product.IsPublish {
			continue
		}
		if !f.CategoryID.IsZero() && product.CategoryID != f.CategoryID {
			continue
		}
		matched = append(matched, product)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	p = p.Normalize()
	total := len(matched)
	start := int(p.Skip())
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	return &model.ProductPage{
		Data:        matched[start:end],
		Total:       int64(total),
		PageSize:    p.Limit,
		CurrentPage: p.Page,
	}, nil
}

// fakeCategoryRepository is an in-memory stand-in for the category repository.
type fakeCategoryRepository struct {
	mu         sync.Mutex
	categories map[string]model.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[string]model.Category)}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *model.Category) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.InitMeta()
	r.categories[category.ID.Hex()] = *category
	return category.ID.Hex(), nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id string) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &category, nil
}

func (r *fakeCategoryRepository) List(_ context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Category, 0, len(r.categories))
	for _, category := range r.categories {
		out = append(out, category)
	}
	return out, nil
}

func (r *fakeCategoryRepository) UpdateByID(_ context.Context, id string, category *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.categories[id]
	if !ok {
		return repository.ErrNotFound
	}
	category.ID = existing.ID
	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = time.Now().UTC()
	r.categories[id] = *category
	return nil
}

func (r *fakeCategoryRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

// fakeToppingRepository is an in-memory stand-in for the topping repository.
type fakeToppingRepository struct {
	mu       sync.Mutex
	toppings map[string]model.Topping
}

func newFakeToppingRepository() *fakeToppingRepository {
	return &fakeToppingRepository{toppings: make(map[string]model.Topping)}
}

func (r *fakeToppingRepository) Create(_ context.Context, topping *model.Topping) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	topping.InitMeta()
	r.toppings[topping.ID.Hex()] = *topping
	return topping.ID.Hex(), nil
}

func (r *fakeToppingRepository) FindByID(_ context.Context, id string) (*model.Topping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	topping, ok := r.toppings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &topping, nil
}

func (r *fakeToppingRepository) UpdateByID(_ context.Context, id string, topping *model.Topping) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.toppings[id]
	if !ok {
		return repository.ErrNotFound
	}
	topping.ID = existing.ID
	topping.CreatedAt = existing.CreatedAt
	topping.UpdatedAt = time.Now().UTC()
	r.toppings[id] = *topping
	return nil
}

func (r *fakeToppingRepository) List(_ context.Context, f repository.ToppingFilter) ([]model.Topping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Topping
	for _, topping := range r.toppings {
		if f.TenantID != "" && topping.TenantID != f.TenantID {
			continue
		}
		if f.OnlyPublished && !topping.IsPublish {
			continue
		}
		out = append(out, topping)
	}
	return out, nil
}

// fakeStorage is an in-memory stand-in for the S3-backed image storage.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(_ context.Context, key string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) ObjectURI(key string) string {
	return "https://cdn.test/" + key
}

// publishedEvent is one message captured by the fake publisher.
type publishedEvent struct {
	Topic   string
	Payload any
}

// fakePublisher is an in-memory stand-in for the SQS-backed publisher.
type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(_ context.Context, topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Payload: payload})
	return nil
}

func (p *fakePublisher) Events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.events))
	copy(out, p.events)
	return out
}

// testEnv wires the real services, controllers, router and middleware on top
// of in-memory backends.
type testEnv struct {
	Router      *gin.Engine
	ProductRepo *fakeProductRepository
	Storage     *fakeStorage
	Publisher   *fakePublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	productRepo := newFakeProductRepository()
	categoryRepo := newFakeCategoryRepository()
	toppingRepo := newFakeToppingRepository()
	storage := newFakeStorage()
	publisher := &fakePublisher{}

	conf := &config.Config{
		HTTPServer: config.Server{Port: "8080"},
		Broker:     config.Broker{ProductTopic: "product", ToppingTopic: "topping"},
		Auth:       config.Auth{JWTSecret: testJWTSecret},
	}

	productService := service.NewProductService(productRepo, storage, publisher, conf.Broker.ProductTopic)
	categoryService := service.NewCategoryService(categoryRepo)
	toppingService := service.NewToppingService(toppingRepo, storage, publisher, conf.Broker.ToppingTopic)

	router := httpAPI.InitRouter(
		conf,
		gin.New(),
		controller.New(),
		controller.NewProductController(productService),
		controller.NewCategoryController(categoryService),
		controller.NewToppingController(toppingService),
	)

	return &testEnv{
		Router:      router,
		ProductRepo: productRepo,
		Storage:     storage,
		Publisher:   publisher,
	}
}

// token signs a short-lived JWT for the given role and tenant.
func token(t *testing.T, role, tenant string) string {
	t.Helper()
	claims := auth.Claims{
		Role:   role,
		Tenant: tenant,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

// multipartBody builds a multipart form with the given fields and an
// optional image part.
func multipartBody(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("writing field %s: %v", name, err)
		}
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "image.jpg")
		if err != nil {
			t.Fatalf("creating image part: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("writing image part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

// do executes a request against the router and returns the recorder.
func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// authorize sets the bearer token header.
func authorize(req *http.Request, tok string) *http.Request {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", tok))
	return req
}
