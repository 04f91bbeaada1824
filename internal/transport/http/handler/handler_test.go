package handler

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-recipe-api/internal/core/auth"
	"go-recipe-api/internal/domain"
)

// In-memory repositories standing in for the store.

type fakeUserRepo struct {
	users     map[string]*domain.User
	createErr error
	listErr   error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, ex := range f.users {
		if ex.Email == u.Email {
			return errDuplicateEmail
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (f *fakeUserRepo) ListPage(offset, limit int, q string, withDeleted bool) ([]domain.User, int64, error) {
	all, err := f.List()
	if err != nil {
		return nil, 0, err
	}
	return all, int64(len(all)), nil
}

func (f *fakeUserRepo) SoftDelete(id string) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

type fakeRecipeRepo struct {
	recipes    map[string]*domain.Recipe
	createErr  error
	listErr    error
	findErr    error
	replaceErr error
	deleteErr  error
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: map[string]*domain.Recipe{}}
}

func (f *fakeRecipeRepo) Create(r *domain.Recipe) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *r
	f.recipes[r.ID] = &cp
	return nil
}

func (f *fakeRecipeRepo) List(order int) ([]domain.Recipe, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Recipe, 0, len(f.recipes))
	for _, r := range f.recipes {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if order == domain.SortTitleDesc {
			return out[i].Title > out[j].Title
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (f *fakeRecipeRepo) FindByID(id string) (*domain.Recipe, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	r, ok := f.recipes[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRecipeRepo) FindByOwnerAndCategory(userID, category string) ([]domain.Recipe, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []domain.Recipe
	for _, r := range f.recipes {
		if r.UserID == userID && r.Category == category {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) Replace(id string, r *domain.Recipe) (bool, error) {
	if f.replaceErr != nil {
		return false, f.replaceErr
	}
	cur, ok := f.recipes[id]
	if !ok {
		return false, nil
	}
	r.ID = cur.ID
	r.CreatedAt = cur.CreatedAt
	cp := *r
	f.recipes[id] = &cp
	return true, nil
}

func (f *fakeRecipeRepo) Delete(id string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if _, ok := f.recipes[id]; !ok {
		return false, nil
	}
	delete(f.recipes, id)
	return true, nil
}

// fakeCache is an in-memory cache.Store with no TTL handling.
type fakeCache struct {
	entries       map[string][]byte
	invalidateErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) GetOrLoad(ctx context.Context, key string, _ time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if b, ok := f.entries[key]; ok {
		return b, nil
	}
	b, err := load(ctx)
	if err != nil {
		return nil, err
	}
	f.entries[key] = b
	return b, nil
}

func (f *fakeCache) Invalidate(_ context.Context, keys ...string) error {
	if f.invalidateErr != nil {
		return f.invalidateErr
	}
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

var errDuplicateEmail = &duplicateEmailError{}

type duplicateEmailError struct{}

func (*duplicateEmailError) Error() string { return "duplicate key error on email" }

// Engine helpers.

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "recipe-api", TTL: time.Hour}
}

func newUserEngine(users domain.UserRepository, j *auth.JWTer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewUserHandler(users, j, zap.NewNop()).MountAPI(r.Group("/api"))
	return r
}

func newRecipeEngine(recipes domain.RecipeRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewRecipeHandler(recipes, zap.NewNop()).MountAPI(r.Group("/api"))
	return r
}

func newCachedRecipeEngine(recipes domain.RecipeRepository, fc *fakeCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewRecipeHandler(recipes, zap.NewNop()).WithCache(fc, time.Minute).MountAPI(r.Group("/api"))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	return doJSONWithAuth(r, method, path, body, "")
}

func doJSONWithAuth(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
