package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con la misma semántica del adaptador PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

const testCookieName = "catalogo_sid"

type fakeUserRepo struct {
	seq   int64
	users map[string]entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[string]entity.User{}} }

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, exists := r.users[u.Username]; exists {
		return domain.ErrUsernameAlreadyExists
	}
	r.seq++
	u.ID = r.seq
	r.users[u.Username] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type fakeSessionRepo struct {
	sessions map[string]entity.Session
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]entity.Session{}}
}

func (r *fakeSessionRepo) Create(s *entity.Session) error {
	r.sessions[s.ID] = *s
	return nil
}

func (r *fakeSessionRepo) GetByID(id string) (*entity.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSessionRepo) Delete(id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) DeleteExpired() (int64, error) {
	var n int64
	now := time.Now()
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	seq   int64
	items map[int64]entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[int64]entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.seq++
	p.ID = r.seq
	r.items[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) ListByOwner(userID int64, search string) ([]*entity.Product, error) {
	q := strings.ToLower(search)
	var list []*entity.Product
	for id := int64(1); id <= r.seq; id++ {
		p, ok := r.items[id]
		if !ok || p.UserID != userID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		cp := p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) (bool, error) {
	current, ok := r.items[p.ID]
	if !ok || current.UserID != p.UserID {
		return false, nil
	}
	r.items[p.ID] = *p
	return true, nil
}

func (r *fakeProductRepo) Delete(id, userID int64) (bool, error) {
	current, ok := r.items[id]
	if !ok || current.UserID != userID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test: router real sobre fakes (sin base de datos).
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	products *fakeProductRepo
}

func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	products := newFakeProductRepo()

	sessionCfg := config.SessionConfig{
		CookieName: testCookieName,
		TTLMinutes: 60,
	}
	authUC := auth.NewAuthUseCase(users, sessions, auth.SessionConfig{TTLMinutes: sessionCfg.TTLMinutes})
	productUC := usecase.NewProductUseCase(products)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		SessionRepo: sessions,
		SessionCfg:  sessionCfg,
	})
	return &testEnv{app: app, users: users, sessions: sessions, products: products}
}

// seedSession inserta una sesión válida directamente y devuelve el token para la cookie.
func (env *testEnv) seedSession(t *testing.T, userID int64) string {
	t.Helper()
	token := uuid.NewString()
	require.NoError(t, env.sessions.Create(&entity.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}))
	return token
}

// doJSON lanza una petición con body JSON opcional y cookie de sesión opcional.
func (env *testEnv) doJSON(t *testing.T, method, path, sessionToken string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionToken})
	}
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
