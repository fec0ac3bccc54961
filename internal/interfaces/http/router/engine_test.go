package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/loja/backend/internal/application/catalog"
	identityapp "github.com/loja/backend/internal/application/identity"
	partnerapp "github.com/loja/backend/internal/application/partner"
	tradeapp "github.com/loja/backend/internal/application/trade"
	"github.com/loja/backend/internal/infrastructure/auth"
	"github.com/loja/backend/internal/infrastructure/cache"
	"github.com/loja/backend/internal/infrastructure/config"
	"github.com/loja/backend/internal/infrastructure/persistence"
	"github.com/loja/backend/internal/interfaces/http/dto"
	"github.com/loja/backend/internal/interfaces/http/handler"
	"github.com/loja/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type engineFixture struct {
	engine *gin.Engine
	jwt    *auth.JWTService
}

func newEngineFixture(t *testing.T, configure func(*Options)) *engineFixture {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "router.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, persistence.AutoMigrate(db.DB))

	productRepo := persistence.NewGormProductRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "router-test-secret",
		AccessTokenExpiration: time.Hour,
		Issuer:                "loja-test",
	})

	h := Handlers{
		Auth:     handler.NewAuthHandler(identityapp.NewAuthService(userRepo, hasher, jwtService, nil, nil)),
		Product:  handler.NewProductHandler(catalogapp.NewProductService(productRepo, supplierRepo, nil)),
		Client:   handler.NewClientHandler(partnerapp.NewClientService(clientRepo, nil)),
		Supplier: handler.NewSupplierHandler(partnerapp.NewSupplierService(supplierRepo, nil)),
		User:     handler.NewUserHandler(identityapp.NewUserService(userRepo, hasher, nil)),
		Sale:     handler.NewSaleHandler(tradeapp.NewSaleService(saleRepo, productRepo, clientRepo, nil)),
		System:   handler.NewSystemHandler(db, "test"),
	}

	opts := Options{
		HTTP: config.HTTPConfig{
			MaxBodySize:      1 << 20,
			CORSAllowOrigins: []string{"http://localhost:3000"},
		},
		Verifier: jwtService,
	}
	if configure != nil {
		configure(&opts)
	}

	return &engineFixture{engine: New(opts, h), jwt: jwtService}
}

func (f *engineFixture) request(t *testing.T, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *engineFixture) bearer(t *testing.T) http.Header {
	t.Helper()
	pair, err := f.jwt.IssueToken("ana@loja.com")
	require.NoError(t, err)
	return http.Header{"Authorization": []string{"Bearer " + pair.Token}}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	require.NotNil(t, resp.Error, w.Body.String())
	return resp.Error.Code
}

func TestNew_PublicRoutes(t *testing.T) {
	f := newEngineFixture(t, nil)

	w := f.request(t, http.MethodPost, "/createproduto", map[string]any{"nome": "Caneta", "preco": 2}, nil)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	for _, path := range []string{"/produtos", "/clientes", "/fornecedores", "/usuarios", "/vendas", "/health", "/system/info"} {
		w := f.request(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w = f.request(t, http.MethodGet, "/vendas/produto/sum/00000000-0000-0000-0000-000000000001", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.request(t, http.MethodGet, "/api/v1/produtos", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNew_Probes(t *testing.T) {
	f := newEngineFixture(t, nil)

	w := f.request(t, http.MethodGet, "/rotaSegura", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeTokenMissing, errorCode(t, w))

	w = f.request(t, http.MethodGet, "/rotaSegura", nil, f.bearer(t))
	assert.Equal(t, http.StatusOK, w.Code)
	w = f.request(t, http.MethodGet, "/rotaProtegida", nil, f.bearer(t))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNew_ProtectCRUD(t *testing.T) {
	f := newEngineFixture(t, func(o *Options) { o.HTTP.ProtectCRUD = true })

	w := f.request(t, http.MethodGet, "/produtos", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.request(t, http.MethodGet, "/produtos", nil, f.bearer(t))
	assert.Equal(t, http.StatusOK, w.Code)

	// login and health stay public
	w = f.request(t, http.MethodPost, "/login", map[string]string{"username": "a", "email": "a@b.c", "senha": "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidCredentials, errorCode(t, w))
	assert.Equal(t, http.StatusOK, f.request(t, http.MethodGet, "/health", nil, nil).Code)
}

func TestNew_LoginRateLimit(t *testing.T) {
	store := cache.NewMemoryCounterStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	f := newEngineFixture(t, func(o *Options) {
		o.HTTP.RateLimitEnabled = true
		o.HTTP.RateLimitWindow = time.Minute
		o.LoginLimiter = middleware.NewRateLimiter(store, 2, time.Minute, nil)
	})

	body := map[string]string{"username": "a", "email": "a@b.c", "senha": "x"}
	for i := 0; i < 2; i++ {
		w := f.request(t, http.MethodPost, "/login", body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w := f.request(t, http.MethodPost, "/login", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, dto.ErrCodeRateLimited, errorCode(t, w))

	// other routes are not throttled
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, f.request(t, http.MethodGet, "/produtos", nil, nil).Code)
	}
}

func TestNew_Metrics(t *testing.T) {
	metrics, err := middleware.NewHTTPMetrics()
	require.NoError(t, err)
	f := newEngineFixture(t, func(o *Options) { o.Metrics = metrics })

	f.request(t, http.MethodGet, "/produtos", nil, nil)

	w := f.request(t, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/produtos",status="200"} 1`)
}

func TestNew_MetricsDisabled(t *testing.T) {
	f := newEngineFixture(t, nil)
	assert.Equal(t, http.StatusNotFound, f.request(t, http.MethodGet, "/metrics", nil, nil).Code)
}

func TestNew_Swagger(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		f := newEngineFixture(t, nil)
		w := f.request(t, http.MethodGet, "/swagger/index.html", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("outside the allowlist", func(t *testing.T) {
		f := newEngineFixture(t, func(o *Options) {
			o.Swagger = config.SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8"}}
		})
		w := f.request(t, http.MethodGet, "/swagger/index.html", nil, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		f := newEngineFixture(t, func(o *Options) {
			o.Swagger = config.SwaggerConfig{Enabled: true}
		})
		w := f.request(t, http.MethodGet, "/swagger/index.html", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNew_CORSAndBodyLimit(t *testing.T) {
	f := newEngineFixture(t, func(o *Options) { o.HTTP.MaxBodySize = 16 })

	req := httptest.NewRequest(http.MethodOptions, "/produtos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = f.request(t, http.MethodPost, "/createproduto", map[string]any{"nome": "Um nome bem comprido", "preco": 2}, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, dto.ErrCodeRequestTooLarge, errorCode(t, w))
}
