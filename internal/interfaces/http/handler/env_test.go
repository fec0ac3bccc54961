package handler

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
	"github.com/loja/backend/internal/infrastructure/config"
	"github.com/loja/backend/internal/infrastructure/persistence"
	"github.com/loja/backend/internal/interfaces/http/dto"
	"github.com/loja/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

const testJWTSecret = "handler-test-secret"

// testEnv wires real services over a throwaway sqlite file so foreign keys
// and unique constraints behave as in production
type testEnv struct {
	db     *persistence.Database
	jwt    *auth.JWTService
	engine *gin.Engine
}

func testJWTConfig(secret string) config.JWTConfig {
	return config.JWTConfig{
		Secret:                secret,
		AccessTokenExpiration: time.Hour,
		Issuer:                "loja-test",
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
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
	jwtService := auth.NewJWTService(testJWTConfig(testJWTSecret))

	authHandler := NewAuthHandler(identityapp.NewAuthService(userRepo, hasher, jwtService, nil, nil))
	productHandler := NewProductHandler(catalogapp.NewProductService(productRepo, supplierRepo, nil))
	clientHandler := NewClientHandler(partnerapp.NewClientService(clientRepo, nil))
	supplierHandler := NewSupplierHandler(partnerapp.NewSupplierService(supplierRepo, nil))
	userHandler := NewUserHandler(identityapp.NewUserService(userRepo, hasher, nil))
	saleHandler := NewSaleHandler(tradeapp.NewSaleService(saleRepo, productRepo, clientRepo, nil))
	systemHandler := NewSystemHandler(db, "test")

	r := gin.New()
	r.Use(middleware.RequestID())

	r.POST("/login", authHandler.Login)
	probes := r.Group("", middleware.JWTAuth(jwtService))
	probes.GET("/rotaSegura", authHandler.RotaSegura)
	probes.GET("/rotaProtegida", authHandler.RotaProtegida)

	r.POST("/createproduto", productHandler.Create)
	r.GET("/produtos", productHandler.List)
	r.GET("/produtos/:id", productHandler.GetByID)
	r.PUT("/produtos/:id", productHandler.Update)
	r.DELETE("/produtos/:id", productHandler.Delete)

	r.POST("/createcliente", clientHandler.Create)
	r.GET("/clientes", clientHandler.List)
	r.GET("/clientes/:id", clientHandler.GetByID)
	r.PUT("/clientes/:id", clientHandler.Update)
	r.DELETE("/clientes/:id", clientHandler.Delete)

	r.POST("/createfornecedor", supplierHandler.Create)
	r.GET("/fornecedores", supplierHandler.List)
	r.GET("/fornecedores/:id", supplierHandler.GetByID)
	r.PUT("/fornecedores/:id", supplierHandler.Update)
	r.DELETE("/fornecedores/:id", supplierHandler.Delete)

	r.POST("/createusuario", userHandler.Create)
	r.GET("/usuarios", userHandler.List)
	r.GET("/usuarios/:id", userHandler.GetByID)
	r.PUT("/usuarios/:id", userHandler.Update)
	r.DELETE("/usuarios/:id", userHandler.Delete)

	r.POST("/createvenda", saleHandler.Create)
	r.GET("/vendas", saleHandler.List)
	r.GET("/vendas/:id", saleHandler.GetByID)
	r.GET("/vendas/produto/:id", saleHandler.ByProduct)
	r.GET("/vendas/produto/sum/:id", saleHandler.SummaryByProduct)
	r.GET("/vendas/cliente/:id", saleHandler.ByClient)
	r.GET("/vendas/cliente/sum/:id", saleHandler.SummaryByClient)

	r.GET("/health", systemHandler.Health)
	r.GET("/system/info", systemHandler.Info)

	return &testEnv{db: db, jwt: jwtService, engine: r}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return e.doWithHeader(t, method, path, body, nil)
}

func (e *testEnv) doWithHeader(t *testing.T, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) dto.Response {
	t.Helper()
	var envelope struct {
		dto.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out), w.Body.String())
	}
	return envelope.Response
}

// decodeError returns the error block of a failure envelope
func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorInfo {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return *resp.Error
}

// createResource posts body to path and decodes the created record
func createResource[T any](t *testing.T, env *testEnv, path string, body any) T {
	t.Helper()
	w := env.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out T
	decodeData(t, w, &out)
	return out
}
