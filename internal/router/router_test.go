package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aurabank/aura-api/internal/events"
	"github.com/aurabank/aura-api/internal/handler"
	"github.com/aurabank/aura-api/internal/models"
	"github.com/aurabank/aura-api/internal/repository"
	"github.com/aurabank/aura-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo, err := repository.NewMemoryUserRepository(repository.DefaultSeed())
	require.NoError(t, err)
	svc := service.NewAccountService(repo, events.NopPublisher{})
	return New(handler.NewAccountHandler(svc, svc))
}

func doRequest(router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func accountsOf(t *testing.T, router *gin.Engine, id string) map[string]decimal.Decimal {
	t.Helper()
	w := doRequest(router, http.MethodGet, "/accounts/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var accounts []models.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
	out := map[string]decimal.Decimal{}
	for _, a := range accounts {
		out[a.ID] = a.Balance
	}
	return out
}

func TestScenarios(t *testing.T) {
	router := newTestRouter(t)

	// 4 and 5: login
	w := doRequest(router, http.MethodPost, "/login", `{"id":"1234","password":"p@sswOrd"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/login", `{"id":"1234","password":"wrong"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())

	// 6: unknown user has no accounts
	w = doRequest(router, http.MethodGet, "/accounts/0000", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	// 1: successful transfer
	w = doRequest(router, http.MethodPost, "/transfer", `{"senderId":"1234","recipientId":"5678","amount":100.00}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.True(t, decimal.RequireFromString("2254.23").Equal(accountsOf(t, router, "1234")["1"]))
	assert.True(t, decimal.RequireFromString("10132.21").Equal(accountsOf(t, router, "5678")["4"]))

	// 2: insufficient funds
	w = doRequest(router, http.MethodPost, "/transfer", `{"senderId":"1234","recipientId":"5678","amount":99999}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())
	assert.True(t, decimal.RequireFromString("2254.23").Equal(accountsOf(t, router, "1234")["1"]))

	// 3: unknown sender
	w = doRequest(router, http.MethodPost, "/transfer", `{"senderId":"9999","recipientId":"5678","amount":10}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"the sender cannot be found"}`, w.Body.String())
	assert.True(t, decimal.RequireFromString("10132.21").Equal(accountsOf(t, router, "5678")["4"]))
}

func TestEmptyInputsReachTheService(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		want   string
	}{
		{"login empty password", "/login", `{"id":"1234","password":""}`, http.StatusOK, `{"success":false}`},
		{"login empty id", "/login", `{"id":"","password":"x"}`, http.StatusOK, `{"success":false}`},
		{"login empty object", "/login", `{}`, http.StatusOK, `{"success":false}`},
		{"transfer empty sender", "/transfer", `{"senderId":"","recipientId":"5678","amount":1}`, http.StatusBadRequest, `{"message":"the sender cannot be found"}`},
		{"transfer missing recipient", "/transfer", `{"senderId":"1234","amount":1}`, http.StatusBadRequest, `{"message":"the recipient cannot be found"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestAccountsBody(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/accounts/1234", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"1","isMain":true,"balance":2354.23},{"id":"2","isMain":false,"balance":235.22}]`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/accounts", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAmbientRoutes(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	doRequest(router, http.MethodPost, "/transfer", `{"senderId":"1234","recipientId":"5678","amount":1}`)
	w = doRequest(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "aura_transfers_total")
	assert.Contains(t, w.Body.String(), "aura_http_request_duration_seconds")

	w = doRequest(router, http.MethodGet, "/swagger/index.html", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/transfer", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
