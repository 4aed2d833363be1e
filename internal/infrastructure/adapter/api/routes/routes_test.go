package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/security"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/currency-detector/mocks/port/usecase"
)

const (
	validToken = "good-token"
	maxUpload  = 1024
)

type fakeDatabase struct{ err error }

func (d fakeDatabase) Ping(context.Context) error { return d.err }

func (d fakeDatabase) PoolMetrics() database.ConnectionPoolMetrics {
	return database.ConnectionPoolMetrics{OpenConnections: 2, InUse: 1, IdleConnections: 1, MaxOpenConnections: 25}
}

type testServer struct {
	router     *gin.Engine
	auth       *usecasemocks.MockAuthUseCase
	prediction *usecasemocks.MockPredictionUseCase
	user       *entity.User
	staticDir  string
}

func newTestServer(t *testing.T, dbErr error) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	noop := logger.NewNoopLogger()
	s := &testServer{
		router:     gin.New(),
		auth:       usecasemocks.NewMockAuthUseCase(t),
		prediction: usecasemocks.NewMockPredictionUseCase(t),
		user:       entity.RestoreUser(7, "Amina", "amina@example.com", "hash", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		staticDir:  t.TempDir(),
	}

	SetupMiddlewares(s.router, noop)
	SetupRoutes(s.router, Handlers{
		Auth:       handler.NewAuthHandler(s.auth, noop),
		Prediction: handler.NewPredictionHandler(s.prediction, maxUpload, noop),
		Health:     handler.NewHealthHandler(fakeDatabase{err: dbErr}, noop),
	}, s.auth, Options{StaticDir: s.staticDir, MaxUploadBytes: maxUpload})

	return s
}

// authorize makes validToken resolve to the test user
func (s *testServer) authorize() {
	s.auth.EXPECT().Verify(mock.Anything, validToken).Return(s.user, nil)
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withToken(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+validToken)
	return req
}

func multipartRequest(t *testing.T, field, name string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/predict/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return withToken(req)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRootAndHealth(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Currency Recognition API running"}`, w.Body.String())

	w = s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Status   string                         `json:"status"`
		Database string                         `json:"database"`
		Pool     database.ConnectionPoolMetrics `json:"pool"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "up", health.Database)
	assert.Equal(t, 2, health.Pool.OpenConnections)
	assert.Equal(t, 1, health.Pool.InUse)
	assert.Equal(t, 25, health.Pool.MaxOpenConnections)

	down := newTestServer(t, errors.New("connection refused"))
	w = down.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRegister(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.auth.EXPECT().Register(mock.Anything, usecase.RegisterRequest{
			FullName: "Amina",
			Email:    "amina@example.com",
			Password: "secret1",
		}).Return(s.user, nil)

		w := s.do(jsonRequest(http.MethodPost, "/auth/register", `{"full_name":"Amina","email":"amina@example.com","password":"secret1"}`))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":7,"full_name":"Amina","email":"amina@example.com"}`, w.Body.String())
	})

	t.Run("Duplicate", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerr.ErrDuplicateRegistration)

		w := s.do(jsonRequest(http.MethodPost, "/auth/register", `{"full_name":"Amina","email":"amina@example.com","password":"secret1"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, domainerr.CodeDuplicateRegistration, body.Code)
		assert.Equal(t, "account already registered", body.Message)
	})

	t.Run("Invalid email is rejected before the use case", func(t *testing.T) {
		s := newTestServer(t, nil)

		w := s.do(jsonRequest(http.MethodPost, "/auth/register", `{"full_name":"Amina","email":"not-an-email","password":"secret1"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decodeError(t, w).Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Token", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.auth.EXPECT().Login(mock.Anything, "amina@example.com", "secret1").
			Return(security.Token{AccessToken: "jwt", TokenType: "bearer"}, nil)

		w := s.do(jsonRequest(http.MethodPost, "/auth/login", `{"email":"amina@example.com","password":"secret1"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"access_token":"jwt","token_type":"bearer"}`, w.Body.String())
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.auth.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).
			Return(security.Token{}, domainerr.ErrInvalidCredentials)

		w := s.do(jsonRequest(http.MethodPost, "/auth/login", `{"email":"amina@example.com","password":"wrong"}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.Equal(t, domainerr.CodeInvalidCredentials, decodeError(t, w).Code)
	})
}

func TestAuthentication(t *testing.T) {
	t.Run("Missing header", func(t *testing.T) {
		s := newTestServer(t, nil)

		w := s.do(httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, domainerr.CodeUnauthenticated, decodeError(t, w).Code)
	})

	t.Run("Wrong scheme", func(t *testing.T) {
		s := newTestServer(t, nil)
		req := httptest.NewRequest(http.MethodGet, "/predict/history", nil)
		req.Header.Set("Authorization", "Basic abc")

		w := s.do(req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Rejected token", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.auth.EXPECT().Verify(mock.Anything, "expired").Return(nil, domainerr.ErrUnauthenticated)
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer expired")

		w := s.do(req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})

	t.Run("Me", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()

		w := s.do(withToken(httptest.NewRequest(http.MethodGet, "/auth/me", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":7,"email":"amina@example.com","fullname":"Amina","created_at":"2024-01-02T03:04:05Z"}`, w.Body.String())
	})
}

func TestDeleteProfile(t *testing.T) {
	s := newTestServer(t, nil)
	s.authorize()
	s.auth.EXPECT().DeleteProfile(mock.Anything, s.user).Return(nil)

	w := s.do(withToken(httptest.NewRequest(http.MethodDelete, "/auth/me", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Profile deleted successfully"}`, w.Body.String())
}

func TestPredict(t *testing.T) {
	denomination := 500
	stored := &entity.Prediction{
		ID:                11,
		UserID:            7,
		CurrencyCode:      "SDG",
		Confidence:        0.93,
		NameEn:            "Five Hundred Sudanese Pounds",
		NameAr:            "خمسمائة جنيه سوداني",
		DenominationValue: &denomination,
		ImagePath:         "/static/uploads/abc.jpg",
		Timestamp:         time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()
		s.prediction.EXPECT().Classify(mock.Anything, s.user, usecase.ImageUpload{FileName: "note.jpg", Data: []byte("jpeg-bytes")}).
			Return(&usecase.PredictionResult{Prediction: stored, QualityFlags: []string{"low_confidence"}}, nil)

		w := s.do(multipartRequest(t, "file", "note.jpg", []byte("jpeg-bytes")))

		require.Equal(t, http.StatusOK, w.Code)
		var body dto.PredictionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, uint64(11), body.ID)
		assert.Equal(t, "success", body.Status)
		assert.Equal(t, "SDG", body.CurrencyCode)
		assert.Equal(t, "/static/uploads/abc.jpg", body.ImageURL)
		assert.Equal(t, 500, *body.DenominationValue)
		assert.Equal(t, []string{"low_confidence"}, body.QualityFlags)
	})

	t.Run("Missing file field", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()

		w := s.do(multipartRequest(t, "image", "note.jpg", []byte("x")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidUpload, decodeError(t, w).Code)
	})

	t.Run("Oversized file", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()

		w := s.do(multipartRequest(t, "file", "big.jpg", bytes.Repeat([]byte("a"), maxUpload+1)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidUpload, decodeError(t, w).Code)
	})

	t.Run("Malformed classifier output", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()
		s.prediction.EXPECT().Classify(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &domainerr.MissingFieldError{Field: "confidence", Raw: "{}"})

		w := s.do(multipartRequest(t, "file", "note.jpg", []byte("x")))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, domainerr.CodeMalformedExternalResponse, decodeError(t, w).Code)
	})

	t.Run("Classifier call failure", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()
		s.prediction.EXPECT().Classify(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerr.NewExternalCallError("gemini", errors.New("quota")))

		w := s.do(multipartRequest(t, "file", "note.jpg", []byte("x")))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("Persistence failure hides details", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()
		s.prediction.EXPECT().Classify(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.Join(domainerr.ErrPersistenceFailure, errors.New("pq: secret detail")))

		w := s.do(multipartRequest(t, "file", "note.jpg", []byte("x")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, domainerr.CodePersistenceFailure, body.Code)
		assert.Equal(t, "Internal server error", body.Message)
	})
}

func TestHistoryGetClear(t *testing.T) {
	p := &entity.Prediction{ID: 3, UserID: 7, CurrencyCode: "USD", ImagePath: "/static/uploads/a.png"}

	t.Run("Empty history is an empty array", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()
		s.prediction.EXPECT().History(mock.Anything, s.user).Return(nil, nil)

		w := s.do(withToken(httptest.NewRequest(http.MethodGet, "/predict/history", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("History", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()
		s.prediction.EXPECT().History(mock.Anything, s.user).Return([]*entity.Prediction{p}, nil)

		w := s.do(withToken(httptest.NewRequest(http.MethodGet, "/predict/history", nil)))

		var body []dto.PredictionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, uint64(3), body[0].ID)
		assert.Empty(t, body[0].Status)
		assert.Nil(t, body[0].DenominationValue)
	})

	t.Run("Get", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()
		s.prediction.EXPECT().Get(mock.Anything, s.user, uint64(3)).Return(p, nil)

		w := s.do(withToken(httptest.NewRequest(http.MethodGet, "/predict/3", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Get foreign or absent", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()
		s.prediction.EXPECT().Get(mock.Anything, s.user, uint64(99)).Return(nil, domainerr.ErrPredictionNotFound)

		w := s.do(withToken(httptest.NewRequest(http.MethodGet, "/predict/99", nil)))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domainerr.CodePredictionNotFound, decodeError(t, w).Code)
	})

	t.Run("Get with malformed id", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()

		w := s.do(withToken(httptest.NewRequest(http.MethodGet, "/predict/abc", nil)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Clear", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.authorize()
		s.prediction.EXPECT().Clear(mock.Anything, s.user).Return(int64(4), nil)

		w := s.do(withToken(httptest.NewRequest(http.MethodDelete, "/predict/clear", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Prediction history cleared successfully","deleted":4}`, w.Body.String())
	})
}

func TestStaticAndCORS(t *testing.T) {
	s := newTestServer(t, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(s.staticDir, "uploads"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(s.staticDir, "uploads", "a.txt"), []byte("hello"), 0o644))

	w := s.do(httptest.NewRequest(http.MethodGet, "/static/uploads/a.txt", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", w.Body.String())

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "https://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = s.do(req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPanicRecovery(t *testing.T) {
	s := newTestServer(t, nil)
	s.router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := s.do(httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domainerr.CodeInternalServer, decodeError(t, w).Code)
}
