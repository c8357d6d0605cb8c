package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/claims"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/config"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository/postgresql"
	mock_server "github.com/donmoreno09/Online-Lost-And-Found-System/internal/server/mocks"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/storage"
)

func testAuth() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
}

func newTestServer(items Items, engine Engine, users Users) *Server {
	return New(items, engine, users, nil, testAuth(), nil, zap.NewNop())
}

func asCaller(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
}

func TestHandleFileClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mock_server.NewMockItems(ctrl)
	mockEngine := mock_server.NewMockEngine(ctrl)
	mockUsers := mock_server.NewMockUsers(ctrl)
	server := newTestServer(mockItems, mockEngine, mockUsers)

	validBody := map[string]interface{}{
		"firstName": "Ann",
		"lastName":  "Lee",
		"email":     "ann@x.com",
		"message":   "found it near the station",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "successful claim",
			requestBody: validBody,
			setupMocks: func() {
				mockEngine.EXPECT().
					FileClaim(gomock.Any(), "item123", "user456", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, contact claims.Contact) error {
						assert.Equal(t, "Ann", contact.FirstName)
						assert.Equal(t, "ann@x.com", contact.Email)
						return nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Claim filed. The reporter has been notified and will accept or reject your claim."}`,
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:        "validation error",
			requestBody: validBody,
			setupMocks: func() {
				mockEngine.EXPECT().
					FileClaim(gomock.Any(), "item123", "user456", gomock.Any()).
					Return(fmt.Errorf("%w: email is required", claims.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"validation failed: email is required"}`,
		},
		{
			name:        "own item",
			requestBody: validBody,
			setupMocks: func() {
				mockEngine.EXPECT().
					FileClaim(gomock.Any(), "item123", "user456", gomock.Any()).
					Return(claims.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"not allowed"}`,
		},
		{
			name:        "item already claimed",
			requestBody: validBody,
			setupMocks: func() {
				mockEngine.EXPECT().
					FileClaim(gomock.Any(), "item123", "user456", gomock.Any()).
					Return(claims.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"item is not in the required state"}`,
		},
		{
			name:        "unknown item",
			requestBody: validBody,
			setupMocks: func() {
				mockEngine.EXPECT().
					FileClaim(gomock.Any(), "item123", "user456", gomock.Any()).
					Return(claims.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"item not found"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/api/items/item123/claim", bytes.NewReader(body))
			req = mux.SetURLVars(req, map[string]string{"id": "item123"})
			req = asCaller(req, "user456")

			rr := httptest.NewRecorder()
			server.handleFileClaim(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			assert.NotContains(t, rr.Body.String(), "token")
		})
	}
}

func TestHandleResolveClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mock_server.NewMockItems(ctrl)
	mockEngine := mock_server.NewMockEngine(ctrl)
	mockUsers := mock_server.NewMockUsers(ctrl)
	server := newTestServer(mockItems, mockEngine, mockUsers)

	tests := []struct {
		name           string
		handler        func(http.ResponseWriter, *http.Request)
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "accept succeeds",
			handler: server.handleAcceptClaim,
			setupMocks: func() {
				mockEngine.EXPECT().
					ResolveClaim(gomock.Any(), "tok-1", claims.Accept).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Claim accepted. The claimant has been sent your contact details."}`,
		},
		{
			name:    "reject succeeds",
			handler: server.handleRejectClaim,
			setupMocks: func() {
				mockEngine.EXPECT().
					ResolveClaim(gomock.Any(), "tok-1", claims.Reject).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Claim rejected. The item is available again."}`,
		},
		{
			name:    "unknown and consumed tokens share a message",
			handler: server.handleAcceptClaim,
			setupMocks: func() {
				mockEngine.EXPECT().
					ResolveClaim(gomock.Any(), "tok-1", claims.Accept).
					Return(claims.ErrInvalidToken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid or unknown token"}`,
		},
		{
			name:    "expired token",
			handler: server.handleAcceptClaim,
			setupMocks: func() {
				mockEngine.EXPECT().
					ResolveClaim(gomock.Any(), "tok-1", claims.Accept).
					Return(claims.ErrExpiredToken)
			},
			expectedStatus: http.StatusGone,
			expectedBody:   `{"error":"token expired"}`,
		},
		{
			name:    "lost race maps to conflict",
			handler: server.handleAcceptClaim,
			setupMocks: func() {
				mockEngine.EXPECT().
					ResolveClaim(gomock.Any(), "tok-1", claims.Accept).
					Return(claims.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"item is not in the required state"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodPut, "/claim/accept/tok-1", nil)
			req = mux.SetURLVars(req, map[string]string{"token": "tok-1"})

			rr := httptest.NewRecorder()
			tc.handler(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestHandleReportItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mock_server.NewMockItems(ctrl)
	mockEngine := mock_server.NewMockEngine(ctrl)
	mockUsers := mock_server.NewMockUsers(ctrl)
	server := newTestServer(mockItems, mockEngine, mockUsers)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful report",
			requestBody: map[string]interface{}{
				"kind":        "found",
				"title":       "Black wallet",
				"description": "Found near the station",
				"category":    "accessories",
				"date":        "2026-02-10",
				"location": map[string]string{
					"address": "1 Main St",
					"city":    "Springfield",
					"state":   "IL",
				},
			},
			setupMocks: func() {
				mockItems.EXPECT().
					Report(gomock.Any(), "user456", gomock.Any()).
					DoAndReturn(func(_ context.Context, ownerID string, input storage.ItemInput) (*repository.Item, error) {
						assert.Equal(t, "found", input.Kind)
						assert.Equal(t, "Springfield", input.City)
						assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), input.EventDate)
						return &repository.Item{
							ID:      "item123",
							OwnerID: ownerID,
							Kind:    input.Kind,
							Title:   input.Title,
							Status:  repository.StatusAvailable,
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"item123"`,
		},
		{
			name: "bad date format",
			requestBody: map[string]interface{}{
				"kind":  "found",
				"title": "Black wallet",
				"date":  "10/02/2026",
			},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid date format. Use YYYY-MM-DD"}`,
		},
		{
			name: "validation error from the catalogue",
			requestBody: map[string]interface{}{
				"kind": "borrowed",
			},
			setupMocks: func() {
				mockItems.EXPECT().
					Report(gomock.Any(), "user456", gomock.Any()).
					Return(nil, fmt.Errorf("%w: kind must be lost or found", claims.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"validation failed: kind must be lost or found"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewReader(body))
			req = asCaller(req, "user456")

			rr := httptest.NewRecorder()
			server.handleReportItem(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				assert.Contains(t, rr.Body.String(), tc.expectedBody)
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestHandleGetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mock_server.NewMockItems(ctrl)
	mockEngine := mock_server.NewMockEngine(ctrl)
	mockUsers := mock_server.NewMockUsers(ctrl)
	server := newTestServer(mockItems, mockEngine, mockUsers)

	t.Run("pending item hides tokens and claimant contact", func(t *testing.T) {
		claimantEmail := "ann@x.com"
		acceptToken := "super-secret-accept"
		rejectToken := "super-secret-reject"
		filedAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
		expiresAt := filedAt.Add(7 * 24 * time.Hour)

		mockItems.EXPECT().
			Get(gomock.Any(), "item123").
			Return(&repository.Item{
				ID:             "item123",
				OwnerID:        "user456",
				Kind:           repository.KindFound,
				Title:          "Black wallet",
				Status:         repository.StatusPending,
				ClaimantEmail:  &claimantEmail,
				AcceptToken:    &acceptToken,
				RejectToken:    &rejectToken,
				ClaimFiledAt:   &filedAt,
				ClaimExpiresAt: &expiresAt,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/items/item123", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "item123"})

		rr := httptest.NewRecorder()
		server.handleGetItem(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"pending"`)
		assert.Contains(t, rr.Body.String(), `"filedAt"`)
		assert.NotContains(t, rr.Body.String(), acceptToken)
		assert.NotContains(t, rr.Body.String(), rejectToken)
		assert.NotContains(t, rr.Body.String(), claimantEmail)
	})

	t.Run("item not found", func(t *testing.T) {
		mockItems.EXPECT().
			Get(gomock.Any(), "missing").
			Return(nil, claims.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/items/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})

		rr := httptest.NewRecorder()
		server.handleGetItem(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"item not found"}`, rr.Body.String())
	})
}

func TestHandleListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mock_server.NewMockItems(ctrl)
	mockEngine := mock_server.NewMockEngine(ctrl)
	mockUsers := mock_server.NewMockUsers(ctrl)
	server := newTestServer(mockItems, mockEngine, mockUsers)

	t.Run("filters and paging pass through", func(t *testing.T) {
		mockItems.EXPECT().
			List(gomock.Any(), repository.ItemFilter{
				Kind:   "lost",
				Search: "wallet",
			}, 2, 5).
			Return([]*repository.Item{{ID: "item123"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/items?kind=lost&search=wallet&page=2&limit=5", nil)
		rr := httptest.NewRecorder()
		server.handleListItems(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"count":1`)
	})

	t.Run("invalid page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/items?page=zero", nil)
		rr := httptest.NewRecorder()
		server.handleListItems(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid value for 'page' parameter"}`, rr.Body.String())
	})

	t.Run("non-positive limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/items?limit=-1", nil)
		rr := httptest.NewRecorder()
		server.handleListItems(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid value for 'limit' parameter"}`, rr.Body.String())
	})
}

func TestHandleRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mock_server.NewMockItems(ctrl)
	mockEngine := mock_server.NewMockEngine(ctrl)
	mockUsers := mock_server.NewMockUsers(ctrl)
	server := newTestServer(mockItems, mockEngine, mockUsers)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"firstName": "Ann",
				"lastName":  "Lee",
				"email":     "Ann@X.com",
				"password":  "s3cret1",
				"phone":     "+1 555 0100",
			},
			setupMocks: func() {
				mockUsers.EXPECT().
					Create(gomock.Any(), "Ann", "Lee", "ann@x.com", "s3cret1", "+1 555 0100").
					Return(&repository.User{ID: "user-1", FirstName: "Ann", Email: "ann@x.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"token"`,
		},
		{
			name: "missing phone",
			requestBody: map[string]interface{}{
				"firstName": "Ann",
				"lastName":  "Lee",
				"email":     "ann@x.com",
				"password":  "s3cret1",
			},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"firstName, lastName, email and phone are required"}`,
		},
		{
			name: "short password",
			requestBody: map[string]interface{}{
				"firstName": "Ann",
				"lastName":  "Lee",
				"email":     "ann@x.com",
				"password":  "abc",
				"phone":     "+1 555 0100",
			},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"password must be at least 6 characters"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader(body))

			rr := httptest.NewRecorder()
			server.handleRegister(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				assert.Contains(t, rr.Body.String(), tc.expectedBody)
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestHandleLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockItems := mock_server.NewMockItems(ctrl)
	mockEngine := mock_server.NewMockEngine(ctrl)
	mockUsers := mock_server.NewMockUsers(ctrl)
	server := newTestServer(mockItems, mockEngine, mockUsers)

	t.Run("wrong credentials", func(t *testing.T) {
		mockUsers.EXPECT().
			Authenticate(gomock.Any(), "ann@x.com", "wrong").
			Return(nil, postgresql.ErrInvalidCredentials)

		body, err := json.Marshal(map[string]string{"email": "ann@x.com", "password": "wrong"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		server.handleLogin(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"invalid email or password"}`, rr.Body.String())
	})

	t.Run("successful login returns a usable token", func(t *testing.T) {
		mockUsers.EXPECT().
			Authenticate(gomock.Any(), "ann@x.com", "s3cret1").
			Return(&repository.User{ID: "user-1", Email: "ann@x.com"}, nil)

		body, err := json.Marshal(map[string]string{"email": "ann@x.com", "password": "s3cret1"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		server.handleLogin(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		userID, err := server.parseToken(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(
		mock_server.NewMockItems(ctrl),
		mock_server.NewMockEngine(ctrl),
		mock_server.NewMockUsers(ctrl),
	)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"caller": callerID(r)})
	})
	handler := server.authMiddleware(next)

	t.Run("missing header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"missing bearer token"}`, rr.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"invalid token"}`, rr.Body.String())
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := newTestServer(nil, nil, nil)
		other.auth.JWTSecret = "different-secret"
		token, err := other.issueToken("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token reaches the handler with the caller id", func(t *testing.T) {
		token, err := server.issueToken("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"caller":"user-1"}`, rr.Body.String())
	})
}
