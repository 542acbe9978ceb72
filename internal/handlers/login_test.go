package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-bank-transfers/internal/services"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockLoginer *MockLoginer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful login",
			requestBody: LoginRequest{
				Username: "fridaklo",
				Password: "secret123",
			},
			setupMocks: func(mockLoginer *MockLoginer) {
				mockLoginer.EXPECT().
					Login(gomock.Any(), "fridaklo", "secret123").
					Return("token-123", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "token",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockLoginer *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "unknown user",
			requestBody: LoginRequest{
				Username: "nobody",
				Password: "secret123",
			},
			setupMocks: func(mockLoginer *MockLoginer) {
				mockLoginer.EXPECT().
					Login(gomock.Any(), "nobody", "secret123").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "invalid credentials",
			requestBody: LoginRequest{
				Username: "fridaklo",
				Password: "wrong",
			},
			setupMocks: func(mockLoginer *MockLoginer) {
				mockLoginer.EXPECT().
					Login(gomock.Any(), "fridaklo", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "internal server error",
			requestBody: LoginRequest{
				Username: "fridaklo",
				Password: "secret123",
			},
			setupMocks: func(mockLoginer *MockLoginer) {
				mockLoginer.EXPECT().
					Login(gomock.Any(), "fridaklo", "secret123").
					Return("", assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLoginer := NewMockLoginer(ctrl)
			tt.setupMocks(mockLoginer)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewLoginHandler(mockLoginer)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
