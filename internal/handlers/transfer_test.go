package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-bank-transfers/internal/models"
	"github.com/sbilibin2017/gw-bank-transfers/internal/services"
)

func validTransferBody() TransferRequest {
	return TransferRequest{
		SenderAccountID:   uuid.New().String(),
		ReceiverAccountID: uuid.New().String(),
		Amount:            decimal.NewFromFloat(50.0),

		SenderUserID:        uuid.New().String(),
		SenderUsername:      "fridaklo",
		SenderAccountNumber: "1234567890",
		SenderAccountType:   "Checking",

		ReceiverUserID:        uuid.New().String(),
		ReceiverUsername:      "gracehop",
		ReceiverAccountNumber: "9876543210",
		ReceiverAccountType:   "Savings",
	}
}

func TestTransferHandler(t *testing.T) {
	transactionID := uuid.New()

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockPerformer *MockTransferPerformer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful transfer",
			requestBody: validTransferBody(),
			setupMocks: func(mockPerformer *MockTransferPerformer) {
				mockPerformer.EXPECT().
					PerformTransfer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req models.TransferRequest) (uuid.UUID, error) {
						assert.Equal(t, models.TransactionTypeAccountTransfer, req.Type)
						assert.Equal(t, "fridaklo", req.SenderUsername)
						return transactionID, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "transaction_id",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockPerformer *MockTransferPerformer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "malformed sender account id",
			requestBody: func() TransferRequest {
				body := validTransferBody()
				body.SenderAccountID = "not-a-uuid"
				return body
			}(),
			setupMocks:         func(mockPerformer *MockTransferPerformer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "validation failure",
			requestBody: validTransferBody(),
			setupMocks: func(mockPerformer *MockTransferPerformer) {
				mockPerformer.EXPECT().
					PerformTransfer(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, services.ErrInsufficientFunds)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "internal server error from performer",
			requestBody: validTransferBody(),
			setupMocks: func(mockPerformer *MockTransferPerformer) {
				mockPerformer.EXPECT().
					PerformTransfer(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPerformer := NewMockTransferPerformer(ctrl)
			tt.setupMocks(mockPerformer)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewTransferHandler(mockPerformer)
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

func TestPaymentHandler(t *testing.T) {
	transactionID := uuid.New()

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockPerformer *MockTransferPerformer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful payment",
			requestBody: func() TransferRequest {
				body := validTransferBody()
				body.PaymentMethod = "Zelle"
				return body
			}(),
			setupMocks: func(mockPerformer *MockTransferPerformer) {
				mockPerformer.EXPECT().
					PerformTransfer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req models.TransferRequest) (uuid.UUID, error) {
						assert.Equal(t, models.TransactionTypeDigitalPayment, req.Type)
						assert.Equal(t, "Zelle", req.PaymentMethod)
						return transactionID, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "transaction_id",
		},
		{
			name:        "missing payment method",
			requestBody: validTransferBody(),
			setupMocks: func(mockPerformer *MockTransferPerformer) {
				mockPerformer.EXPECT().
					PerformTransfer(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, services.ErrPaymentMethodRequired)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPerformer := NewMockTransferPerformer(ctrl)
			tt.setupMocks(mockPerformer)

			bodyBytes, _ := json.Marshal(tt.requestBody)

			req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewPaymentHandler(mockPerformer)
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
