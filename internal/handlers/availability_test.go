package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockAvailabilityChecker)
		expectedCode int
		expectedBody string
	}{
		{
			name: "both free",
			body: `{"email":"ana@x.com","alias":"ana"}`,
			mockSetup: func(m *MockAvailabilityChecker) {
				m.EXPECT().CheckAvailability(gomock.Any(), "ana@x.com", "ana").
					Return(&models.Availability{Suggestions: []string{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"emailOcupado":false,"aliasOcupado":false,"sugerencias":[]}`,
		},
		{
			name: "alias taken",
			body: `{"email":"new@x.com","alias":"chef99"}`,
			mockSetup: func(m *MockAvailabilityChecker) {
				m.EXPECT().CheckAvailability(gomock.Any(), "new@x.com", "chef99").
					Return(&models.Availability{AliasTaken: true, Suggestions: []string{"chef991", "chef992", "chef993"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"emailOcupado":false,"aliasOcupado":true,"sugerencias":["chef991","chef992","chef993"]}`,
		},
		{
			name: "missing alias",
			body: `{"email":"ana@x.com"}`,
			mockSetup: func(m *MockAvailabilityChecker) {
				m.EXPECT().CheckAvailability(gomock.Any(), "ana@x.com", "").
					Return(nil, fmt.Errorf("%w: alias is required", apperrors.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"code":"VALIDATION_ERROR","error":"validation error: alias is required"}`,
		},
		{
			name: "storage unavailable",
			body: `{"email":"ana@x.com","alias":"ana"}`,
			mockSetup: func(m *MockAvailabilityChecker) {
				m.EXPECT().CheckAvailability(gomock.Any(), "ana@x.com", "ana").
					Return(nil, fmt.Errorf("%w: dial tcp: connection refused", apperrors.ErrStorageUnavailable))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"code":"STORAGE_UNAVAILABLE","error":"storage unavailable: dial tcp: connection refused"}`,
		},
		{
			name:         "invalid json",
			body:         `not json`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"code":"VALIDATION_ERROR","error":"validation error: invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAvailabilityChecker(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/availability", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewAvailabilityHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestAvailabilityHandler_SuggestionsNeverNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAvailabilityChecker(ctrl)
	mockSvc.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Availability{Suggestions: []string{}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/availability", bytes.NewBufferString(`{"email":"a@x.com","alias":"a"}`))
	rr := httptest.NewRecorder()
	NewAvailabilityHandler(mockSvc)(rr, req)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "[]", string(resp["sugerencias"]))
}
