package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/egormalkin/adboard/internal/services"
)

func TestDeleteRecordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockListingDeleter)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			id:   "1",
			mockSetup: func(m *MockListingDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"status": "deleted"},
		},
		{
			name: "not found",
			id:   "42",
			mockSetup: func(m *MockListingDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(42)).Return(services.ErrListingNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"error": "record not found"},
		},
		{
			name: "internal server error",
			id:   "1",
			mockSetup: func(m *MockListingDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListingDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewDeleteRecordHandler(mockSvc)

			req := requestWithID(http.MethodDelete, "/v1/records/"+tt.id, tt.id, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
