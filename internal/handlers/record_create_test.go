package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/egormalkin/adboard/internal/models"
	"github.com/egormalkin/adboard/internal/services"
)

func TestCreateRecordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := &models.ListingDB{
		ID:         1,
		Owner:      "bob",
		Title:      "shoes",
		Descr:      "d1",
		Status:     "open",
		CreateTime: time.Unix(1700000000, 0),
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockListingCreator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"title":"shoes","descr":"d1","owner":"bob","status":"open"}`,
			mockSetup: func(m *MockListingCreator) {
				m.EXPECT().
					Create(gomock.Any(), "bob", "shoes", "d1", "open").
					Return(created, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"id":          float64(1),
				"owner":       "bob",
				"title":       "shoes",
				"descr":       "d1",
				"status":      "open",
				"create_time": float64(1700000000),
			},
		},
		{
			name: "conflict",
			body: `{"title":"shoes","descr":"d1","owner":"bob","status":"open"}`,
			mockSetup: func(m *MockListingCreator) {
				m.EXPECT().
					Create(gomock.Any(), "bob", "shoes", "d1", "open").
					Return(nil, services.ErrListingAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]any{"error": "record already exists"},
		},
		{
			name:         "missing status",
			body:         `{"title":"shoes","descr":"d1","owner":"bob"}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "missing required field: status"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
		{
			name: "internal server error",
			body: `{"title":"shoes","descr":"d1","owner":"bob","status":"open"}`,
			mockSetup: func(m *MockListingCreator) {
				m.EXPECT().
					Create(gomock.Any(), "bob", "shoes", "d1", "open").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockListingCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateRecordHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/v1/records", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
