package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/egormalkin/adboard/internal/models"
	"github.com/egormalkin/adboard/internal/services"
)

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newName := "alice2"

	tests := []struct {
		name         string
		id           string
		body         string
		mockSetup    func(m *MockUserPatcher)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "patch name only",
			id:   "1",
			body: `{"name":"alice2"}`,
			mockSetup: func(m *MockUserPatcher) {
				m.EXPECT().
					Patch(gomock.Any(), int64(1), models.UserPatch{Name: &newName}).
					Return(int64(1), nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"id": float64(1)},
		},
		{
			name: "not found",
			id:   "42",
			body: `{"name":"alice2"}`,
			mockSetup: func(m *MockUserPatcher) {
				m.EXPECT().
					Patch(gomock.Any(), int64(42), gomock.Any()).
					Return(int64(0), services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"error": "user not found"},
		},
		{
			name: "conflict",
			id:   "1",
			body: `{"name":"taken"}`,
			mockSetup: func(m *MockUserPatcher) {
				m.EXPECT().
					Patch(gomock.Any(), int64(1), gomock.Any()).
					Return(int64(0), services.ErrUserAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]any{"error": "user already exists"},
		},
		{
			name:         "invalid json",
			id:           "1",
			body:         `{invalid json}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserPatcher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateUserHandler(mockSvc)

			req := requestWithID(http.MethodPatch, "/v1/users/"+tt.id, tt.id, bytes.NewBufferString(tt.body))
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
