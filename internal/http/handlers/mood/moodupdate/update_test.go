package moodupdate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mindora/mindora/internal/http/middlewarectx"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, userID, id int64, in models.MoodInput) error {
	return m.Called(ctx, userID, id, in).Error(0)
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление",
			id:   "5",
			body: `{"mood":5,"energy":4}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(1), int64(5), models.MoodInput{Mood: 5, Energy: 4}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Mood updated"}`,
		},
		{
			name:           "некорректный id",
			id:             "abc",
			body:           `{"mood":5,"energy":4}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid id"}`,
		},
		{
			name:           "отрицательный id",
			id:             "-3",
			body:           `{"mood":5,"energy":4}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid id"}`,
		},
		{
			name:           "ошибка валидации",
			id:             "5",
			body:           `{"mood":0,"energy":4}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"field mood is a required field"}`,
		},
		{
			name: "чужая запись",
			id:   "7",
			body: `{"mood":1,"energy":1}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(1), int64(7), mock.Anything).Return(models.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"mood not found"}`,
		},
		{
			name: "ошибка сервиса",
			id:   "7",
			body: `{"mood":1,"energy":1}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, int64(1), int64(7), mock.Anything).Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to update mood"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/moods/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = middlewarectx.WithPrincipal(ctx, &models.Principal{UserID: 1})
			rr := httptest.NewRecorder()

			New(sl.Discard(), svc).ServeHTTP(rr, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
