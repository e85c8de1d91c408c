package supportcategories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mindora/mindora/internal/lib/sl"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}

func TestCategoriesHandler(t *testing.T) {
	t.Run("список категорий", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Categories", mock.Anything).Return([]string{"Anxiety management", "Positive thinking"}, nil)

		rr := httptest.NewRecorder()
		New(sl.Discard(), svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/support/categories", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `["Anxiety management","Positive thinking"]`, rr.Body.String())
	})

	t.Run("ошибка сервиса", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Categories", mock.Anything).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		New(sl.Discard(), svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/support/categories", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"failed to load categories"}`, rr.Body.String())
	})
}
