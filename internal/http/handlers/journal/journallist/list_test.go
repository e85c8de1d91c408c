package journallist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mindora/mindora/internal/http/middlewarectx"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	args := m.Called(ctx, userID)
	entries, _ := args.Get(0).([]models.JournalEntry)
	return entries, args.Error(1)
}

func TestListHandler(t *testing.T) {
	moodID := int64(3)

	tests := []struct {
		name           string
		anonymous      bool
		result         []models.JournalEntry
		err            error
		expectedStatus int
		expectedLen    int
	}{
		{
			name:           "записи",
			result:         []models.JournalEntry{{ID: 2, Content: "b", MoodID: &moodID}, {ID: 1, Content: "a"}},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:           "пусто",
			result:         []models.JournalEntry{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "без сессии",
			anonymous:      true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "ошибка сервиса",
			err:            errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if !tt.anonymous {
				svc.On("List", mock.Anything, int64(1)).Return(tt.result, tt.err)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
			if !tt.anonymous {
				req = req.WithContext(middlewarectx.WithPrincipal(req.Context(), &models.Principal{UserID: 1}))
			}
			rr := httptest.NewRecorder()
			New(sl.Discard(), svc).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.NotNil(t, got)
				assert.Len(t, got, tt.expectedLen)
			}
			svc.AssertExpectations(t)
		})
	}
}
