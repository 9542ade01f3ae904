package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/store/mocks"
	"bookcatalog/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBook = entity.Book{
	ID:     1,
	Title:  "Dune",
	Author: "Frank Herbert",
	Year:   1965,
	Price:  20,
	Genres: []string{"SCI-FI"},
}

const createDuneBody = `{"title":"Dune","author":"frank herbert","year":1965,"price":20,"genres":["SCI-FI"]}`

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestBookHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockCatalogRepository(ctrl)
	handler := NewBookHandler(mockRepo, zerolog.Nop())

	tests := []struct {
		name           string
		body           string
		setupMock      func()
		expectedStatus int
		expectedResult interface{}
	}{
		{
			name: "success",
			body: createDuneBody,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), usecase.CreateParams{
						Title:  "Dune",
						Author: "frank herbert",
						Year:   1965,
						Price:  20,
						Genres: []string{"SCI-FI"},
					}).
					Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedResult: float64(1),
		},
		{
			name: "year out of range",
			body: `{"title":"Old","author":"a b","year":1900,"price":5}`,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(0, usecase.ErrInvalidRange)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "non-positive price",
			body: `{"title":"Free","author":"a b","year":2000,"price":0}`,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(0, usecase.ErrInvalidPrice)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "duplicate title",
			body: createDuneBody,
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(0, usecase.ErrDuplicate)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing title",
			body:           `{"author":"a b","year":2000,"price":5}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"title":`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(tt.body))
			handler.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedResult != nil {
				assert.Equal(t, tt.expectedResult, decodeResult(t, w)["result"])
			}
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, decodeResult(t, w)["errorMessage"], "Error:")
			}
		})
	}
}

func TestBookHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockCatalogRepository(ctrl)
	handler := NewBookHandler(mockRepo, zerolog.Nop())

	tests := []struct {
		name           string
		target         string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "success",
			target: "/book?id=1",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), 1).Return(testBook, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/book?id=99",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), 99).Return(entity.Book{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing id",
			target:         "/book",
			setupMock:      func() {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			target:         "/book?id=abc",
			setupMock:      func() {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			handler.Get(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("book serialization", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), 1).Return(testBook, nil)

		w := httptest.NewRecorder()
		handler.Get(w, httptest.NewRequest(http.MethodGet, "/book?id=1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		result := decodeResult(t, w)["result"].(map[string]interface{})
		assert.Equal(t, float64(1), result["id"])
		assert.Equal(t, "Dune", result["title"])
		assert.Equal(t, "Frank Herbert", result["author"])
		assert.Equal(t, float64(1965), result["year"])
		assert.Equal(t, float64(20), result["price"])
		assert.Equal(t, []interface{}{"SCI-FI"}, result["genres"])
	})
}

func TestBookHandler_UpdatePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockCatalogRepository(ctrl)
	handler := NewBookHandler(mockRepo, zerolog.Nop())

	tests := []struct {
		name           string
		target         string
		setupMock      func()
		expectedStatus int
		expectedResult interface{}
	}{
		{
			name:   "success returns old price",
			target: "/book?id=1&price=25.5",
			setupMock: func() {
				mockRepo.EXPECT().UpdatePrice(gomock.Any(), 1, 25.5).Return(20.0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedResult: float64(20),
		},
		{
			name:   "not found",
			target: "/book?id=99&price=10",
			setupMock: func() {
				mockRepo.EXPECT().UpdatePrice(gomock.Any(), 99, 10.0).Return(0.0, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "non-positive price",
			target: "/book?id=1&price=-3",
			setupMock: func() {
				mockRepo.EXPECT().UpdatePrice(gomock.Any(), 1, -3.0).Return(0.0, usecase.ErrInvalidPrice)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing price",
			target:         "/book?id=1",
			setupMock:      func() {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric price",
			target:         "/book?id=1&price=cheap",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing id",
			target:         "/book?price=10",
			setupMock:      func() {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, tt.target, nil)
			handler.UpdatePrice(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedResult != nil {
				assert.Equal(t, tt.expectedResult, decodeResult(t, w)["result"])
			}
		})
	}
}

func TestBookHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockCatalogRepository(ctrl)
	handler := NewBookHandler(mockRepo, zerolog.Nop())

	t.Run("success returns remaining count", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), 1).Return(0, nil)

		w := httptest.NewRecorder()
		handler.Delete(w, httptest.NewRequest(http.MethodDelete, "/book?id=1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(0), decodeResult(t, w)["result"])
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), 7).Return(0, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		handler.Delete(w, httptest.NewRequest(http.MethodDelete, "/book?id=7", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Delete(w, httptest.NewRequest(http.MethodDelete, "/book", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
