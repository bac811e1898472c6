package handler_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadImageEndpoint(t *testing.T) {
	userID := uuid.New()

	t.Run("Stores the image and returns its URL", func(t *testing.T) {
		router, _, images := newStoryRouter(userID)

		images.On("Save", mock.Anything, "photo.png", mock.Anything).
			Return("http://localhost:8000/uploads/abc.png", nil).Once()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake png bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+testToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http://localhost:8000/uploads/abc.png")
		images.AssertExpectations(t)
	})

	t.Run("Missing file part returns 400", func(t *testing.T) {
		router, _, images := newStoryRouter(userID)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+testToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		images.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteImageEndpoint(t *testing.T) {
	userID := uuid.New()

	t.Run("Removes the image", func(t *testing.T) {
		router, _, images := newStoryRouter(userID)

		images.On("Remove", mock.Anything, "http://localhost:8000/uploads/abc.png").
			Return(nil).Once()

		w := doJSON(t, router, http.MethodDelete,
			"/api/images?imageUrl=http%3A%2F%2Flocalhost%3A8000%2Fuploads%2Fabc.png", nil, testToken)

		assert.Equal(t, http.StatusOK, w.Code)
		images.AssertExpectations(t)
	})

	t.Run("Missing imageUrl returns 400", func(t *testing.T) {
		router, _, images := newStoryRouter(userID)

		w := doJSON(t, router, http.MethodDelete, "/api/images", nil, testToken)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		images.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("Unknown image returns 404", func(t *testing.T) {
		router, _, images := newStoryRouter(userID)

		images.On("Remove", mock.Anything, "http://localhost:8000/uploads/gone.png").
			Return(errors.New("file does not exist")).Once()

		w := doJSON(t, router, http.MethodDelete,
			"/api/images?imageUrl=http%3A%2F%2Flocalhost%3A8000%2Fuploads%2Fgone.png", nil, testToken)

		assert.Equal(t, http.StatusNotFound, w.Code)
		images.AssertExpectations(t)
	})
}
