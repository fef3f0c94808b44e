package http

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/oakstay/hotel-booking-backend/internal/proof"
)

type fakeService struct {
	deletedID string
	deleteErr error
}

func (f *fakeService) Upload(ctx context.Context, header *multipart.FileHeader) (*proof.Proof, error) {
	return nil, proof.ErrUnsupportedType
}

func (f *fakeService) Get(ctx context.Context, id string) (*proof.Proof, error) {
	return nil, proof.ErrNotFound
}

func (f *fakeService) Download(ctx context.Context, id string) (io.ReadCloser, *proof.Proof, error) {
	return nil, nil, proof.ErrNotFound
}

func (f *fakeService) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *proof.Proof, error) {
	return nil, nil, proof.ErrNotFound
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func setupRouter(svc proof.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc))
	return r
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteProof(t *testing.T) {
	t.Run("Existing proof deleted", func(t *testing.T) {
		svc := &fakeService{}
		r := setupRouter(svc)

		w := doRequest(r, "DELETE", "/v1/proofs/11111111-1111-1111-1111-111111111111")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", svc.deletedID)
	})

	t.Run("Unknown proof returns 404", func(t *testing.T) {
		svc := &fakeService{deleteErr: proof.ErrNotFound}
		r := setupRouter(svc)

		w := doRequest(r, "DELETE", "/v1/proofs/22222222-2222-2222-2222-222222222222")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed id returns 400", func(t *testing.T) {
		svc := &fakeService{}
		r := setupRouter(svc)

		w := doRequest(r, "DELETE", "/v1/proofs/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.deletedID)
	})
}

func TestUploadWithoutFile(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := doRequest(r, "POST", "/v1/proofs")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file is required")
}
