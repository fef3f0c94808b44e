package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oakstay/hotel-booking-backend/internal/pkg/request"
	"github.com/oakstay/hotel-booking-backend/internal/pkg/response"
	"github.com/oakstay/hotel-booking-backend/internal/proof"
)

type Handler struct {
	proofService proof.Service
}

func NewHandler(proofService proof.Service) *Handler {
	return &Handler{
		proofService: proofService,
	}
}

type UploadResponse struct {
	Message      string  `json:"message"`
	ProofID      string  `json:"proof_id"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}

// Upload accepts a payment proof from a guest. The returned proof_id is
// what the booking request carries in its proof_ref field.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	p, err := h.proofService.Upload(c.Request.Context(), fileHeader)
	if err != nil {
		response.Error(c, err)
		return
	}

	var thumbURL *string
	if p.ThumbnailPath != nil {
		t := proof.ThumbnailURL(p.ID)
		thumbURL = &t
	}

	c.JSON(http.StatusCreated, UploadResponse{
		Message:      "proof uploaded successfully",
		ProofID:      p.ID,
		URL:          proof.ProofURL(p.ID),
		ThumbnailURL: thumbURL,
	})
}

// Delete removes a proof's record and stored files.
func (h *Handler) Delete(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proof id"})
		return
	}

	if err := h.proofService.Delete(c.Request.Context(), params.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "proof deleted"})
}

// Serve streams the proof content by ID.
func (h *Handler) Serve(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proof id"})
		return
	}

	stream, p, err := h.proofService.Download(c.Request.Context(), params.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", p.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started, nothing sensible to send.
		return
	}
}

// ServeThumbnail streams the proof's thumbnail by ID.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	var params request.ByIDRequest
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proof id"})
		return
	}

	stream, p, err := h.proofService.DownloadThumbnail(c.Request.Context(), params.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always JPEG
	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}
