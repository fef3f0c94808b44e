package proof

import (
	"net/http"
	"time"

	"github.com/oakstay/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "proof not found")
	ErrNoThumbnail     = apperror.New(http.StatusNotFound, "no thumbnail available for this proof")
	ErrTooLarge        = apperror.New(http.StatusBadRequest, "file exceeds the maximum allowed size")
	ErrUnsupportedType = apperror.New(http.StatusBadRequest, "only images and PDF documents are accepted")
)

// Proof is a payment proof document uploaded by a guest. Bookings reference
// it through their proof_ref field; the proof itself carries no booking link
// because guests upload it before the booking exists.
type Proof struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"`
	ThumbnailPath *string   `json:"-"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProofURL returns the admin-facing URL for viewing a proof by its ID.
func ProofURL(id string) string {
	return "/proofs/" + id
}

// ThumbnailURL returns the admin-facing URL for a proof's thumbnail.
func ThumbnailURL(id string) string {
	return "/proofs/" + id + "/thumbnail"
}
