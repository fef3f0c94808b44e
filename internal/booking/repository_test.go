package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A room must come back into circulation the moment its stay ends: the
// reservation re-check may only treat confirmed bookings as blocking, or a
// checked-out stay would 409 every overlapping range forever.
func TestReservationRecheckBlocksOnlyConfirmedStays(t *testing.T) {
	assert.Contains(t, overlapQuery, "bk.status = 'confirmed'")
	assert.NotContains(t, overlapQuery, "cancelled")
	assert.NotContains(t, overlapQuery, "completed")

	// Half-open comparison: a checkout day never conflicts with a
	// same-day checkin.
	assert.Contains(t, overlapQuery, "bk.check_in < $2")
	assert.Contains(t, overlapQuery, "bk.check_out > $3")
}
