package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oakstay/hotel-booking-backend/internal/booking"
	"github.com/oakstay/hotel-booking-backend/internal/config"
)

func testBooking() *booking.Booking {
	return &booking.Booking{
		ID:         "11111111-1111-1111-1111-111111111111",
		GuestName:  "Ayesha Rahman",
		GuestEmail: "ayesha@example.com",
		Rooms: []booking.SelectedRoom{
			{RoomNumber: "101", Price: 1200},
			{RoomNumber: "102", Price: 1200},
		},
		CheckIn:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Nights:      2,
		TotalAmount: 4800,
	}
}

func TestNotifyMockMode(t *testing.T) {
	// No SMTP host configured: the mailer logs instead of sending and
	// reports success so bookings don't carry a false failure flag.
	m := NewMailer(config.SMTP{}, "admin@oakstay.example")

	assert.True(t, m.Notify(context.Background(), testBooking()))
}

func TestNotifyCancelledContext(t *testing.T) {
	m := NewMailer(config.SMTP{}, "admin@oakstay.example")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, m.Notify(ctx, testBooking()))
}

func TestBuildMessage(t *testing.T) {
	m := NewMailer(config.SMTP{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "mailer@oakstay.example",
		Password: "pass",
		FromName: "Oakstay Hotel",
	}, "admin@oakstay.example")

	b := testBooking()
	msg := string(m.buildMessage(b, []string{b.GuestEmail, "admin@oakstay.example"}))

	assert.Contains(t, msg, "To: ayesha@example.com, admin@oakstay.example")
	assert.Contains(t, msg, "Subject: Booking confirmed: 2026-09-10 to 2026-09-12")
	assert.Contains(t, msg, "Rooms: 101, 102")
	assert.Contains(t, msg, "multipart/alternative")
	assert.Contains(t, msg, "4800.00")
}
