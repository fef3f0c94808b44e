package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/oakstay/hotel-booking-backend/internal/booking"
	"github.com/oakstay/hotel-booking-backend/internal/config"
)

const boundary = "----=_BOOKING_EMAIL_BOUNDARY"

// Mailer sends booking confirmation emails over SMTP. It implements
// booking.Notifier: Notify reports delivery success and never returns an
// error, since a lost email must not fail the booking that triggered it.
//
// With no SMTP host configured the mailer runs in mock mode, logging the
// message instead of sending it and reporting success.
type Mailer struct {
	cfg        config.SMTP
	adminEmail string
}

func NewMailer(cfg config.SMTP, adminEmail string) *Mailer {
	return &Mailer{cfg: cfg, adminEmail: adminEmail}
}

func (m *Mailer) Notify(ctx context.Context, b *booking.Booking) bool {
	if ctx.Err() != nil {
		return false
	}

	if m.cfg.Host == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		slog.Info("[MOCK EMAIL] booking confirmation",
			"booking_id", b.ID,
			"guest", b.GuestName,
			"to", b.GuestEmail,
		)
		return true
	}

	recipients := make([]string, 0, 2)
	if b.GuestEmail != "" {
		recipients = append(recipients, b.GuestEmail)
	}
	if m.adminEmail != "" {
		recipients = append(recipients, m.adminEmail)
	}
	if len(recipients) == 0 {
		slog.Info("booking has no guest email and no admin copy configured, skipping", "booking_id", b.ID)
		return true
	}

	msg := m.buildMessage(b, recipients)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	if err := smtp.SendMail(addr, auth, m.cfg.Username, recipients, msg); err != nil {
		slog.Warn("failed to send booking confirmation", "booking_id", b.ID, "error", err.Error())
		return false
	}

	slog.Info("booking confirmation sent", "booking_id", b.ID, "recipients", len(recipients))
	return true
}

func (m *Mailer) buildMessage(b *booking.Booking, recipients []string) []byte {
	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	name := safe(b.GuestName)
	checkIn := b.CheckIn.Format("2006-01-02")
	checkOut := b.CheckOut.Format("2006-01-02")

	numbers := make([]string, len(b.Rooms))
	for i, r := range b.Rooms {
		numbers[i] = r.RoomNumber
	}
	roomList := strings.Join(numbers, ", ")

	from := fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.Username)
	subject := fmt.Sprintf("Booking confirmed: %s to %s", checkIn, checkOut)

	plainBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your booking is confirmed.\n\n"+
			"Booking ID: %s\n"+
			"Rooms: %s\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Nights: %d\n"+
			"Total: %.2f\n\n"+
			"We look forward to hosting you.\n",
		name, b.ID, roomList, checkIn, checkOut, b.Nights, b.TotalAmount,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking confirmed</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
table { border-collapse:collapse; margin-top:12px; }
td { padding:4px 12px 4px 0; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking confirmed</h2>
    <p>Hi %s,</p>
    <p>Your booking is confirmed. Details below.</p>
    <table>
      <tr><td>Booking ID</td><td><strong>%s</strong></td></tr>
      <tr><td>Rooms</td><td>%s</td></tr>
      <tr><td>Check-in</td><td>%s</td></tr>
      <tr><td>Check-out</td><td>%s</td></tr>
      <tr><td>Nights</td><td>%d</td></tr>
      <tr><td>Total</td><td>%.2f</td></tr>
    </table>
    <p>We look forward to hosting you.</p>
  </div>
</div>
</body>
</html>`,
		name, b.ID, roomList, checkIn, checkOut, b.Nights, b.TotalAmount,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(recipients, ", ")))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return []byte(sb.String())
}
