package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oakstay/hotel-booking-backend/internal/db"
	"github.com/oakstay/hotel-booking-backend/internal/room"
)

type Repository interface {
	// CreateReservation atomically inserts the booking with its room list
	// and marks every selected room unavailable. Room existence, type and
	// date-range freedom are re-checked inside the transaction under row
	// locks, so a racing reservation for the same room fails cleanly with
	// an error naming it. Nothing is written on any failure.
	CreateReservation(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// MarkPaymentCompleted flips payment_status to completed exactly once.
	// Returns ErrNotFound for an unknown id and ErrPaymentCompleted when
	// the transition already happened.
	MarkPaymentCompleted(ctx context.Context, id string) error

	// Checkout atomically marks every room of the booking available again
	// and sets the booking status to completed. Returns the room numbers.
	Checkout(ctx context.Context, id string) ([]string, error)

	// SetEmailSent records the notification outcome. Best-effort; the
	// booking itself is already committed when this runs.
	SetEmailSent(ctx context.Context, id string, sent bool) error
}

// overlapQuery finds a selected room already held for an intersecting range.
// Only confirmed stays block: cancellation voids the claim and checkout
// (status completed) releases it, including the unused tail of an early
// checkout.
const overlapQuery = `
	SELECT br.room_number
	FROM public.booking_rooms br
	JOIN public.bookings bk ON br.booking_id = bk.id
	WHERE br.room_number = ANY($1)
	  AND bk.status = 'confirmed'
	  AND bk.check_in < $2
	  AND bk.check_out > $3
	ORDER BY br.room_number
	LIMIT 1
`

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateReservation(ctx context.Context, b *Booking) error {
	numbers := make([]string, len(b.Rooms))
	for i, sel := range b.Rooms {
		numbers[i] = sel.RoomNumber
	}

	return db.RunInTxWithRetry(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		// Lock the target room rows in number order. Two reservations
		// racing for the same room serialize here; the loser re-reads the
		// ledger after the winner committed and sees the conflict.
		const lockQuery = `
			SELECT number, type, is_available
			FROM public.rooms
			WHERE number = ANY($1)
			ORDER BY number
			FOR UPDATE
		`
		rows, err := tx.Query(ctx, lockQuery, numbers)
		if err != nil {
			return fmt.Errorf("lock rooms failed: %w", err)
		}

		type lockedRoom struct {
			roomType    room.Type
			isAvailable bool
		}
		locked := make(map[string]lockedRoom, len(numbers))
		for rows.Next() {
			var number string
			var lr lockedRoom
			if err := rows.Scan(&number, &lr.roomType, &lr.isAvailable); err != nil {
				rows.Close()
				return fmt.Errorf("scan locked room failed: %w", err)
			}
			locked[number] = lr
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("lock rooms failed: %w", err)
		}

		for _, sel := range b.Rooms {
			lr, ok := locked[sel.RoomNumber]
			if !ok {
				return ErrRoomNotFound(sel.RoomNumber)
			}
			if lr.roomType != sel.Type {
				return ErrRoomTypeMismatch(sel.RoomNumber)
			}
		}

		// Re-check the ledger for overlaps under the locks; the caller's
		// earlier availability read is not trusted.
		var conflicting string
		err = tx.QueryRow(ctx, overlapQuery, numbers, b.CheckOut, b.CheckIn).Scan(&conflicting)
		if err == nil {
			return ErrRoomUnavailable(conflicting)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check overlap failed: %w", err)
		}

		const insertBooking = `
			INSERT INTO public.bookings (
				guest_name, guest_phone, guest_email, guest_address,
				check_in, check_out, nights, total_amount,
				payment_method, payment_status, status,
				special_requests, proof_ref, email_sent
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, false)
			RETURNING id, created_at
		`
		err = tx.QueryRow(ctx, insertBooking,
			b.GuestName, b.GuestPhone, b.GuestEmail, b.GuestAddress,
			b.CheckIn, b.CheckOut, b.Nights, b.TotalAmount,
			b.PaymentMethod, b.PaymentStatus, b.Status,
			b.SpecialRequests, b.ProofRef,
		).Scan(&b.ID, &b.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		const insertRoom = `
			INSERT INTO public.booking_rooms (booking_id, room_number, category, type, price, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		batch := &pgx.Batch{}
		for i, sel := range b.Rooms {
			var category *string
			if sel.Category != "" {
				s := string(sel.Category)
				category = &s
			}
			batch.Queue(insertRoom, b.ID, sel.RoomNumber, category, sel.Type, sel.Price, i)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert booking rooms failed: %w", err)
		}

		const flipFlags = `UPDATE public.rooms SET is_available = false WHERE number = ANY($1)`
		if _, err := tx.Exec(ctx, flipFlags, numbers); err != nil {
			return fmt.Errorf("mark rooms unavailable failed: %w", err)
		}

		return nil
	})
}

const bookingColumns = `
	id, guest_name, guest_phone, guest_email, guest_address,
	check_in, check_out, nights, total_amount,
	payment_method, payment_status, status,
	special_requests, proof_ref, email_sent, created_at
`

func scanBooking(row pgx.Row, b *Booking) error {
	return row.Scan(
		&b.ID, &b.GuestName, &b.GuestPhone, &b.GuestEmail, &b.GuestAddress,
		&b.CheckIn, &b.CheckOut, &b.Nights, &b.TotalAmount,
		&b.PaymentMethod, &b.PaymentStatus, &b.Status,
		&b.SpecialRequests, &b.ProofRef, &b.EmailSent, &b.CreatedAt,
	)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := "SELECT " + bookingColumns + " FROM public.bookings WHERE id = $1"

	var b Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}

	rooms, err := r.roomsFor(ctx, []string{b.ID})
	if err != nil {
		return nil, err
	}
	b.Rooms = rooms[b.ID]
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "guest_name", "guest_phone", "guest_email", "guest_address",
		"check_in", "check_out", "nights", "total_amount",
		"payment_method", "payment_status", "status",
		"special_requests", "proof_ref", "email_sent", "created_at",
		"count(*) OVER() as total_count",
	).From("public.bookings")

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.PaymentStatus != "" {
		query = query.Where(squirrel.Eq{"payment_status": filter.PaymentStatus})
	}

	query = query.OrderBy("created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var ids []string
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.GuestName, &b.GuestPhone, &b.GuestEmail, &b.GuestAddress,
			&b.CheckIn, &b.CheckOut, &b.Nights, &b.TotalAmount,
			&b.PaymentMethod, &b.PaymentStatus, &b.Status,
			&b.SpecialRequests, &b.ProofRef, &b.EmailSent, &b.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}

	if len(ids) > 0 {
		roomsByBooking, err := r.roomsFor(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, b := range bookings {
			b.Rooms = roomsByBooking[b.ID]
		}
	}

	return bookings, total, nil
}

// roomsFor loads the selection entries for the given bookings, keyed by
// booking id, preserving selection order.
func (r *pgxRepository) roomsFor(ctx context.Context, bookingIDs []string) (map[string][]SelectedRoom, error) {
	const query = `
		SELECT booking_id, room_number, category, type, price
		FROM public.booking_rooms
		WHERE booking_id = ANY($1)
		ORDER BY booking_id, position
	`
	rows, err := r.pool.Query(ctx, query, bookingIDs)
	if err != nil {
		return nil, fmt.Errorf("load booking rooms failed: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]SelectedRoom, len(bookingIDs))
	for rows.Next() {
		var bookingID string
		var sel SelectedRoom
		var category *string
		if err := rows.Scan(&bookingID, &sel.RoomNumber, &category, &sel.Type, &sel.Price); err != nil {
			return nil, fmt.Errorf("scan booking room failed: %w", err)
		}
		if category != nil {
			sel.Category = room.Category(*category)
		}
		result[bookingID] = append(result[bookingID], sel)
	}
	return result, rows.Err()
}

func (r *pgxRepository) MarkPaymentCompleted(ctx context.Context, id string) error {
	return db.RunInTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		var status PaymentStatus
		err := tx.QueryRow(ctx,
			`SELECT payment_status FROM public.bookings WHERE id = $1 FOR UPDATE`, id,
		).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("get payment status failed: %w", err)
		}

		if status == PaymentCompleted {
			return ErrPaymentCompleted
		}

		if _, err := tx.Exec(ctx,
			`UPDATE public.bookings SET payment_status = $1 WHERE id = $2`,
			PaymentCompleted, id,
		); err != nil {
			return fmt.Errorf("update payment status failed: %w", err)
		}
		return nil
	})
}

func (r *pgxRepository) Checkout(ctx context.Context, id string) ([]string, error) {
	var numbers []string

	err := db.RunInTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		var status Status
		err := tx.QueryRow(ctx,
			`SELECT status FROM public.bookings WHERE id = $1 FOR UPDATE`, id,
		).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("get booking status failed: %w", err)
		}

		rows, err := tx.Query(ctx,
			`SELECT room_number FROM public.booking_rooms WHERE booking_id = $1 ORDER BY position`, id,
		)
		if err != nil {
			return fmt.Errorf("load booking rooms failed: %w", err)
		}
		numbers = numbers[:0]
		for rows.Next() {
			var n string
			if err := rows.Scan(&n); err != nil {
				rows.Close()
				return fmt.Errorf("scan room number failed: %w", err)
			}
			numbers = append(numbers, n)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("load booking rooms failed: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE public.rooms SET is_available = true WHERE number = ANY($1)`, numbers,
		); err != nil {
			return fmt.Errorf("mark rooms available failed: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE public.bookings SET status = $1 WHERE id = $2`, StatusCompleted, id,
		); err != nil {
			return fmt.Errorf("update booking status failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *pgxRepository) SetEmailSent(ctx context.Context, id string, sent bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE public.bookings SET email_sent = $1 WHERE id = $2`, sent, id,
	)
	if err != nil {
		return fmt.Errorf("update email_sent failed: %w", err)
	}
	return nil
}
