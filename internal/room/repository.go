package room

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *Room) error
	GetByNumber(ctx context.Context, number string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, r *Room) error

	// FreeBetween returns rooms with no overlapping confirmed booking for
	// [checkIn, checkOut) under the half-open rule: an existing booking
	// [a, b) conflicts iff a < checkOut AND b > checkIn. Cancelled and
	// checked-out stays do not block, and the is_available flag is
	// deliberately ignored here.
	FreeBetween(ctx context.Context, checkIn, checkOut time.Time, category Category, roomType Type) ([]*Room, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const roomColumns = "number, category, type, price, capacity, amenities, is_available, created_at"

func scanRoom(row pgx.Row, r *Room) error {
	var category *string
	if err := row.Scan(&r.Number, &category, &r.Type, &r.Price, &r.Capacity, &r.Amenities, &r.IsAvailable, &r.CreatedAt); err != nil {
		return err
	}
	if category != nil {
		r.Category = Category(*category)
	}
	return nil
}

func nullableCategory(c Category) *string {
	if c == "" {
		return nil
	}
	s := string(c)
	return &s
}

func (repo *pgxRepository) Create(ctx context.Context, r *Room) error {
	const query = `
		INSERT INTO public.rooms (number, category, type, price, capacity, amenities, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING created_at
	`
	err := repo.pool.QueryRow(ctx, query,
		r.Number, nullableCategory(r.Category), r.Type, r.Price, r.Capacity, r.Amenities,
	).Scan(&r.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNumberTaken
		}
		return fmt.Errorf("create room failed: %w", err)
	}
	r.IsAvailable = true
	return nil
}

func (repo *pgxRepository) GetByNumber(ctx context.Context, number string) (*Room, error) {
	query := "SELECT " + roomColumns + " FROM public.rooms WHERE number = $1"

	var r Room
	if err := scanRoom(repo.pool.QueryRow(ctx, query, number), &r); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &r, nil
}

func (repo *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"number", "category", "type", "price", "capacity", "amenities", "is_available", "created_at",
		"count(*) OVER() as total_count",
	).From("public.rooms")

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.AvailableOnly {
		query = query.Where(squirrel.Eq{"is_available": true})
	}

	query = query.OrderBy("number ASC")

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
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := repo.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int

	for rows.Next() {
		var r Room
		var category *string
		if err := rows.Scan(
			&r.Number, &category, &r.Type, &r.Price, &r.Capacity, &r.Amenities, &r.IsAvailable, &r.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		if category != nil {
			r.Category = Category(*category)
		}
		rooms = append(rooms, &r)
	}

	return rooms, total, nil
}

func (repo *pgxRepository) Update(ctx context.Context, r *Room) error {
	const query = `
		UPDATE public.rooms
		SET price = $1, capacity = $2, amenities = $3, category = $4
		WHERE number = $5
	`
	ct, err := repo.pool.Exec(ctx, query,
		r.Price, r.Capacity, r.Amenities, nullableCategory(r.Category), r.Number)
	if err != nil {
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// freeBetweenCond is the anti-join deciding whether a room is taken for a
// range. Only confirmed stays block; cancelled and checked-out (completed)
// bookings release their rooms for the whole range.
const freeBetweenCond = `NOT EXISTS (
	SELECT 1
	FROM public.booking_rooms br
	JOIN public.bookings b ON br.booking_id = b.id
	WHERE br.room_number = r.number
	  AND b.status = 'confirmed'
	  AND b.check_in < ?
	  AND b.check_out > ?
)`

func (repo *pgxRepository) FreeBetween(ctx context.Context, checkIn, checkOut time.Time, category Category, roomType Type) ([]*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.number", "r.category", "r.type", "r.price", "r.capacity", "r.amenities", "r.is_available", "r.created_at",
	).
		From("public.rooms r").
		Where(squirrel.Expr(freeBetweenCond, checkOut, checkIn))

	if category != "" {
		query = query.Where(squirrel.Eq{"r.category": category})
	}
	if roomType != "" {
		query = query.Where(squirrel.Eq{"r.type": roomType})
	}

	query = query.OrderBy("r.number ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build free rooms query failed: %w", err)
	}

	rows, err := repo.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query free rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		var r Room
		var cat *string
		if err := rows.Scan(
			&r.Number, &cat, &r.Type, &r.Price, &r.Capacity, &r.Amenities, &r.IsAvailable, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan free room failed: %w", err)
		}
		if cat != nil {
			r.Category = Category(*cat)
		}
		rooms = append(rooms, &r)
	}

	return rooms, nil
}
