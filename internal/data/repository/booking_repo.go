package repository

import (
	"context"
	"errors"
	"fmt"

	"language-school/internal/data/entity"
	"language-school/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres error code raised by the
// (class_id, student_email) unique index on bookings.
const uniqueViolation = "23505"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	ExistsForStudentAndClass(ctx context.Context, email string, classID uuid.UUID) (bool, error)
	FindByStudentAndStatus(ctx context.Context, email string, status entity.PaymentStatus) ([]*entity.Booking, error)

	// State transitions
	MarkPaid(ctx context.Context, id uuid.UUID) error
	DeleteUnpaid(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, student_name, student_email, student_photo,
		                      class_id, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.StudentName,
		booking.StudentEmail,
		booking.StudentPhoto,
		booking.ClassID,
		booking.PaymentStatus,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		// The unique index is the backstop for the pre-insert existence
		// check; a violation means another booking won the race.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("create booking for %s: %w", booking.StudentEmail, ErrAlreadyBooked)
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("student_email", booking.StudentEmail),
			zap.String("class_id", booking.ClassID.String()),
		)
		return fmt.Errorf("create booking for %s: %w", booking.StudentEmail, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, student_name, student_email, student_photo, class_id,
		       payment_status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.StudentName,
		&booking.StudentEmail,
		&booking.StudentPhoto,
		&booking.ClassID,
		&booking.PaymentStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) ExistsForStudentAndClass(ctx context.Context, email string, classID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE student_email = $1 AND class_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, email, classID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check existing booking",
			zap.Error(err),
			zap.String("student_email", email),
			zap.String("class_id", classID.String()),
		)
		return false, fmt.Errorf("check booking for %s: %w", email, err)
	}

	return exists, nil
}

func (r *bookingRepository) FindByStudentAndStatus(ctx context.Context, email string, status entity.PaymentStatus) ([]*entity.Booking, error) {
	query := `
		SELECT id, student_name, student_email, student_photo, class_id,
		       payment_status, created_at, updated_at
		FROM bookings
		WHERE student_email = $1 AND payment_status = $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, email, status)
	if err != nil {
		r.log.Error("Failed to find bookings by student",
			zap.Error(err),
			zap.String("student_email", email),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings for %s: %w", email, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.StudentName,
			&booking.StudentEmail,
			&booking.StudentPhoto,
			&booking.ClassID,
			&booking.PaymentStatus,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

// MarkPaid flips the booking to paid. Conditioned on payment_status =
// 'unpaid' at write time: paying twice matches zero rows, so a booking can
// never be charged twice no matter how requests interleave.
func (r *bookingRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bookings SET payment_status = 'paid', updated_at = NOW()
	          WHERE id = $1 AND payment_status = 'unpaid'`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("mark booking %s paid: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		booking, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return fmt.Errorf("mark booking %s paid: %w", id.String(), ErrNotFound)
		}
		return fmt.Errorf("mark booking %s paid: %w", id.String(), ErrBookingPaid)
	}

	return nil
}

// DeleteUnpaid removes a booking only while it is still unpaid. Paid
// bookings have no deletion path.
func (r *bookingRepository) DeleteUnpaid(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1 AND payment_status = 'unpaid'`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		booking, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return fmt.Errorf("delete booking %s: %w", id.String(), ErrNotFound)
		}
		return fmt.Errorf("delete booking %s: %w", id.String(), ErrBookingPaid)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}
