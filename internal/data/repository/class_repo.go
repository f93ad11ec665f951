package repository

import (
	"context"
	"fmt"

	"language-school/internal/data/entity"
	"language-school/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	FindAll(ctx context.Context) ([]*entity.Class, error)
	FindByStatus(ctx context.Context, status entity.ClassStatus) ([]*entity.Class, error)
	FindByInstructorEmail(ctx context.Context, email string) ([]*entity.Class, error)
	FindPopular(ctx context.Context, limit int) ([]*entity.Class, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ClassStatus) error
	UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) error

	// Seat counters (owned by the booking engine)
	ReserveSeat(ctx context.Context, id uuid.UUID) error
	ReleaseSeat(ctx context.Context, id uuid.UUID) error
}

type classRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassRepository(db database.PgxIface, log *zap.Logger) ClassRepository {
	return &classRepository{
		db:  db,
		log: log.With(zap.String("repository", "class")),
	}
}

const classColumns = `id, name, instructor_name, instructor_email, image, price,
	       total_seats, available_seats, enrolled_students, status, feedback,
	       created_at, updated_at`

func scanClass(row pgx.Row) (*entity.Class, error) {
	var class entity.Class
	err := row.Scan(
		&class.ID,
		&class.Name,
		&class.InstructorName,
		&class.InstructorEmail,
		&class.Image,
		&class.Price,
		&class.TotalSeats,
		&class.AvailableSeats,
		&class.EnrolledStudents,
		&class.Status,
		&class.Feedback,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) Create(ctx context.Context, class *entity.Class) error {
	query := `
		INSERT INTO classes (id, name, instructor_name, instructor_email, image, price,
		                     total_seats, available_seats, enrolled_students, status,
		                     feedback, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		class.ID,
		class.Name,
		class.InstructorName,
		class.InstructorEmail,
		class.Image,
		class.Price,
		class.TotalSeats,
		class.AvailableSeats,
		class.EnrolledStudents,
		class.Status,
		class.Feedback,
		class.CreatedAt,
		class.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create class",
			zap.Error(err),
			zap.String("name", class.Name),
			zap.String("instructor_email", class.InstructorEmail),
		)
		return fmt.Errorf("create class %s: %w", class.Name, err)
	}

	return nil
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`

	class, err := scanClass(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find class by ID",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return nil, fmt.Errorf("find class by ID %s: %w", id.String(), err)
	}

	return class, nil
}

func (r *classRepository) FindAll(ctx context.Context) ([]*entity.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY created_at DESC`
	return r.queryClasses(ctx, "find all classes", query)
}

func (r *classRepository) FindByStatus(ctx context.Context, status entity.ClassStatus) ([]*entity.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE status = $1 ORDER BY created_at DESC`
	return r.queryClasses(ctx, "find classes by status", query, status)
}

func (r *classRepository) FindByInstructorEmail(ctx context.Context, email string) ([]*entity.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE instructor_email = $1 ORDER BY created_at DESC`
	return r.queryClasses(ctx, "find classes by instructor", query, email)
}

// FindPopular returns approved classes ordered by enrollment, highest first.
func (r *classRepository) FindPopular(ctx context.Context, limit int) ([]*entity.Class, error) {
	query := `SELECT ` + classColumns + `
		FROM classes
		WHERE status = 'approved'
		ORDER BY enrolled_students DESC
		LIMIT $1`
	return r.queryClasses(ctx, "find popular classes", query, limit)
}

func (r *classRepository) queryClasses(ctx context.Context, op, query string, args ...any) ([]*entity.Class, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query classes", zap.Error(err), zap.String("op", op))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var classes []*entity.Class
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			r.log.Error("Failed to scan class row", zap.Error(err))
			return nil, fmt.Errorf("scan class row: %w", err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate class rows: %w", err)
	}

	return classes, nil
}

// UpdateStatus overwrites the approval status. Re-applying the same status
// is a no-op success, so approve/deny are idempotent.
func (r *classRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ClassStatus) error {
	query := `UPDATE classes SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update class status",
			zap.Error(err),
			zap.String("class_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update class %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update class %s status: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *classRepository) UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) error {
	query := `UPDATE classes SET feedback = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, feedback)
	if err != nil {
		r.log.Error("Failed to update class feedback",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return fmt.Errorf("update class %s feedback: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update class %s feedback: %w", id.String(), ErrNotFound)
	}

	return nil
}

// ReserveSeat moves one seat from available to enrolled in a single
// conditional update. The precondition available_seats > 0 is evaluated at
// write time, so two concurrent reservations of the last seat resolve to
// exactly one winner; the loser gets ErrNoSeatsAvailable.
func (r *classRepository) ReserveSeat(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE classes
		SET available_seats = available_seats - 1,
		    enrolled_students = enrolled_students + 1,
		    updated_at = NOW()
		WHERE id = $1 AND available_seats > 0
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to reserve seat",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return fmt.Errorf("reserve seat for class %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		// Either the class is full or it does not exist
		class, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if class == nil {
			return fmt.Errorf("reserve seat for class %s: %w", id.String(), ErrNotFound)
		}
		return fmt.Errorf("reserve seat for class %s: %w", id.String(), ErrNoSeatsAvailable)
	}

	return nil
}

// ReleaseSeat undoes a reservation when the booking side of the payment
// fails. Conditioned on enrolled_students > 0 so a stray release can never
// mint seats out of nothing.
func (r *classRepository) ReleaseSeat(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE classes
		SET available_seats = available_seats + 1,
		    enrolled_students = enrolled_students - 1,
		    updated_at = NOW()
		WHERE id = $1 AND enrolled_students > 0
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to release seat",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return fmt.Errorf("release seat for class %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("release seat for class %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
