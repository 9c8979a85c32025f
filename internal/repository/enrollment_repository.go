package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-services/internal/models"
)

const enrollmentColumns = `id, enrollment_id, enrollment_year, semester, student_id, student_first_name, student_last_name, course_id, course_name, course_number, created_at`

const enrollmentSchema = `CREATE TABLE IF NOT EXISTS enrollments (
    id BIGSERIAL PRIMARY KEY,
    enrollment_id VARCHAR(36) NOT NULL UNIQUE,
    enrollment_year INTEGER NOT NULL,
    semester VARCHAR(16) NOT NULL,
    student_id VARCHAR(64) NOT NULL,
    student_first_name VARCHAR(255) NOT NULL,
    student_last_name VARCHAR(255) NOT NULL,
    course_id VARCHAR(64) NOT NULL,
    course_name VARCHAR(255) NOT NULL,
    course_number VARCHAR(64) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnrollmentRepository manages persistence for enrollment rows.
type EnrollmentRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB, observer QueryObserver) *EnrollmentRepository {
	return &EnrollmentRepository{db: db, observer: observer}
}

// EnsureSchema creates the enrollments table when it does not exist yet.
func (r *EnrollmentRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, enrollmentSchema); err != nil {
		return fmt.Errorf("create enrollments table: %w", err)
	}
	return nil
}

// Ping checks the connection pool.
func (r *EnrollmentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Create inserts a new enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	defer observe(r.observer, "enrollments_insert", time.Now())
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO enrollments (enrollment_id, enrollment_year, semester, student_id, student_first_name, student_last_name, course_id, course_name, course_number, created_at)
        VALUES (:enrollment_id, :enrollment_year, :semester, :student_id, :student_first_name, :student_last_name, :course_id, :course_name, :course_number, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// FindByEnrollmentID fetches an enrollment by its public identifier.
func (r *EnrollmentRepository) FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.Enrollment, error) {
	defer observe(r.observer, "enrollments_find_one", time.Now())
	query := fmt.Sprintf("SELECT %s FROM enrollments WHERE enrollment_id = $1", enrollmentColumns)
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, enrollmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find enrollment %s: %w", enrollmentID, err)
	}
	return &enrollment, nil
}

// DeleteByEnrollmentID removes the enrollment if present. Deleting an unknown
// identifier is not an error.
func (r *EnrollmentRepository) DeleteByEnrollmentID(ctx context.Context, enrollmentID string) error {
	defer observe(r.observer, "enrollments_delete", time.Now())
	if _, err := r.db.ExecContext(ctx, `DELETE FROM enrollments WHERE enrollment_id = $1`, enrollmentID); err != nil {
		return fmt.Errorf("delete enrollment %s: %w", enrollmentID, err)
	}
	return nil
}

// Each streams every enrollment row to fn in creation order.
func (r *EnrollmentRepository) Each(ctx context.Context, fn func(*models.Enrollment) error) error {
	defer observe(r.observer, "enrollments_find_all", time.Now())
	query := fmt.Sprintf("SELECT %s FROM enrollments ORDER BY id", enrollmentColumns)
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.StructScan(&enrollment); err != nil {
			return fmt.Errorf("scan enrollment: %w", err)
		}
		if err := fn(&enrollment); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate enrollments: %w", err)
	}
	return nil
}
