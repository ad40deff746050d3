package repository

import (
	"context"
	"errors"
	"fmt"

	"job_board/internal/model"

	"github.com/jackc/pgx/v5"
)

// ApplicationRepository defines operations for job applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	FindByID(ctx context.Context, id int64) (*model.Application, error)
	FindByEmployer(ctx context.Context, employerID int64) ([]model.Application, error)
	FindByApplicant(ctx context.Context, applicantID int64) ([]model.Application, error)
	ExistsForJob(ctx context.Context, applicantID, jobID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	DeleteByJob(ctx context.Context, jobID int64) error
}

type applicationRepository struct {
	db DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, job_id, name, email, cover_letter, phone, address, applicant_user, applicant_role, employer_user, employer_role, resume_storage_key, resume_url, created_at`

func scanApplication(row pgx.Row, a *model.Application) error {
	return row.Scan(
		&a.ID, &a.JobID, &a.Name, &a.Email, &a.CoverLetter, &a.Phone, &a.Address,
		&a.ApplicantID.User, &a.ApplicantID.Role, &a.EmployerID.User, &a.EmployerID.Role,
		&a.Resume.StorageKey, &a.Resume.URL, &a.CreatedAt,
	)
}

// Create inserts a new application as a single atomic write
func (r *applicationRepository) Create(ctx context.Context, a *model.Application) error {
	sql := `INSERT INTO applications (job_id, name, email, cover_letter, phone, address, applicant_user, applicant_role, employer_user, employer_role, resume_storage_key, resume_url, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql,
		a.JobID, a.Name, a.Email, a.CoverLetter, a.Phone, a.Address,
		a.ApplicantID.User, a.ApplicantID.Role, a.EmployerID.User, a.EmployerID.Role,
		a.Resume.StorageKey, a.Resume.URL, a.CreatedAt,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// The (applicant_user, job_id) unique index caught a submission
			// that raced past the service's existence check.
			return fmt.Errorf("failed to create application: %w", ErrDuplicate)
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByID retrieves an application by its ID
func (r *applicationRepository) FindByID(ctx context.Context, id int64) (*model.Application, error) {
	a := &model.Application{}
	sql := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	err := scanApplication(r.db.QueryRow(ctx, sql, id), a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find application by ID: %w", err)
	}
	return a, nil
}

// FindByEmployer retrieves applications whose employer snapshot matches the given user
func (r *applicationRepository) FindByEmployer(ctx context.Context, employerID int64) ([]model.Application, error) {
	sql := `SELECT ` + applicationColumns + ` FROM applications WHERE employer_user = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications by employer: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

// FindByApplicant retrieves applications submitted by the given job seeker
func (r *applicationRepository) FindByApplicant(ctx context.Context, applicantID int64) ([]model.Application, error) {
	sql := `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_user = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications by applicant: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]model.Application, error) {
	var apps []model.Application
	for rows.Next() {
		var a model.Application
		if err := scanApplication(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}

// ExistsForJob reports whether the applicant already applied to the job
func (r *applicationRepository) ExistsForJob(ctx context.Context, applicantID, jobID int64) (bool, error) {
	var exists bool
	sql := `SELECT EXISTS (SELECT 1 FROM applications WHERE applicant_user = $1 AND job_id = $2)`
	if err := r.db.QueryRow(ctx, sql, applicantID, jobID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return exists, nil
}

// Delete removes an application
func (r *applicationRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM applications WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("application not found for deletion")
	}
	return nil
}

// DeleteByJob removes every application attached to a job. Used when a job
// posting is deleted so no application keeps a dangling reference.
func (r *applicationRepository) DeleteByJob(ctx context.Context, jobID int64) error {
	sql := `DELETE FROM applications WHERE job_id = $1`
	if _, err := r.db.Exec(ctx, sql, jobID); err != nil {
		return fmt.Errorf("failed to delete applications for job: %w", err)
	}
	return nil
}
