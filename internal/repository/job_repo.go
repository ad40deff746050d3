package repository

import (
	"context"
	"errors"
	"fmt"

	"job_board/internal/model"

	"github.com/jackc/pgx/v5"
)

// JobRepository defines operations for job postings
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id int64) (*model.Job, error)
	FindOpen(ctx context.Context) ([]model.Job, error)
	FindByEmployer(ctx context.Context, employerID int64) ([]model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id int64) error
}

type jobRepository struct {
	db DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db DB) JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `id, title, description, category, country, city, location, fixed_salary, salary_from, salary_to, expired, posted_by, job_posted_on`

func scanJob(row pgx.Row, j *model.Job) error {
	return row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Category, &j.Country, &j.City, &j.Location,
		&j.FixedSalary, &j.SalaryFrom, &j.SalaryTo, &j.Expired, &j.PostedBy, &j.JobPostedOn,
	)
}

// Create inserts a new job posting
func (r *jobRepository) Create(ctx context.Context, j *model.Job) error {
	sql := `INSERT INTO jobs (title, description, category, country, city, location, fixed_salary, salary_from, salary_to, expired, posted_by, job_posted_on)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id, job_posted_on`
	err := r.db.QueryRow(ctx, sql,
		j.Title, j.Description, j.Category, j.Country, j.City, j.Location,
		j.FixedSalary, j.SalaryFrom, j.SalaryTo, j.Expired, j.PostedBy, j.JobPostedOn,
	).Scan(&j.ID, &j.JobPostedOn)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindByID retrieves a job by its ID
func (r *jobRepository) FindByID(ctx context.Context, id int64) (*model.Job, error) {
	j := &model.Job{}
	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	err := scanJob(r.db.QueryRow(ctx, sql, id), j)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	return j, nil
}

// FindOpen retrieves all jobs that have not expired
func (r *jobRepository) FindOpen(ctx context.Context) ([]model.Job, error) {
	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE expired = FALSE ORDER BY job_posted_on DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query open jobs: %w", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

// FindByEmployer retrieves all jobs posted by a specific employer
func (r *jobRepository) FindByEmployer(ctx context.Context, employerID int64) ([]model.Job, error) {
	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE posted_by = $1 ORDER BY job_posted_on DESC`
	rows, err := r.db.Query(ctx, sql, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by employer: %w", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]model.Job, error) {
	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}

// Update persists the full attribute set of an existing job
func (r *jobRepository) Update(ctx context.Context, j *model.Job) error {
	sql := `UPDATE jobs
            SET title = $1, description = $2, category = $3, country = $4, city = $5, location = $6,
                fixed_salary = $7, salary_from = $8, salary_to = $9, expired = $10
            WHERE id = $11`
	cmdTag, err := r.db.Exec(ctx, sql,
		j.Title, j.Description, j.Category, j.Country, j.City, j.Location,
		j.FixedSalary, j.SalaryFrom, j.SalaryTo, j.Expired, j.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("job not found for update")
	}
	return nil
}

// Delete removes a job posting
func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM jobs WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("job not found for deletion")
	}
	return nil
}
