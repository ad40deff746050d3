package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"job_board/internal/model"
	"job_board/internal/repository"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrJobDetailsMissing = errors.New("please provide full job details")
	ErrSalaryMissing     = errors.New("please either provide fixed salary or ranged salary")
	ErrSalaryConflict    = errors.New("cannot enter fixed and ranged salary together")
	ErrForbidden         = errors.New("you do not have permission for this action")
)

// JobService defines operations on job postings
type JobService interface {
	ListOpenJobs(ctx context.Context) ([]model.Job, error)
	GetJob(ctx context.Context, jobID int64) (*model.Job, error)
	CreateJob(ctx context.Context, employerID int64, req model.CreateJobRequest) (*model.Job, error)
	ListMyJobs(ctx context.Context, employerID int64) ([]model.Job, error)
	UpdateJob(ctx context.Context, employerID, jobID int64, patch model.UpdateJobRequest) (*model.Job, error)
	DeleteJob(ctx context.Context, employerID, jobID int64) error
}

type jobService struct {
	jobRepo repository.JobRepository
	appRepo repository.ApplicationRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository, appRepo repository.ApplicationRepository) JobService {
	return &jobService{jobRepo: jobRepo, appRepo: appRepo}
}

// validateJobAttrs checks field presence and the salary shape: exactly one of
// fixedSalary or the (salaryFrom, salaryTo) pair must be set.
func validateJobAttrs(j *model.Job) error {
	if j.Title == "" || j.Description == "" || j.Category == "" || j.Country == "" || j.City == "" || j.Location == "" {
		return ErrJobDetailsMissing
	}
	hasFixed := j.FixedSalary != nil
	hasRange := j.SalaryFrom != nil && j.SalaryTo != nil
	if !hasFixed && !hasRange {
		return ErrSalaryMissing
	}
	if hasFixed && (j.SalaryFrom != nil || j.SalaryTo != nil) {
		return ErrSalaryConflict
	}
	return nil
}

func (s *jobService) ListOpenJobs(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.jobRepo.FindOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) GetJob(ctx context.Context, jobID int64) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (s *jobService) CreateJob(ctx context.Context, employerID int64, req model.CreateJobRequest) (*model.Job, error) {
	job := &model.Job{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		PostedBy:    employerID,
		JobPostedOn: time.Now(),
	}
	if err := validateJobAttrs(job); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job in repo: %w", err)
	}
	return job, nil
}

func (s *jobService) ListMyJobs(ctx context.Context, employerID int64) ([]model.Job, error) {
	jobs, err := s.jobRepo.FindByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employer jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) UpdateJob(ctx context.Context, employerID, jobID int64, patch model.UpdateJobRequest) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to find job for update: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.PostedBy != employerID { // Only the posting employer can edit
		return nil, ErrForbidden
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Category != nil {
		job.Category = *patch.Category
	}
	if patch.Country != nil {
		job.Country = *patch.Country
	}
	if patch.City != nil {
		job.City = *patch.City
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	// A patch that sets one salary shape clears the other so the record never
	// carries both.
	if patch.FixedSalary != nil {
		job.FixedSalary = patch.FixedSalary
		job.SalaryFrom = nil
		job.SalaryTo = nil
	}
	if patch.SalaryFrom != nil || patch.SalaryTo != nil {
		if patch.SalaryFrom != nil {
			job.SalaryFrom = patch.SalaryFrom
		}
		if patch.SalaryTo != nil {
			job.SalaryTo = patch.SalaryTo
		}
		job.FixedSalary = nil
	}
	if patch.Expired != nil {
		job.Expired = *patch.Expired
	}

	if err := validateJobAttrs(job); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job in repo: %w", err)
	}
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, employerID, jobID int64) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to find job for deletion: %w", err)
	}
	if job == nil {
		return ErrJobNotFound
	}
	if job.PostedBy != employerID { // Only the posting employer can delete
		return ErrForbidden
	}

	// Applications against the posting go with it, otherwise they keep a
	// dangling job reference.
	if err := s.appRepo.DeleteByJob(ctx, jobID); err != nil {
		return fmt.Errorf("failed to delete applications for job: %w", err)
	}
	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return fmt.Errorf("failed to delete job in repo: %w", err)
	}
	return nil
}
