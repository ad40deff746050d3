package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"job_board/internal/model"
	"job_board/internal/repository"
	"job_board/internal/storage"
)

var (
	ErrResumeRequired      = errors.New("resume file required")
	ErrInvalidResumeFormat = errors.New("invalid file type. please upload your resume in a PNG, JPEG or WEBP format")
	ErrUploadFailed        = errors.New("failed to upload resume")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied to this job")
)

// allowedResumeTypes is the content-type allow-list for resume uploads.
var allowedResumeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// uploadTimeout bounds the blob-store call so a hung upload cannot pin the
// request forever. Timeout surfaces as ErrUploadFailed.
const uploadTimeout = 30 * time.Second

// ApplicationService defines the application submission pipeline and the
// per-role listing/deletion operations.
type ApplicationService interface {
	Submit(ctx context.Context, applicantID int64, req model.SubmitApplicationRequest, resume *multipart.FileHeader) (*model.Application, error)
	ListForEmployer(ctx context.Context, employerID int64) ([]model.Application, error)
	ListForApplicant(ctx context.Context, applicantID int64) ([]model.Application, error)
	Delete(ctx context.Context, applicantID, applicationID int64) error
}

type applicationService struct {
	appRepo  repository.ApplicationRepository
	jobRepo  repository.JobRepository
	uploader storage.Uploader
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository, uploader storage.Uploader) ApplicationService {
	return &applicationService{appRepo: appRepo, jobRepo: jobRepo, uploader: uploader}
}

// Submit runs the submission pipeline: attachment and format checks, the
// duplicate check, resume upload, job resolution, field completeness, then a
// single atomic insert. The duplicate check sits before the upload so a
// rejected resubmission never leaves a stray file in the store. Nothing is
// persisted unless every prior step succeeded.
func (s *applicationService) Submit(ctx context.Context, applicantID int64, req model.SubmitApplicationRequest, resume *multipart.FileHeader) (*model.Application, error) {
	if resume == nil {
		return nil, ErrResumeRequired
	}
	if !allowedResumeTypes[resume.Header.Get("Content-Type")] {
		return nil, ErrInvalidResumeFormat
	}

	exists, err := s.appRepo.ExistsForJob(ctx, applicantID, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()
	asset, err := s.uploader.Upload(uploadCtx, resume)
	if err != nil || asset == nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if req.JobID == 0 {
		return nil, ErrJobNotFound
	}
	job, err := s.jobRepo.FindByID(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve job for application: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if req.Name == "" || req.Email == "" || req.CoverLetter == "" || req.Phone == "" || req.Address == "" {
		return nil, ErrMissingFields
	}

	app := &model.Application{
		JobID:       req.JobID,
		Name:        req.Name,
		Email:       req.Email,
		CoverLetter: req.CoverLetter,
		Phone:       req.Phone,
		Address:     req.Address,
		ApplicantID: model.Participant{User: applicantID, Role: model.RoleJobSeeker},
		// Snapshot of the job's owner at submission time, not a live reference.
		EmployerID: model.Participant{User: job.PostedBy, Role: model.RoleEmployer},
		Resume: model.Resume{
			StorageKey: asset.StorageKey,
			URL:        asset.URL,
		},
		CreatedAt: time.Now(),
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		// Two racing submissions can both pass the existence check; the unique
		// index then rejects the second insert.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application in repo: %w", err)
	}
	return app, nil
}

func (s *applicationService) ListForEmployer(ctx context.Context, employerID int64) ([]model.Application, error) {
	apps, err := s.appRepo.FindByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for employer: %w", err)
	}
	return apps, nil
}

func (s *applicationService) ListForApplicant(ctx context.Context, applicantID int64) ([]model.Application, error) {
	apps, err := s.appRepo.FindByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for applicant: %w", err)
	}
	return apps, nil
}

func (s *applicationService) Delete(ctx context.Context, applicantID, applicationID int64) error {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("failed to find application for deletion: %w", err)
	}
	if app == nil {
		return ErrApplicationNotFound
	}
	if app.ApplicantID.User != applicantID { // Only the applicant can withdraw
		return ErrForbidden
	}
	if err := s.appRepo.Delete(ctx, applicationID); err != nil {
		return fmt.Errorf("failed to delete application in repo: %w", err)
	}
	return nil
}
