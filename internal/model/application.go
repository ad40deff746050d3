package model

import "time"

// Participant is a denormalized {user, role} snapshot stored on an
// Application at write time. It is never re-derived from the User record.
type Participant struct {
	User int64 `json:"user"`
	Role Role  `json:"role"`
}

// Resume points at an externally hosted file.
type Resume struct {
	StorageKey string `json:"storageKey"`
	URL        string `json:"url"`
}

// Application is a Job Seeker's submission against one Job.
type Application struct {
	ID          int64       `json:"id"`
	JobID       int64       `json:"jobId"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	CoverLetter string      `json:"coverLetter"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	ApplicantID Participant `json:"applicantID"`
	EmployerID  Participant `json:"employerID"`
	Resume      Resume      `json:"resume"`
	CreatedAt   time.Time   `json:"created_at"`
}

// SubmitApplicationRequest carries the form fields of a submission. The
// resume file arrives separately as a multipart attachment.
type SubmitApplicationRequest struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	CoverLetter string `form:"coverLetter"`
	Phone       string `form:"phone"`
	Address     string `form:"address"`
	JobID       int64  `form:"jobId"`
}
