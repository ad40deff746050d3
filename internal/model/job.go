package model

import "time"

// Job represents a posting owned by an Employer. Exactly one of FixedSalary
// or the (SalaryFrom, SalaryTo) pair is set.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Location    string    `json:"location"`
	FixedSalary *int64    `json:"fixedSalary,omitempty"`
	SalaryFrom  *int64    `json:"salaryFrom,omitempty"`
	SalaryTo    *int64    `json:"salaryTo,omitempty"`
	Expired     bool      `json:"expired"`
	PostedBy    int64     `json:"postedBy"`
	JobPostedOn time.Time `json:"jobPostedOn"`
}

// CreateJobRequest carries the attributes for a new posting. Field presence
// and the salary shape are validated in the service layer so the API can
// return the domain's own messages.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Location    string `json:"location"`
	FixedSalary *int64 `json:"fixedSalary"`
	SalaryFrom  *int64 `json:"salaryFrom"`
	SalaryTo    *int64 `json:"salaryTo"`
}

// UpdateJobRequest is a partial patch over a posting. Pointers distinguish
// "leave alone" from "set".
type UpdateJobRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Country     *string `json:"country,omitempty"`
	City        *string `json:"city,omitempty"`
	Location    *string `json:"location,omitempty"`
	FixedSalary *int64  `json:"fixedSalary,omitempty"`
	SalaryFrom  *int64  `json:"salaryFrom,omitempty"`
	SalaryTo    *int64  `json:"salaryTo,omitempty"`
	Expired     *bool   `json:"expired,omitempty"`
}
