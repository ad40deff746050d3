package service

import (
	"context"
	"testing"

	"job_board/internal/model"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func validJobRequest() model.CreateJobRequest {
	return model.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build and run the job board backend",
		Category:    "Engineering",
		Country:     "Germany",
		City:        "Berlin",
		Location:    "Friedrichstr. 1",
		FixedSalary: int64Ptr(90000),
	}
}

func newJobService() (JobService, *fakeJobRepo, *fakeAppRepo) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeAppRepo()
	return NewJobService(jobRepo, appRepo), jobRepo, appRepo
}

func TestCreateJob_FixedSalary(t *testing.T) {
	svc, _, _ := newJobService()

	job, err := svc.CreateJob(context.Background(), 7, validJobRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), job.PostedBy)
	assert.False(t, job.Expired)
	assert.NotNil(t, job.FixedSalary)
	assert.Nil(t, job.SalaryFrom)
	assert.Nil(t, job.SalaryTo)
}

func TestCreateJob_RangedSalary(t *testing.T) {
	svc, _, _ := newJobService()

	req := validJobRequest()
	req.FixedSalary = nil
	req.SalaryFrom = int64Ptr(70000)
	req.SalaryTo = int64Ptr(95000)

	job, err := svc.CreateJob(context.Background(), 7, req)

	assert.NoError(t, err)
	assert.Nil(t, job.FixedSalary)
	assert.NotNil(t, job.SalaryFrom)
	assert.NotNil(t, job.SalaryTo)
}

func TestCreateJob_SalaryShapeRejections(t *testing.T) {
	svc, _, _ := newJobService()

	cases := []struct {
		name    string
		mutate  func(*model.CreateJobRequest)
		wantErr error
	}{
		{"no salary at all", func(r *model.CreateJobRequest) {
			r.FixedSalary = nil
		}, ErrSalaryMissing},
		{"half a range", func(r *model.CreateJobRequest) {
			r.FixedSalary = nil
			r.SalaryFrom = int64Ptr(50000)
		}, ErrSalaryMissing},
		{"fixed and ranged together", func(r *model.CreateJobRequest) {
			r.SalaryFrom = int64Ptr(50000)
			r.SalaryTo = int64Ptr(60000)
		}, ErrSalaryConflict},
		{"fixed plus a stray range bound", func(r *model.CreateJobRequest) {
			r.SalaryTo = int64Ptr(60000)
		}, ErrSalaryConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validJobRequest()
			tc.mutate(&req)
			_, err := svc.CreateJob(context.Background(), 7, req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateJob_MissingDetails(t *testing.T) {
	svc, _, _ := newJobService()

	req := validJobRequest()
	req.City = ""
	_, err := svc.CreateJob(context.Background(), 7, req)

	assert.ErrorIs(t, err, ErrJobDetailsMissing)
}

func TestListMyJobs_OnlyOwnJobs(t *testing.T) {
	svc, _, _ := newJobService()

	_, err := svc.CreateJob(context.Background(), 1, validJobRequest())
	assert.NoError(t, err)
	_, err = svc.CreateJob(context.Background(), 2, validJobRequest())
	assert.NoError(t, err)

	jobs, err := svc.ListMyJobs(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, int64(1), jobs[0].PostedBy)
}

func TestListOpenJobs_FiltersExpired(t *testing.T) {
	svc, _, _ := newJobService()

	job, err := svc.CreateJob(context.Background(), 1, validJobRequest())
	assert.NoError(t, err)
	_, err = svc.CreateJob(context.Background(), 1, validJobRequest())
	assert.NoError(t, err)

	expired := true
	_, err = svc.UpdateJob(context.Background(), 1, job.ID, model.UpdateJobRequest{Expired: &expired})
	assert.NoError(t, err)

	jobs, err := svc.ListOpenJobs(context.Background())
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.NotEqual(t, job.ID, jobs[0].ID)
}

func TestUpdateJob_RevalidatesSalary(t *testing.T) {
	svc, _, _ := newJobService()

	job, err := svc.CreateJob(context.Background(), 1, validJobRequest())
	assert.NoError(t, err)

	// Switching to a ranged salary clears the fixed one
	updated, err := svc.UpdateJob(context.Background(), 1, job.ID, model.UpdateJobRequest{
		SalaryFrom: int64Ptr(60000),
		SalaryTo:   int64Ptr(80000),
	})
	assert.NoError(t, err)
	assert.Nil(t, updated.FixedSalary)
	assert.Equal(t, int64(60000), *updated.SalaryFrom)
}

func TestUpdateJob_NotOwner(t *testing.T) {
	svc, _, _ := newJobService()

	job, err := svc.CreateJob(context.Background(), 1, validJobRequest())
	assert.NoError(t, err)

	title := "Hijacked"
	_, err = svc.UpdateJob(context.Background(), 2, job.ID, model.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateJob_NotFound(t *testing.T) {
	svc, _, _ := newJobService()

	title := "Whatever"
	_, err := svc.UpdateJob(context.Background(), 1, 999, model.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestDeleteJob_CascadesApplications(t *testing.T) {
	svc, jobRepo, appRepo := newJobService()

	job, err := svc.CreateJob(context.Background(), 1, validJobRequest())
	assert.NoError(t, err)

	app := &model.Application{
		JobID:       job.ID,
		ApplicantID: model.Participant{User: 9, Role: model.RoleJobSeeker},
		EmployerID:  model.Participant{User: 1, Role: model.RoleEmployer},
	}
	assert.NoError(t, appRepo.Create(context.Background(), app))

	assert.NoError(t, svc.DeleteJob(context.Background(), 1, job.ID))

	gone, err := jobRepo.FindByID(context.Background(), job.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	remaining, err := appRepo.FindByApplicant(context.Background(), 9)
	assert.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteJob_NotOwner(t *testing.T) {
	svc, _, _ := newJobService()

	job, err := svc.CreateJob(context.Background(), 1, validJobRequest())
	assert.NoError(t, err)

	err = svc.DeleteJob(context.Background(), 2, job.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetJob_NotFound(t *testing.T) {
	svc, _, _ := newJobService()

	_, err := svc.GetJob(context.Background(), 404)
	assert.ErrorIs(t, err, ErrJobNotFound)
}
