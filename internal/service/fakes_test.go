package service

import (
	"context"
	"errors"
	"mime/multipart"

	"job_board/internal/model"
	"job_board/internal/storage"
)

// In-memory fakes for the repository and uploader ports.

type fakeUserRepo struct {
	users     map[int64]*model.User
	nextID    int64
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

type fakeJobRepo struct {
	jobs   map[int64]*model.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[int64]*model.Job), nextID: 1}
}

func (f *fakeJobRepo) Create(_ context.Context, job *model.Job) error {
	job.ID = f.nextID
	f.nextID++
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) FindByID(_ context.Context, id int64) (*model.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *j
	return &copied, nil
}

func (f *fakeJobRepo) FindOpen(_ context.Context) ([]model.Job, error) {
	var out []model.Job
	for _, j := range f.jobs {
		if !j.Expired {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) FindByEmployer(_ context.Context, employerID int64) ([]model.Job, error) {
	var out []model.Job
	for _, j := range f.jobs {
		if j.PostedBy == employerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, job *model.Job) error {
	if _, ok := f.jobs[job.ID]; !ok {
		return errors.New("job not found for update")
	}
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return errors.New("job not found for deletion")
	}
	delete(f.jobs, id)
	return nil
}

type fakeAppRepo struct {
	apps      map[int64]*model.Application
	nextID    int64
	createErr error
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: make(map[int64]*model.Application), nextID: 1}
}

func (f *fakeAppRepo) Create(_ context.Context, app *model.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	app.ID = f.nextID
	f.nextID++
	copied := *app
	f.apps[app.ID] = &copied
	return nil
}

func (f *fakeAppRepo) FindByID(_ context.Context, id int64) (*model.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppRepo) FindByEmployer(_ context.Context, employerID int64) ([]model.Application, error) {
	var out []model.Application
	for _, a := range f.apps {
		if a.EmployerID.User == employerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) FindByApplicant(_ context.Context, applicantID int64) ([]model.Application, error) {
	var out []model.Application
	for _, a := range f.apps {
		if a.ApplicantID.User == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) ExistsForJob(_ context.Context, applicantID, jobID int64) (bool, error) {
	for _, a := range f.apps {
		if a.ApplicantID.User == applicantID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.apps[id]; !ok {
		return errors.New("application not found for deletion")
	}
	delete(f.apps, id)
	return nil
}

func (f *fakeAppRepo) DeleteByJob(_ context.Context, jobID int64) error {
	for id, a := range f.apps {
		if a.JobID == jobID {
			delete(f.apps, id)
		}
	}
	return nil
}

type fakeUploader struct {
	calls int
	err   error
	asset *storage.Asset
}

func (f *fakeUploader) Upload(_ context.Context, _ *multipart.FileHeader) (*storage.Asset, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.asset != nil {
		return f.asset, nil
	}
	return &storage.Asset{StorageKey: "resumes/fake.png", URL: "/uploads/resumes/fake.png"}, nil
}
