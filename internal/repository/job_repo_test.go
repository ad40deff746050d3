package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"job_board/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobMock(t *testing.T) (pgxmock.PgxPoolIface, JobRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewJobRepository(mock)
}

func jobRowColumns() []string {
	return []string{"id", "title", "description", "category", "country", "city", "location", "fixed_salary", "salary_from", "salary_to", "expired", "posted_by", "job_posted_on"}
}

func TestJobRepository_Create(t *testing.T) {
	mock, repo := newJobMock(t)

	fixed := int64(1000)
	posted := time.Now()
	job := &model.Job{
		Title:       "Backend Engineer",
		Description: "desc",
		Category:    "Engineering",
		Country:     "Germany",
		City:        "Berlin",
		Location:    "Friedrichstr. 1",
		FixedSalary: &fixed,
		PostedBy:    5,
		JobPostedOn: posted,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO jobs`)).
		WithArgs(job.Title, job.Description, job.Category, job.Country, job.City, job.Location,
			job.FixedSalary, job.SalaryFrom, job.SalaryTo, job.Expired, job.PostedBy, job.JobPostedOn).
		WillReturnRows(pgxmock.NewRows([]string{"id", "job_posted_on"}).AddRow(int64(11), posted))

	err := repo.Create(context.Background(), job)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), job.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindOpen(t *testing.T) {
	mock, repo := newJobMock(t)

	fixed := int64(1000)
	posted := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM jobs WHERE expired = FALSE`).
		WillReturnRows(pgxmock.NewRows(jobRowColumns()).
			AddRow(int64(1), "A", "d", "c", "DE", "Berlin", "x", &fixed, (*int64)(nil), (*int64)(nil), false, int64(5), posted).
			AddRow(int64(2), "B", "d", "c", "DE", "Berlin", "y", (*int64)(nil), &fixed, &fixed, false, int64(6), posted))

	jobs, err := repo.FindOpen(context.Background())

	assert.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "A", jobs[0].Title)
	assert.Nil(t, jobs[1].FixedSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_FindByID_NotFound(t *testing.T) {
	mock, repo := newJobMock(t)

	mock.ExpectQuery(`SELECT .+ FROM jobs WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(jobRowColumns()))

	job, err := repo.FindByID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, job)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_Delete(t *testing.T) {
	mock, repo := newJobMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM jobs WHERE id = $1`)).
		WithArgs(int64(11)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 11))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_Delete_NotFound(t *testing.T) {
	mock, repo := newJobMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM jobs WHERE id = $1`)).
		WithArgs(int64(12)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 12)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
