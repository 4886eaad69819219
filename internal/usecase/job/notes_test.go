package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/job"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

func TestJobNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("AddRequiresContent", func(t *testing.T) {
		uc := NewJobNotes(new(mockJobRepo), nil)

		_, err := uc.Add(ctx, AddNoteInput{JobID: 10})
		assert.True(t, httperr.IsBusiness(err, "missing_field"))
	})

	t.Run("AddRejectsBadType", func(t *testing.T) {
		uc := NewJobNotes(new(mockJobRepo), nil)

		_, err := uc.Add(ctx, AddNoteInput{JobID: 10, Content: "x", Type: "gossip"})
		assert.True(t, httperr.IsBusiness(err, "invalid_request"))
	})

	t.Run("AddRejectsBadPriority", func(t *testing.T) {
		uc := NewJobNotes(new(mockJobRepo), nil)

		_, err := uc.Add(ctx, AddNoteInput{JobID: 10, Content: "x", Priority: "urgent"})
		assert.True(t, httperr.IsBusiness(err, "invalid_request"))
	})

	t.Run("AddDefaultsAndMirrors", func(t *testing.T) {
		j := &models.Job{ID: 10}

		jobs := new(mockJobRepo)
		jobs.On("GetJob", mock.Anything, uint(10)).Return(j, nil)
		jobs.On("AddNote", mock.Anything, mock.Anything).Return(nil)
		jobs.On("LatestGeneralNote", mock.Anything, uint(10)).
			Return(&models.JobNote{Content: "cliente vai buscar às 18h"}, nil)
		jobs.On("UpdateJob", mock.Anything, mock.MatchedBy(func(got *models.Job) bool {
			return got.GeneralNote == "cliente vai buscar às 18h"
		})).Return(nil)

		uc := NewJobNotes(jobs, nil)

		note, err := uc.Add(ctx, AddNoteInput{
			JobID:   10,
			Content: "cliente vai buscar às 18h",
			Author:  "Maria",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.NoteGeneral, note.Type)
		assert.Equal(t, domain.PriorityMedium, note.Priority)
		jobs.AssertExpectations(t)
	})

	t.Run("MirrorUnchangedSkipsSave", func(t *testing.T) {
		j := &models.Job{ID: 10, GeneralNote: "mesma nota"}

		jobs := new(mockJobRepo)
		jobs.On("GetJob", mock.Anything, uint(10)).Return(j, nil)
		jobs.On("AddNote", mock.Anything, mock.Anything).Return(nil)
		jobs.On("LatestGeneralNote", mock.Anything, uint(10)).
			Return(&models.JobNote{Content: "mesma nota"}, nil)

		uc := NewJobNotes(jobs, nil)

		_, err := uc.Add(ctx, AddNoteInput{JobID: 10, Content: "mesma nota"})
		require.NoError(t, err)

		jobs.AssertNotCalled(t, "UpdateJob", mock.Anything, mock.Anything)
	})

	t.Run("UpdateMissingNote", func(t *testing.T) {
		jobs := new(mockJobRepo)
		jobs.On("GetJob", mock.Anything, uint(10)).Return(&models.Job{ID: 10}, nil)
		jobs.On("GetNote", mock.Anything, uint(10), uint(7)).Return(nil, assert.AnError)

		uc := NewJobNotes(jobs, nil)

		_, err := uc.Update(ctx, UpdateNoteInput{JobID: 10, NoteID: 7, Content: "novo"})
		assert.True(t, httperr.IsBusiness(err, "note_not_found"))
	})

	t.Run("DeleteRefreshesMirror", func(t *testing.T) {
		j := &models.Job{ID: 10, GeneralNote: "apagada"}

		jobs := new(mockJobRepo)
		jobs.On("GetJob", mock.Anything, uint(10)).Return(j, nil)
		jobs.On("DeleteNote", mock.Anything, uint(10), uint(7)).Return(nil)
		// sem notas general restantes o espelho esvazia
		jobs.On("LatestGeneralNote", mock.Anything, uint(10)).Return(nil, nil)
		jobs.On("UpdateJob", mock.Anything, mock.MatchedBy(func(got *models.Job) bool {
			return got.GeneralNote == ""
		})).Return(nil)

		uc := NewJobNotes(jobs, nil)

		err := uc.Delete(ctx, 10, 7, nil)
		require.NoError(t, err)
		jobs.AssertExpectations(t)
	})
}

func TestGetJobAccess(t *testing.T) {
	ctx := context.Background()
	customerID := uint(5)

	job := &models.Job{ID: 10, AppointmentID: 1}

	t.Run("StaffSeesAll", func(t *testing.T) {
		jobs := new(mockJobRepo)
		jobs.On("GetJob", mock.Anything, uint(10)).Return(job, nil)

		uc := NewGetJob(jobs, new(mockSchedRepo))

		got, err := uc.Execute(ctx, 10, Requester{UserID: 99, Role: "staff"})
		require.NoError(t, err)
		assert.Equal(t, uint(10), got.ID)
	})

	t.Run("OwnerSeesOwnJob", func(t *testing.T) {
		jobs := new(mockJobRepo)
		jobs.On("GetJob", mock.Anything, uint(10)).Return(job, nil)

		appointments := new(mockSchedRepo)
		appointments.On("GetCustomerByUserID", mock.Anything, uint(3)).
			Return(&models.Customer{ID: customerID}, nil)
		appointments.On("GetAppointment", mock.Anything, uint(1)).
			Return(&models.Appointment{ID: 1, CustomerID: &customerID}, nil)

		uc := NewGetJob(jobs, appointments)

		_, err := uc.Execute(ctx, 10, Requester{UserID: 3, Role: "customer"})
		assert.NoError(t, err)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		other := uint(77)

		jobs := new(mockJobRepo)
		jobs.On("GetJob", mock.Anything, uint(10)).Return(job, nil)

		appointments := new(mockSchedRepo)
		appointments.On("GetCustomerByUserID", mock.Anything, uint(3)).
			Return(&models.Customer{ID: other}, nil)
		appointments.On("GetAppointment", mock.Anything, uint(1)).
			Return(&models.Appointment{ID: 1, CustomerID: &customerID}, nil)

		uc := NewGetJob(jobs, appointments)

		_, err := uc.Execute(ctx, 10, Requester{UserID: 3, Role: "customer"})
		assert.True(t, httperr.IsBusiness(err, "forbidden"))
	})

	t.Run("WalkInJobForbiddenToCustomers", func(t *testing.T) {
		jobs := new(mockJobRepo)
		jobs.On("GetJob", mock.Anything, uint(10)).Return(job, nil)

		appointments := new(mockSchedRepo)
		appointments.On("GetCustomerByUserID", mock.Anything, uint(3)).
			Return(&models.Customer{ID: customerID}, nil)
		appointments.On("GetAppointment", mock.Anything, uint(1)).
			Return(&models.Appointment{ID: 1, CustomerID: nil}, nil)

		uc := NewGetJob(jobs, appointments)

		_, err := uc.Execute(ctx, 10, Requester{UserID: 3, Role: "customer"})
		assert.True(t, httperr.IsBusiness(err, "forbidden"))
	})
}
