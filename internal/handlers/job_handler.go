package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShineWorks01/detailing-scheduler/internal/dto"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/httpresp"
	"github.com/ShineWorks01/detailing-scheduler/internal/middleware"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	ucJob "github.com/ShineWorks01/detailing-scheduler/internal/usecase/job"
)

// ======================================================
// HANDLER
// ======================================================

type JobHandler struct {
	db         *gorm.DB
	progressUC *ucJob.JobProgress
	notesUC    *ucJob.JobNotes
	getUC      *ucJob.GetJob
	listUC     *ucJob.ListJobs
}

func NewJobHandler(
	db *gorm.DB,
	progressUC *ucJob.JobProgress,
	notesUC *ucJob.JobNotes,
	getUC *ucJob.GetJob,
	listUC *ucJob.ListJobs,
) *JobHandler {
	return &JobHandler{
		db:         db,
		progressUC: progressUC,
		notesUC:    notesUC,
		getUC:      getUC,
		listUC:     listUC,
	}
}

// actorName resolve o nome de quem assina a ação (aparece nas etapas e
// nas notas). Cacheável, mas uma query por write não dói.
func (h *JobHandler) actorName(c *gin.Context) (uint, string) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Select("name").First(&user, userID).Error; err != nil {
		return userID, "staff"
	}
	return userID, user.Name
}

func jobIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// REQUESTS
// ======================================================

type AdvanceStageRequest struct {
	Stage string `json:"stage" binding:"required"`
	Note  string `json:"note"`
}

type SetProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

type ReportIssueRequest struct {
	Description string `json:"description" binding:"required"`
}

type HandoverRequest struct {
	RecipientName  string `json:"recipient_name" binding:"required"`
	RecipientPhone string `json:"recipient_phone"`
}

type AddNoteRequest struct {
	Content  string `json:"content" binding:"required"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}

type UpdateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// ======================================================
// READ
// ======================================================

func (h *JobHandler) List(c *gin.Context) {
	status := c.Query("status")

	jobs, err := h.listUC.Execute(c.Request.Context(), status)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.ToJobSummaries(jobs))
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	j, err := h.getUC.Execute(c.Request.Context(), id, ucJob.Requester{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, j)
}

// ======================================================
// PROGRESS
// ======================================================

func (h *JobHandler) AdvanceStage(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req AdvanceStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID, actor := h.actorName(c)

	j, err := h.progressUC.AdvanceStage(c.Request.Context(), ucJob.AdvanceStageInput{
		JobID:   id,
		Stage:   req.Stage,
		Actor:   actor,
		Note:    req.Note,
		StaffID: &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, j)
}

func (h *JobHandler) SetProgress(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req SetProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Progress == nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID, actor := h.actorName(c)

	j, err := h.progressUC.SetProgress(c.Request.Context(), ucJob.SetProgressInput{
		JobID:    id,
		Progress: *req.Progress,
		Actor:    actor,
		StaffID:  &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, j)
}

func (h *JobHandler) ReportIssue(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID, actor := h.actorName(c)

	j, err := h.progressUC.ReportIssue(c.Request.Context(), ucJob.ReportIssueInput{
		JobID:       id,
		Description: req.Description,
		Actor:       actor,
		StaffID:     &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, j)
}

func (h *JobHandler) RecordHandover(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req HandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID, actor := h.actorName(c)

	j, err := h.progressUC.RecordHandover(c.Request.Context(), ucJob.RecordHandoverInput{
		JobID:          id,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		Actor:          actor,
		StaffID:        &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, j)
}

// ======================================================
// NOTES
// ======================================================

func (h *JobHandler) AddNote(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID, actor := h.actorName(c)

	note, err := h.notesUC.Add(c.Request.Context(), ucJob.AddNoteInput{
		JobID:    id,
		Content:  req.Content,
		Author:   actor,
		Type:     req.Type,
		Priority: req.Priority,
		StaffID:  &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.Created(c, note)
}

func (h *JobHandler) UpdateNote(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	noteID, err := strconv.ParseUint(c.Param("noteId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staffID, _ := h.actorName(c)

	note, err := h.notesUC.Update(c.Request.Context(), ucJob.UpdateNoteInput{
		JobID:   id,
		NoteID:  uint(noteID),
		Content: req.Content,
		StaffID: &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, note)
}

func (h *JobHandler) DeleteNote(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	noteID, err := strconv.ParseUint(c.Param("noteId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	staffID, _ := h.actorName(c)

	if err := h.notesUC.Delete(c.Request.Context(), id, uint(noteID), &staffID); err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
