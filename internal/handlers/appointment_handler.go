package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/dto"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/httpresp"
	"github.com/ShineWorks01/detailing-scheduler/internal/middleware"
	"github.com/ShineWorks01/detailing-scheduler/internal/sweeper"
	ucAppointment "github.com/ShineWorks01/detailing-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	cancelUC     *ucAppointment.CancelAppointment
	paymentUC    *ucAppointment.UpdatePayment
	listUC       *ucAppointment.ListAppointmentsByDate
	sweeper      *sweeper.Sweeper
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	paymentUC *ucAppointment.UpdatePayment,
	listUC *ucAppointment.ListAppointmentsByDate,
	sw *sweeper.Sweeper,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		paymentUC:    paymentUC,
		listUC:       listUC,
		sweeper:      sw,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WalkInAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone"`

	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
	VehicleYear  int    `json:"vehicle_year"`
	VehiclePlate string `json:"vehicle_plate"`
	VehicleInfo  string `json:"vehicle_info"`

	PackageID uint   `json:"package_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Notes     string `json:"notes"`

	// walk-in costuma pagar na hora
	PaymentStatus string `json:"payment_status"`
	PaymentMethod string `json:"payment_method"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type CancelRequest struct {
	Reason       string   `json:"reason"`
	RefundAmount *float64 `json:"refund_amount,omitempty"`
	RefundMethod string   `json:"refund_method,omitempty"`
}

type UpdatePaymentRequest struct {
	Status        string   `json:"status" binding:"required"`
	Method        string   `json:"method"`
	TransactionID string   `json:"transaction_id"`
	Amount        *float64 `json:"amount,omitempty"`
}

// ======================================================
// WALK-IN (staff na recepção)
// ======================================================

func (h *AppointmentHandler) CreateWalkIn(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req WalkInAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,

		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		VehicleYear:  req.VehicleYear,
		VehiclePlate: req.VehiclePlate,
		VehicleInfo:  req.VehicleInfo,

		PackageID: req.PackageID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,

		Origin:        domain.OriginWalkIn,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		StaffID:       &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	aps, err := h.listUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.ToAppointmentList(aps))
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: uint(id),
		Date:          req.Date,
		Time:          req.Time,
		StaffID:       &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req CancelRequest
	// corpo opcional — cancelamento sem motivo é válido
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancelUC.Execute(c.Request.Context(), ucAppointment.CancelAppointmentInput{
		AppointmentID: uint(id),
		Reason:        req.Reason,
		RefundAmount:  req.RefundAmount,
		RefundMethod:  req.RefundMethod,
		StaffID:       &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// PAYMENT
// ======================================================

func (h *AppointmentHandler) UpdatePayment(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.paymentUC.Execute(c.Request.Context(), ucAppointment.UpdatePaymentInput{
		AppointmentID: uint(id),
		Status:        req.Status,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		StaffID:       &staffID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// SWEEP (sob demanda — o cron cuida do resto)
// ======================================================

func (h *AppointmentHandler) SweepNow(c *gin.Context) {
	updated, err := h.sweeper.Run(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "sweep_failed", "Erro na varredura.")
		return
	}

	httpresp.OK(c, gin.H{"updated": updated})
}
