package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/httpresp"
	"github.com/ShineWorks01/detailing-scheduler/internal/middleware"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	ucAppointment "github.com/ShineWorks01/detailing-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER — superfície pública (site / app do cliente)
// ======================================================

type PublicHandler struct {
	db             *gorm.DB
	repo           domain.Repository
	createUC       *ucAppointment.CreateAppointment
	availabilityUC *ucAppointment.GetAvailability
	checkSlotUC    *ucAppointment.CheckSlot
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	availabilityUC *ucAppointment.GetAvailability,
	checkSlotUC *ucAppointment.CheckSlot,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		repo:           repo,
		createUC:       createUC,
		availabilityUC: availabilityUC,
		checkSlotUC:    checkSlotUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
	VehicleYear  int    `json:"vehicle_year"`
	VehiclePlate string `json:"vehicle_plate"`
	VehicleInfo  string `json:"vehicle_info"`

	PackageID uint   `json:"package_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Notes     string `json:"notes"`

	PaymentMethod string `json:"payment_method"`
}

// ======================================================
// PACKAGES (só os ativos aparecem na vitrine)
// ======================================================

func (h *PublicHandler) ListPackages(c *gin.Context) {
	var packages []models.ServicePackage
	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&packages).Error; err != nil {

		httperr.Internal(c, "failed_to_list_packages", "Erro ao listar pacotes.")
		return
	}

	httpresp.OK(c, packages)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	packageIDStr := c.Query("package_id")

	if dateStr == "" || packageIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Informe date e package_id.")
		return
	}

	packageID, err := strconv.ParseUint(packageIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_package_id", "Pacote inválido.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), dateStr, uint(packageID))
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

func (h *PublicHandler) CheckSlot(c *gin.Context) {
	dateStr := c.Query("date")
	timeStr := c.Query("time")
	packageIDStr := c.Query("package_id")

	if dateStr == "" || timeStr == "" || packageIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Informe date, time e package_id.")
		return
	}

	packageID, err := strconv.ParseUint(packageIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_package_id", "Pacote inválido.")
		return
	}

	var excludeID uint
	if raw := c.Query("exclude_appointment_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err == nil {
			excludeID = uint(parsed)
		}
	}

	result, err := h.checkSlotUC.Execute(c.Request.Context(), ucAppointment.CheckSlotInput{
		Date:                 dateStr,
		Time:                 timeStr,
		PackageID:            uint(packageID),
		ExcludeAppointmentID: excludeID,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// BOOKING (online — cliente logado ou não)
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// Se há token de cliente, amarramos direto ao cadastro dele.
	var customerID *uint
	if rawID, ok := c.Get(middleware.ContextUserID); ok {
		if userID, ok := rawID.(uint); ok {
			if customer, err := h.repo.GetCustomerByUserID(c.Request.Context(), userID); err == nil {
				customerID = &customer.ID
			}
		}
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,

		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		VehicleYear:  req.VehicleYear,
		VehiclePlate: req.VehiclePlate,
		VehicleInfo:  req.VehicleInfo,

		PackageID: req.PackageID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,

		Origin:        domain.OriginOnline,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}
