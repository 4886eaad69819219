package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/httpresp"
	"github.com/ShineWorks01/detailing-scheduler/internal/middleware"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	"github.com/ShineWorks01/detailing-scheduler/internal/notify"
)

// ======================================================
// HANDLER — área logada do cliente
// ======================================================

type MeHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewMeHandler(db *gorm.DB, repo domain.Repository) *MeHandler {
	return &MeHandler{db: db, repo: repo}
}

func (h *MeHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, user)
}

func (h *MeHandler) MyAppointments(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	customer, err := h.repo.GetCustomerByUserID(c.Request.Context(), userID)
	if err != nil {
		// usuário sem cadastro de cliente ainda — lista vazia, não erro
		httpresp.OK(c, []models.Appointment{})
		return
	}

	aps, err := h.repo.ListByCustomer(c.Request.Context(), customer.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, aps)
}

// MyJobChannel devolve o canal redis onde o cliente recebe os updates
// de progresso dos jobs dele (o front assina via websocket/SSE gateway).
func (h *MeHandler) MyJobChannel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	customer, err := h.repo.GetCustomerByUserID(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "customer_not_found", "Cadastro de cliente não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{
		"channel": notify.CustomerChannel(customer.ID),
	})
}
