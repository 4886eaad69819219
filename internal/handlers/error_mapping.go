package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
)

// mapBusinessError traduz os códigos de negócio dos usecases para a
// resposta HTTP certa. Tudo que não for código conhecido vira 500.
func mapBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "missing_field", "invalid_request":
		httperr.BadRequest(c, code, "Dados inválidos.")
	case "invalid_date", "invalid_date_or_time":
		httperr.BadRequest(c, code, "Data ou hora inválida.")
	case "package_not_found":
		httperr.NotFound(c, code, "Pacote de serviço não encontrado.")
	case "package_inactive":
		httperr.BadRequest(c, code, "Pacote de serviço inativo.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "job_not_found":
		httperr.NotFound(c, code, "Job não encontrado.")
	case "note_not_found":
		httperr.NotFound(c, code, "Nota não encontrada.")
	case "too_soon":
		httperr.Conflict(c, code, "Horário muito próximo — antecedência mínima não atendida.")
	case "no_bay_available":
		httperr.Conflict(c, code, "Nenhuma baia livre nesse horário.")
	case "invalid_state":
		httperr.Conflict(c, code, "Estado atual não permite essa operação.")
	case "job_already_exists":
		httperr.Conflict(c, code, "Job já existe para esse agendamento.")
	case "forbidden":
		httperr.Forbidden(c, code, "Sem acesso a esse recurso.")
	default:
		httperr.Internal(c, code, "Erro interno.")
	}
}
