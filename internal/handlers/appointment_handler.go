package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/agendly/booking-api/internal/domain/schedule"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/httpresp"
	"github.com/agendly/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER (dashboard)
// ======================================================

type AppointmentHandler struct {
	updateUC     *booking.UpdateAppointment
	transitionUC *booking.TransitionAppointment
	listByDateUC *booking.ListAppointmentsByDate
	listByMonth  *booking.ListAppointmentsByMonth
	tz           string
}

func NewAppointmentHandler(
	updateUC *booking.UpdateAppointment,
	transitionUC *booking.TransitionAppointment,
	listByDateUC *booking.ListAppointmentsByDate,
	listByMonth *booking.ListAppointmentsByMonth,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		updateUC:     updateUC,
		transitionUC: transitionUC,
		listByDateUC: listByDateUC,
		listByMonth:  listByMonth,
		tz:           tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Status      string `json:"status" binding:"required"`
	Notes       string `json:"notes"`
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

	date, err := parseDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// UPDATE (substituição integral)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	status := domain.Status(req.Status)
	if !domain.IsValid(status) {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), booking.UpdateAppointmentInput{
		ID:          id,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Status:      status,
		Notes:       req.Notes,
	})
	if err != nil {
		mapAppointmentErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// TRANSITIONS
// ======================================================

// Cancel é o "delete" do dashboard: transição para cancelled_by_admin,
// o registro nunca é removido.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.StatusCancelledByAdmin)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, domain.StatusNoShow)
}

func (h *AppointmentHandler) transition(c *gin.Context, to domain.Status) {
	id := c.Param("id")

	ap, err := h.transitionUC.Execute(c.Request.Context(), id, to)
	if err != nil {
		mapAppointmentErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapAppointmentErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "outside_business_hours"):
		httperr.BadRequest(c, "outside_business_hours", "Fora do horário de atendimento.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Conflito de horário.")
	case httperr.IsBusiness(err, "duplicate_appointment"):
		httperr.Conflict(c, "duplicate_appointment", "Agendamento duplicado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
	default:
		httperr.Internal(c, "appointment_operation_failed", "Erro ao processar agendamento.")
	}
}
