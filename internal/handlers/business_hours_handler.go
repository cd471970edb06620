package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendly/booking-api/internal/audit"
	"github.com/agendly/booking-api/internal/cache"
	domain "github.com/agendly/booking-api/internal/domain/schedule"
	"github.com/agendly/booking-api/internal/dto"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/middleware"
	"github.com/agendly/booking-api/internal/models"
)

type BusinessHoursHandler struct {
	db    *gorm.DB
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewBusinessHoursHandler(
	db *gorm.DB,
	availCache *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db, cache: availCache, audit: audit}
}

type BusinessHoursUpdateRequest struct {
	Days []dto.BusinessHoursDTO `json:"days" binding:"required"`
}

func (h *BusinessHoursHandler) Get(c *gin.Context) {
	var hours []models.BusinessHours
	if err := h.db.
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_business_hours"})
		return
	}

	c.JSON(http.StatusOK, dto.BusinessHoursListFromModel(hours))
}

// Update substitui o conjunto inteiro: a semana sempre é salva completa.
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	var req BusinessHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	days := dto.BusinessHoursListToModel(req.Days)

	if err := domain.ValidateHours(days); err != nil {
		code, _ := httperr.BusinessCode(err)
		httperr.BadRequest(c, code, "Horários inválidos.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("1 = 1").
			Delete(&models.BusinessHours{}).Error; err != nil {
			return err
		}
		return tx.Create(&days).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_business_hours"})
		return
	}

	h.cache.InvalidateAll(c.Request.Context())

	var userID *uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		id := v.(uint)
		userID = &id
	}
	h.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "business_hours_replaced",
		Entity: "business_hours",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
