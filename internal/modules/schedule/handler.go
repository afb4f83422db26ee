package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"salonbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/public/appointments", h.ListPublic)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/appointments", h.Create)
	admin.GET("/appointments", h.ListAdmin)
}

func (h *Handler) RegisterClientRoutes(client *gin.RouterGroup) {
	client.GET("/my-appointments", h.MyAppointments)
	client.PATCH("/appointments/:id/book", h.Book)
	client.PATCH("/appointments/:id/cancel", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.CreateSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, times, or start not before end")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Service does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create appointment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment": a})
}

func (h *Handler) ListAdmin(c *gin.Context) {
	h.list(c, true)
}

func (h *Handler) ListPublic(c *gin.Context) {
	h.list(c, false)
}

func (h *Handler) list(c *gin.Context, adminView bool) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'date' is required")
		return
	}

	rows, err := h.service.ListDay(c.Request.Context(), date, adminView)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list appointments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointments": rows})
}

func (h *Handler) MyAppointments(c *gin.Context) {
	clientID := c.GetInt64("user_id")

	rows, err := h.service.MyAppointments(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list appointments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointments": rows})
}

func (h *Handler) Book(c *gin.Context) {
	slotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment ID")
		return
	}
	clientID := c.GetInt64("user_id")

	a, err := h.service.BookSlot(c.Request.Context(), slotID, clientID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found or no longer available")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to book appointment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) Cancel(c *gin.Context) {
	slotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment ID")
		return
	}
	clientID := c.GetInt64("user_id")

	a, err := h.service.CancelSlot(c.Request.Context(), slotID, clientID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found or does not belong to you")
		case errors.Is(err, ErrPastAppointment):
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "Past appointments cannot be canceled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to cancel appointment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}
