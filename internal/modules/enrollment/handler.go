package enrollment

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
	v1.GET("/course-classes", h.ListClasses)
}

func (h *Handler) RegisterClientRoutes(client *gin.RouterGroup) {
	client.POST("/course-classes/:id/enroll", h.Enroll)
	client.GET("/my-enrollments", h.MyEnrollments)
}

func (h *Handler) Enroll(c *gin.Context) {
	classID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid class ID")
		return
	}
	userID := c.GetInt64("user_id")

	e, err := h.service.Enroll(c.Request.Context(), classID, userID)
	if err != nil {
		// the failure reason goes back verbatim: the storefront shows it
		switch {
		case errors.Is(err, ErrClassNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrClassFull):
			response.Error(c, http.StatusBadRequest, "CLASS_FULL", err.Error())
		case errors.Is(err, ErrDeadlinePassed):
			response.Error(c, http.StatusBadRequest, "DEADLINE_PASSED", err.Error())
		case errors.Is(err, ErrAlreadyEnrolled):
			response.Error(c, http.StatusBadRequest, "ALREADY_ENROLLED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to enroll")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"enrollment": e})
}

func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list classes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

func (h *Handler) MyEnrollments(c *gin.Context) {
	userID := c.GetInt64("user_id")

	rows, err := h.service.MyEnrollments(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list enrollments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrollments": rows})
}
