package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	v1.GET("/services", h.ListServices)
	v1.GET("/products", h.ListProducts)
	v1.GET("/courses", h.ListPublishedCourses)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/services", h.CreateService)
	admin.PATCH("/services/:id", h.UpdateService)
	admin.DELETE("/services/:id", h.DeleteService)

	adminGroup := admin.Group("/admin")
	{
		adminGroup.POST("/products", h.CreateProduct)
		adminGroup.PATCH("/products/:id", h.UpdateProduct)
		adminGroup.DELETE("/products/:id", h.DeleteProduct)

		adminGroup.GET("/courses", h.ListAllCourses)
		adminGroup.POST("/courses", h.CreateCourse)
		adminGroup.PATCH("/courses/:id", h.UpdateCourse)
		adminGroup.DELETE("/courses/:id", h.DeleteCourse)

		adminGroup.GET("/course-classes", h.ListClasses)
		adminGroup.POST("/course-classes", h.CreateClass)
		adminGroup.PATCH("/course-classes/:id", h.UpdateClass)
		adminGroup.DELETE("/course-classes/:id", h.DeleteClass)
	}
}

func (h *Handler) respondErr(c *gin.Context, err error, what string) {
	var vErr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", what+" not found")
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid fields", vErr.Fields)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Unexpected error")
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return 0, false
	}
	return id, true
}

// ===== Services =====

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		h.respondErr(c, err, "Service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		h.respondErr(c, err, "Service")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		h.respondErr(c, err, "Service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		h.respondErr(c, err, "Service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// ===== Products =====

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		h.respondErr(c, err, "Product")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.respondErr(c, err, "Product")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"product": p})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.respondErr(c, err, "Product")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": p})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		h.respondErr(c, err, "Product")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// ===== Courses =====

func (h *Handler) ListPublishedCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context(), true)
	if err != nil {
		h.respondErr(c, err, "Course")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

func (h *Handler) ListAllCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context(), false)
	if err != nil {
		h.respondErr(c, err, "Course")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

func (h *Handler) CreateCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title and YouTube URL are required")
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), req)
	if err != nil {
		h.respondErr(c, err, "Course")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

func (h *Handler) UpdateCourse(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	course, err := h.service.UpdateCourse(c.Request.Context(), id, req)
	if err != nil {
		h.respondErr(c, err, "Course")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

func (h *Handler) DeleteCourse(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), id); err != nil {
		h.respondErr(c, err, "Course")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// ===== Course classes =====

func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		h.respondErr(c, err, "Class")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

func (h *Handler) CreateClass(c *gin.Context) {
	var req CourseClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, price, deadline and vacancies are required")
		return
	}

	deadline, err := time.Parse(time.RFC3339, req.EnrollmentDeadline)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid enrollment_deadline, expected RFC 3339")
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), req, deadline)
	if err != nil {
		h.respondErr(c, err, "Class")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

func (h *Handler) UpdateClass(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req CourseClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	deadline, err := time.Parse(time.RFC3339, req.EnrollmentDeadline)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid enrollment_deadline, expected RFC 3339")
		return
	}

	class, err := h.service.UpdateClass(c.Request.Context(), id, req, deadline)
	if err != nil {
		h.respondErr(c, err, "Class")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class": class})
}

func (h *Handler) DeleteClass(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteClass(c.Request.Context(), id); err != nil {
		h.respondErr(c, err, "Class")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
