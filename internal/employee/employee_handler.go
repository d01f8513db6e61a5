package employee

import (
	"net/http"

	"employee-records/internal/shared/apperror"
	"employee-records/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeValidationError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeValidationError(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Employee created successfully")
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("employee_id")

	resp, err := h.service.GetByID(ctx, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("employee_id")

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeValidationError(c, err)
		return
	}

	if err := h.service.Update(ctx, employeeID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Employee updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("employee_id")

	if err := h.service.Delete(ctx, employeeID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Employee deleted successfully")
}

func (h *Handler) SearchBySkill(c *gin.Context) {
	ctx := c.Request.Context()

	skill, ok := c.GetQuery("skill")
	if !ok || skill == "" {
		h.writeServiceError(c, apperror.RequiredField("Skill"))
		return
	}

	resp, err := h.service.SearchBySkill(ctx, skill)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) ListByDepartment(c *gin.Context) {
	ctx := c.Request.Context()

	department, ok := c.GetQuery("department")
	if !ok || department == "" {
		h.writeServiceError(c, apperror.RequiredField("Department"))
		return
	}

	resp, err := h.service.ListByDepartment(ctx, department)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) AverageSalary(c *gin.Context) {
	resp, err := h.service.AverageSalaryByDepartment(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
