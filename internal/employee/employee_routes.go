package employee

import (
	"employee-records/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		// Static segments before the :employee_id wildcard.
		employees.GET("/avg-salary", handler.AverageSalary)
		employees.GET("/search", handler.SearchBySkill)

		employees.GET("", handler.ListByDepartment)
		employees.POST("", handler.Create)
		employees.GET("/:employee_id", handler.GetById)
		employees.PUT("/:employee_id", handler.Update)
		employees.DELETE("/:employee_id", handler.Delete)
	}
}
