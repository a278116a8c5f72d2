package routes

import (
	"metalmetrics/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs      = "/jobs"
	PathDashboard = "/dashboard"
	PathSettings  = "/settings"
)

func addJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	estimateHandler *handlers.EstimateHandler,
	actualsHandler *handlers.ActualsHandler,
	profitabilityHandler *handlers.ProfitabilityHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.POST("/:job_id/start", jobHandler.StartJob)
		jobs.POST("/:job_id/complete", jobHandler.CompleteJob)
		jobs.POST("/:job_id/invoice", jobHandler.InvoiceJob)

		jobs.GET("/:job_id/estimate", estimateHandler.GetEstimate)
		jobs.PUT("/:job_id/estimate", estimateHandler.SaveEstimate)
		jobs.POST("/:job_id/estimate/ai", estimateHandler.GenerateAIQuote)

		jobs.GET("/:job_id/actuals", actualsHandler.GetActuals)
		jobs.PUT("/:job_id/actuals", actualsHandler.SaveActuals)

		jobs.GET("/:job_id/report", profitabilityHandler.GetReport)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/kpis", dashboardHandler.GetKPIs)
		dashboard.GET("/customers", dashboardHandler.GetCustomerProfitability)
		dashboard.GET("/category-variances", dashboardHandler.GetCategoryVariances)
		dashboard.GET("/at-risk", dashboardHandler.GetAtRiskJobs)
		dashboard.GET("/job-summaries", dashboardHandler.GetJobSummaries)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpdateSettings)
	}
}
