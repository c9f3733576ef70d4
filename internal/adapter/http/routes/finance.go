package routes

import (
	"finestra/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects   = "/projects"
	PathCosts      = "/costs"
	PathRevenues   = "/revenues"
	PathFixedCosts = "/fixed-costs"
	PathCategories = "/categories"
	PathDashboard  = "/dashboard"
)

func addFinanceRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	costHandler *handlers.CostItemHandler,
	revenueHandler *handlers.RevenueItemHandler,
	fixedCostHandler *handlers.FixedCostHandler,
	categoryHandler *handlers.CostCategoryHandler,
	dashboardHandler *handlers.DashboardHandler,
	deviationHandler *handlers.DeviationHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)

		// Sub-recursos do projeto.
		projects.GET("/:id/costs", costHandler.ListProjectCostItems)
		projects.POST("/:id/revenues", revenueHandler.CreateRevenueItem)
		projects.GET("/:id/revenues", revenueHandler.ListProjectRevenueItems)
		projects.GET("/:id/overview", dashboardHandler.GetProjectOverview)
		projects.POST("/:id/deviation", deviationHandler.AnalyzeProject)
	}

	costs := rg.Group(PathCosts)
	{
		costs.POST("", costHandler.CreateCostItem)
		costs.GET("", costHandler.ListCostItems)
		costs.GET("/:id", costHandler.GetCostItem)
		costs.PUT("/:id", costHandler.UpdateCostItem)
		costs.PATCH("/:id/pay", costHandler.MarkCostItemPaid)
		costs.DELETE("/:id", costHandler.DeleteCostItem)
	}

	revenues := rg.Group(PathRevenues)
	{
		revenues.GET("", revenueHandler.ListRevenueItems)
		revenues.GET("/:id", revenueHandler.GetRevenueItem)
		revenues.PUT("/:id", revenueHandler.UpdateRevenueItem)
		revenues.PATCH("/:id/receive", revenueHandler.MarkRevenueItemReceived)
		revenues.DELETE("/:id", revenueHandler.DeleteRevenueItem)
	}

	fixedCosts := rg.Group(PathFixedCosts)
	{
		fixedCosts.POST("", fixedCostHandler.CreateFixedCost)
		fixedCosts.GET("", fixedCostHandler.ListFixedCosts)
		fixedCosts.GET("/:id", fixedCostHandler.GetFixedCost)
		fixedCosts.PUT("/:id", fixedCostHandler.UpdateFixedCost)
		fixedCosts.DELETE("/:id", fixedCostHandler.DeleteFixedCost)
		fixedCosts.POST("/:id/generate", fixedCostHandler.GenerateCharge)
	}

	categories := rg.Group(PathCategories)
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.POST("", categoryHandler.CreateCategory)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/overview", dashboardHandler.GetOverview)
		dashboard.GET("/cash-flow", dashboardHandler.GetCashFlow)
		dashboard.GET("/agenda", dashboardHandler.GetAgenda)
	}
}
