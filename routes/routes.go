package routes

import (
	"github.com/lindltaylor7/monoessam/configs"
	"github.com/lindltaylor7/monoessam/controllers"
	"github.com/lindltaylor7/monoessam/middlewares"
	"github.com/lindltaylor7/monoessam/repository"
	"github.com/lindltaylor7/monoessam/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	programRepo := repository.NewProgramRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewPurchaseOrderRepository(db)

	// Services
	programSvc := services.NewProgramService(db, programRepo)
	quebradosSvc := services.NewQuebradosService(db, programRepo, orderRepo)
	nutritionSvc := services.NewNutritionService(catalogRepo)

	// Controllers
	catalogCtrl := controllers.NewCatalogController(db)
	ingredientCtrl := controllers.NewIngredientController(db)
	dishCtrl := controllers.NewDishController(db, catalogRepo, nutritionSvc)
	programCtrl := controllers.NewWeeklyProgramController(programSvc)
	orderCtrl := controllers.NewPurchaseOrderController(quebradosSvc)

	// Catalog
	r.GET("/cafes", catalogCtrl.ListCafes)
	r.POST("/cafes", catalogCtrl.CreateCafe)
	r.GET("/cafes/:id", catalogCtrl.CafeDetail)
	r.GET("/units", catalogCtrl.ListUnits)
	r.POST("/units", catalogCtrl.CreateUnit)
	r.GET("/menu-structures", catalogCtrl.ListMenuStructures)
	r.POST("/menu-structures", catalogCtrl.CreateMenuStructure)

	r.GET("/ingredients", ingredientCtrl.List)
	r.POST("/ingredients", ingredientCtrl.Create)
	r.GET("/ingredients/:id", ingredientCtrl.Detail)
	r.PATCH("/ingredients/:id", ingredientCtrl.Update)
	r.PUT("/ingredients/:id/dosification", ingredientCtrl.SetDosification)

	r.GET("/dishes", dishCtrl.List)
	r.POST("/dishes", dishCtrl.Create)
	r.GET("/dishes/:id", dishCtrl.Detail)
	r.PUT("/dishes/:id/recipes", dishCtrl.SetRecipes)
	r.GET("/dishes/:id/nutrition", dishCtrl.NutritionDetail)
	r.GET("/dish-categories", dishCtrl.ListCategories)
	r.POST("/dish-categories", dishCtrl.CreateCategory)

	// Planning
	r.GET("/cafes/:id/weekly-programs", programCtrl.ListByCafe)
	r.POST("/weekly-programs", programCtrl.Create)
	r.GET("/weekly-programs/:id", programCtrl.Detail)
	r.PUT("/weekly-programs/:id/portions", programCtrl.SetPortion)
	r.PATCH("/weekly-programs/:id/approve", programCtrl.Approve)

	// Quebrados / purchase orders
	r.GET("/purchase-orders", orderCtrl.List)
	r.GET("/purchase-orders/:id", orderCtrl.Detail)
	r.POST("/weekly-programs/:id/purchase-orders", orderCtrl.GenerateFromProgram)
	r.POST("/purchase-orders/explode", orderCtrl.Explode)
}
