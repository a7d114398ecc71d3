package routes

import (
	"Backend-Elevate-012/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// FacilitatorRoutes กำหนดเส้นทางสำหรับ Facilitator API
func FacilitatorRoutes(app *fiber.App) {
	facGroup := app.Group("/facilitators")
	facGroup.Get("/", controllers.GetFacilitators)
	facGroup.Get("/active", controllers.GetActiveFacilitators) // facilitator ที่เช็คชื่อแล้ววันนี้
	facGroup.Get("/rosters", controllers.GetAllRosters)        // roster รวมทุกคนที่ active
	facGroup.Get("/:id/roster", controllers.GetRoster)
	facGroup.Post("/", controllers.CreateFacilitator)
	facGroup.Delete("/:id", controllers.DeleteFacilitator)
}
