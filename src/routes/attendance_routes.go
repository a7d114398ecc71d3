package routes

import (
	"Backend-Elevate-012/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// AttendanceRoutes กำหนดเส้นทางสำหรับ Attendee และ Check-in API
func AttendanceRoutes(app *fiber.App) {
	attendeeGroup := app.Group("/attendees")
	attendeeGroup.Post("/", controllers.RegisterAttendee)          // ลงทะเบียน + เช็คชื่อทันที
	attendeeGroup.Get("/", controllers.GetAttendees)               // ดึง attendee ทั้งหมด
	attendeeGroup.Get("/search", controllers.SearchAttendees)      // ค้นหาสำหรับ returning check-in
	attendeeGroup.Get("/today", controllers.GetCheckedInToday)     // รายชื่อเช็คชื่อวันนี้
	attendeeGroup.Post("/:id/checkin", controllers.CheckInAttendee)
	attendeeGroup.Put("/:id/facilitator", controllers.TransferAttendee)

	app.Delete("/attendance/:logId", controllers.RemoveCheckIn) // undo check-in

	// --- Kiosk QR Check-in ---
	checkinGroup := app.Group("/checkin")
	checkinGroup.Post("/qr-token", controllers.CreateQRToken)
	checkinGroup.Post("/claim/:token", controllers.ClaimQRToken)
}
