package controllers

import (
	"strconv"

	"Backend-Elevate-012/src/models"
	"Backend-Elevate-012/src/services/attendance"
	"Backend-Elevate-012/src/utils"

	"github.com/gofiber/fiber/v2"
)

// RegisterAttendee godoc
// @Summary Register a new attendee and check them in
// @Description Register a first-time attendee and immediately create today's attendance log
// @Tags attendees
// @Accept json
// @Produce json
// @Param attendee body models.RegisterAttendeeRequest true "Registration form"
// @Success 201 {object} models.Attendee
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /attendees [post]
func RegisterAttendee(c *fiber.Ctx) error {
	var req models.RegisterAttendeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	attendee, err := attendance.RegisterAndCheckIn(&req)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(attendee)
}

// CheckInAttendee godoc
// @Summary Check in a returning attendee
// @Description Create today's attendance log for an existing attendee
// @Tags attendees
// @Produce json
// @Param id path string true "Attendee ID"
// @Success 200 {object} models.Attendee
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /attendees/{id}/checkin [post]
func CheckInAttendee(c *fiber.Ctx) error {
	attendee, err := attendance.CheckIn(c.Params("id"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(attendee)
}

// SearchAttendees godoc
// @Summary Search attendees
// @Description Search attendees by name or contact number (case-insensitive, max 10 results)
// @Tags attendees
// @Produce json
// @Param q query string true "Search term (min 2 characters)"
// @Success 200 {array} models.SearchResult
// @Failure 500 {object} models.ErrorResponse
// @Router /attendees/search [get]
func SearchAttendees(c *fiber.Ctx) error {
	results, err := attendance.SearchAttendees(c.Query("q"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(results)
}

// GetAttendees godoc
// @Summary Get attendees
// @Description Get all attendees with pagination and search
// @Tags attendees
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search keyword"
// @Param sortBy query string false "Sort by field"
// @Param order query string false "Order (asc/desc)"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendees [get]
func GetAttendees(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)
	params.Normalize()

	attendees, total, err := attendance.GetAttendees(params)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(models.NewPaginatedResponse(attendees, total, params))
}

// GetCheckedInToday godoc
// @Summary Get today's check-ins
// @Description Get all attendees checked in for today's service, latest first
// @Tags attendees
// @Produce json
// @Success 200 {array} models.CheckedInAttendee
// @Failure 500 {object} models.ErrorResponse
// @Router /attendees/today [get]
func GetCheckedInToday(c *fiber.Ctx) error {
	checkedIn, err := attendance.GetCheckedInToday()
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(checkedIn)
}

// RemoveCheckIn godoc
// @Summary Undo a check-in
// @Description Remove an attendance log entry (undo check-in)
// @Tags attendees
// @Produce json
// @Param logId path string true "Attendance log ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/{logId} [delete]
func RemoveCheckIn(c *fiber.Ctx) error {
	if err := attendance.RemoveCheckIn(c.Params("logId")); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Check-in removed successfully"})
}

// CreateQRToken godoc
// @Summary Create a kiosk QR token
// @Description Create a short-lived QR token for kiosk self check-in
// @Tags checkin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /checkin/qr-token [post]
func CreateQRToken(c *fiber.Ctx) error {
	token, expiresAt, err := attendance.CreateQRToken()
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "expiresAt": expiresAt})
}

// ClaimQRToken godoc
// @Summary Check in via kiosk QR token
// @Description Validate a scanned QR token and check the attendee in
// @Tags checkin
// @Accept json
// @Produce json
// @Param token path string true "QR token"
// @Success 200 {object} models.Attendee
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkin/claim/{token} [post]
func ClaimQRToken(c *fiber.Ctx) error {
	var body struct {
		AttendeeID string `json:"attendeeId"`
	}
	if err := c.BodyParser(&body); err != nil || body.AttendeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "attendeeId is required"})
	}

	attendee, err := attendance.ClaimQRToken(c.Params("token"), body.AttendeeID)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(attendee)
}
