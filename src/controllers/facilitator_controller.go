package controllers

import (
	"Backend-Elevate-012/src/models"
	"Backend-Elevate-012/src/services/facilitators"
	"Backend-Elevate-012/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetFacilitators godoc
// @Summary Get facilitators
// @Description Get all facilitators ordered by first name
// @Tags facilitators
// @Produce json
// @Success 200 {array} models.Facilitator
// @Failure 500 {object} models.ErrorResponse
// @Router /facilitators [get]
func GetFacilitators(c *fiber.Ctx) error {
	facs, err := facilitators.GetFacilitators()
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(facs)
}

// GetActiveFacilitators godoc
// @Summary Get active facilitators
// @Description Get facilitators who are checked in today, optionally filtered by gender
// @Tags facilitators
// @Produce json
// @Param gender query string false "Gender filter (Male/Female)"
// @Success 200 {array} models.Facilitator
// @Failure 500 {object} models.ErrorResponse
// @Router /facilitators/active [get]
func GetActiveFacilitators(c *fiber.Ctx) error {
	active, err := facilitators.ActiveFacilitators(c.Query("gender"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(active)
}

// GetAllRosters godoc
// @Summary Get today's rosters
// @Description Get every active facilitator with their checked-in attendees for today
// @Tags facilitators
// @Produce json
// @Success 200 {array} models.FacilitatorWithAttendees
// @Failure 500 {object} models.ErrorResponse
// @Router /facilitators/rosters [get]
func GetAllRosters(c *fiber.Ctx) error {
	rosters, err := facilitators.AllRosters()
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(rosters)
}

// GetRoster godoc
// @Summary Get one facilitator's roster
// @Description Get a facilitator with their checked-in attendees for today
// @Tags facilitators
// @Produce json
// @Param id path string true "Facilitator ID"
// @Success 200 {object} models.FacilitatorWithAttendees
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /facilitators/{id}/roster [get]
func GetRoster(c *fiber.Ctx) error {
	roster, err := facilitators.RosterFor(c.Params("id"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(roster)
}

// CreateFacilitator godoc
// @Summary Create a facilitator
// @Tags facilitators
// @Accept json
// @Produce json
// @Param facilitator body models.Facilitator true "Facilitator to create"
// @Success 201 {object} models.Facilitator
// @Failure 400 {object} models.ErrorResponse
// @Router /facilitators [post]
func CreateFacilitator(c *fiber.Ctx) error {
	var fac models.Facilitator
	if err := c.BodyParser(&fac); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := facilitators.CreateFacilitator(&fac); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fac)
}

// DeleteFacilitator godoc
// @Summary Delete a facilitator
// @Description Delete a facilitator and clear dangling attendee references
// @Tags facilitators
// @Produce json
// @Param id path string true "Facilitator ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /facilitators/{id} [delete]
func DeleteFacilitator(c *fiber.Ctx) error {
	if err := facilitators.DeleteFacilitator(c.Params("id")); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Facilitator deleted successfully"})
}

// TransferAttendee godoc
// @Summary Transfer an attendee to another facilitator
// @Description Reassign an attendee to a facilitator of the same gender, or unassign with null
// @Tags facilitators
// @Accept json
// @Produce json
// @Param id path string true "Attendee ID"
// @Param body body object true "facilitatorId (string or null)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /attendees/{id}/facilitator [put]
func TransferAttendee(c *fiber.Ctx) error {
	var body struct {
		FacilitatorID *string `json:"facilitatorId"` // null = ปลดออกจากกลุ่ม
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := facilitators.Transfer(c.Params("id"), body.FacilitatorID); err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Assignment updated successfully"})
}
