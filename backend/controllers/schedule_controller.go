package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ppltracker/backend/store"
	"ppltracker/backend/utils"
)

type ScheduleController struct {
	Store *store.Store
}

func NewScheduleController(st *store.Store) *ScheduleController {
	return &ScheduleController{Store: st}
}

type slotRequest struct {
	Day     int    `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Subject string `json:"matiere"`
	Desc    string `json:"desc"`
}

type weekShiftRequest struct {
	Delta int `json:"delta"`
}

// GetWeek godoc
// @Summary Get the current week's timetable
// @Description Returns the resolved week key, its Monday/Sunday bounds and its slots
// @Tags emploi
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /emploi [get]
func (sc *ScheduleController) GetWeek(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, sc.Store.CurrentWeek())
}

// AddSlot godoc
// @Summary Add a timetable slot to the current week
// @Tags emploi
// @Accept json
// @Produce json
// @Param slot body slotRequest true "Slot data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /emploi/slots [post]
func (sc *ScheduleController) AddSlot(c *fiber.Ctx) error {
	var in slotRequest
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	slot, err := sc.Store.AddSlot(in.Day, in.Start, in.End, in.Subject, in.Desc)
	if err != nil {
		return respondStoreError(c, err)
	}
	return utils.Toast(c, fiber.StatusCreated, slot, "Créneau ajouté pour cette semaine ✓", utils.CategorySuccess)
}

// DeleteSlot godoc
// @Summary Delete a slot from the current week
// @Description Only the active week's bucket is touched; unknown ids are ignored
// @Tags emploi
// @Produce json
// @Param id path string true "Slot id"
// @Success 200 {object} utils.SuccessResponse
// @Router /emploi/slots/{id} [delete]
func (sc *ScheduleController) DeleteSlot(c *fiber.Ctx) error {
	if err := sc.Store.DeleteSlot(c.Params("id")); err != nil {
		return respondStoreError(c, err)
	}
	return utils.Toast(c, fiber.StatusOK, nil, "Créneau supprimé", utils.CategoryInfo)
}

// ShiftWeek godoc
// @Summary Navigate to another week
// @Description Moves the week offset by delta (±1 from the arrows)
// @Tags emploi
// @Accept json
// @Produce json
// @Param shift body weekShiftRequest true "Offset delta"
// @Success 200 {object} utils.SuccessResponse
// @Router /emploi/week [post]
func (sc *ScheduleController) ShiftWeek(c *fiber.Ctx) error {
	var in weekShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if _, err := sc.Store.ShiftWeek(in.Delta); err != nil {
		return respondStoreError(c, err)
	}
	// Навигация сразу возвращает новую неделю, чтобы клиент не делал второй запрос
	return utils.Success(c, fiber.StatusOK, sc.Store.CurrentWeek())
}
