package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ppltracker/backend/models"
	"ppltracker/backend/store"
	"ppltracker/backend/utils"
)

type AssignmentsController struct {
	Store *store.Store
}

func NewAssignmentsController(st *store.Store) *AssignmentsController {
	return &AssignmentsController{Store: st}
}

// GetAssignments godoc
// @Summary List assignments
// @Description Returns assignments in display order, optionally filtered
// @Tags devoirs
// @Produce json
// @Param matiere query string false "Subject filter"
// @Param statut query string false "Status filter (todo, inprogress, done)"
// @Success 200 {object} utils.SuccessResponse
// @Router /devoirs [get]
func (ac *AssignmentsController) GetAssignments(c *fiber.Ctx) error {
	// Фильтры соответствуют выпадающим спискам на странице "Devoirs"
	subject := c.Query("matiere")
	status := c.Query("statut")

	return utils.Success(c, fiber.StatusOK, ac.Store.Assignments(subject, status))
}

// SaveAssignment godoc
// @Summary Create or edit an assignment
// @Description A body without id creates, with id edits in place
// @Tags devoirs
// @Accept json
// @Produce json
// @Param devoir body models.Assignment true "Assignment data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /devoirs [post]
func (ac *AssignmentsController) SaveAssignment(c *fiber.Ctx) error {
	var in models.Assignment
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	editing := in.ID != ""
	saved, err := ac.Store.SaveAssignment(in)
	if err != nil {
		return respondStoreError(c, err)
	}

	message := "Devoir ajouté ✓"
	if editing {
		message = "Devoir modifié ✓"
	}
	return utils.Toast(c, fiber.StatusOK, saved, message, utils.CategorySuccess)
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Description Unknown ids are ignored
// @Tags devoirs
// @Produce json
// @Param id path string true "Assignment id"
// @Success 200 {object} utils.SuccessResponse
// @Router /devoirs/{id} [delete]
func (ac *AssignmentsController) DeleteAssignment(c *fiber.Ctx) error {
	if err := ac.Store.DeleteAssignment(c.Params("id")); err != nil {
		return respondStoreError(c, err)
	}
	return utils.Toast(c, fiber.StatusOK, nil, "Devoir supprimé", utils.CategoryInfo)
}
