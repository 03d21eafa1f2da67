package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ppltracker/backend/store"
	"ppltracker/backend/utils"
)

type NotesController struct {
	Store *store.Store
}

func NewNotesController(st *store.Store) *NotesController {
	return &NotesController{Store: st}
}

type noteRequest struct {
	Subject string `json:"matiere"`
	Score   int    `json:"score"`
	Desc    string `json:"desc"`
}

// GetNotes godoc
// @Summary Get the score history with averages and badges
// @Tags notes
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /notes [get]
func (nc *NotesController) GetNotes(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"history":       nc.Store.Notes(),
		"globalAverage": nc.Store.GlobalAverage(),
		"badges":        nc.Store.Badges(),
	})
}

// AddNote godoc
// @Summary Record a score
// @Tags notes
// @Accept json
// @Produce json
// @Param note body noteRequest true "Score data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /notes [post]
func (nc *NotesController) AddNote(c *fiber.Ctx) error {
	var in noteRequest
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	note, err := nc.Store.AddNote(in.Subject, in.Score, in.Desc)
	if err != nil {
		return respondStoreError(c, err)
	}
	return utils.Toast(c, fiber.StatusCreated, note, "Note ajoutée ✓", utils.CategorySuccess)
}

// DeleteNote godoc
// @Summary Delete a score entry
// @Description Unknown ids are ignored
// @Tags notes
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} utils.SuccessResponse
// @Router /notes/{id} [delete]
func (nc *NotesController) DeleteNote(c *fiber.Ctx) error {
	if err := nc.Store.DeleteNote(c.Params("id")); err != nil {
		return respondStoreError(c, err)
	}
	return utils.Toast(c, fiber.StatusOK, nil, "Note supprimée", utils.CategoryInfo)
}
