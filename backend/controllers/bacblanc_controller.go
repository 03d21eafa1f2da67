package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ppltracker/backend/store"
	"ppltracker/backend/utils"
)

type BacBlancController struct {
	Store *store.Store
}

func NewBacBlancController(st *store.Store) *BacBlancController {
	return &BacBlancController{Store: st}
}

type mockExamRequest struct {
	Subject  string `json:"matiere"`
	Score    int    `json:"score"`
	Duration int    `json:"duration"` // elapsed seconds, measured by the client timer
}

// GetMockExams godoc
// @Summary Get the mock-exam history
// @Tags bacblanc
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /bacblanc [get]
func (bc *BacBlancController) GetMockExams(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"history":       bc.Store.MockExams(),
		"passThreshold": store.MockPassThreshold,
	})
}

// SaveScore godoc
// @Summary Record a finished mock exam
// @Description Appends one mock-exam record and one derived note; a rejected score writes neither
// @Tags bacblanc
// @Accept json
// @Produce json
// @Param result body mockExamRequest true "Mock exam result"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /bacblanc/score [post]
func (bc *BacBlancController) SaveScore(c *fiber.Ctx) error {
	var in mockExamRequest
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	exam, err := bc.Store.SaveMockExamScore(in.Subject, in.Score, in.Duration)
	if err != nil {
		return respondStoreError(c, err)
	}
	return utils.Toast(c, fiber.StatusCreated, exam, "Score enregistré ✓", utils.CategorySuccess)
}

// DeleteMockExam godoc
// @Summary Delete a mock-exam entry
// @Description Unknown ids are ignored; the derived note is kept
// @Tags bacblanc
// @Produce json
// @Param id path string true "Mock exam id"
// @Success 200 {object} utils.SuccessResponse
// @Router /bacblanc/{id} [delete]
func (bc *BacBlancController) DeleteMockExam(c *fiber.Ctx) error {
	if err := bc.Store.DeleteMockExam(c.Params("id")); err != nil {
		return respondStoreError(c, err)
	}
	return utils.Toast(c, fiber.StatusOK, nil, "Bac blanc supprimé", utils.CategoryInfo)
}
