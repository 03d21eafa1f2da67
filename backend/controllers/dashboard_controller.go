package controllers

import (
	"github.com/gofiber/fiber/v2"

	"ppltracker/backend/models"
	"ppltracker/backend/store"
	"ppltracker/backend/utils"
)

type DashboardController struct {
	Store *store.Store
}

func NewDashboardController(st *store.Store) *DashboardController {
	return &DashboardController{Store: st}
}

// GetDashboard godoc
// @Summary Get dashboard view-model
// @Description Returns global average, per-subject rows, urgent deadlines and quick stats
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, dc.Store.Dashboard())
}

// GetSubjects godoc
// @Summary List the subject catalog
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /subjects [get]
func (dc *DashboardController) GetSubjects(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"subjects": models.Subjects,
		"days":     models.Days,
	})
}
