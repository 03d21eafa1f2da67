package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ppltracker/backend/store"
	"ppltracker/backend/utils"
)

// respondStoreError разделяет ошибки: валидация возвращается пользователю,
// всё остальное - проблема сохранения состояния
func respondStoreError(c *fiber.Ctx, err error) error {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		return utils.BadRequest(c, verr.Message)
	}
	return utils.InternalServerError(c, "Échec de l'enregistrement")
}
