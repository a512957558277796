package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wishtally/backend/internal/pkg/bininfo"
	"github.com/wishtally/backend/internal/server/svr"
	"github.com/wishtally/backend/internal/service"
)

type MetaController struct {
	Update *service.Update
	Store  *service.Store
}

func RegisterMeta(v1 *svr.V1, update *service.Update, store *service.Store) {
	c := &MetaController{Update: update, Store: store}

	v1.Get("/health", c.Health)
	v1.Get("/update", c.CheckUpdate)
}

func (c *MetaController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":  "ok",
		"version": bininfo.Version,
		"game":    c.Store.Game(),
	})
}

func (c *MetaController) CheckUpdate(ctx *fiber.Ctx) error {
	result, err := c.Update.Check(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(result)
}
