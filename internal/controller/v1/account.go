package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wishtally/backend/internal/pkg/rekuest"
	"github.com/wishtally/backend/internal/server/svr"
	"github.com/wishtally/backend/internal/service"
)

type AccountController struct {
	Account *service.Account
}

func RegisterAccount(v1 *svr.V1, account *service.Account) {
	c := &AccountController{Account: account}

	v1.Get("/accounts", c.GetAccounts)
	v1.Put("/accounts", c.PutAccount)
}

func (c *AccountController) GetAccounts(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Account.List())
}

type putAccountRequest struct {
	UID      uint64 `json:"uid" validate:"required"`
	Name     string `json:"name"`
	Excluded bool   `json:"excluded"`
}

// PutAccount sets one account's display name and exclusion flag. An empty
// name clears the stored name.
func (c *AccountController) PutAccount(ctx *fiber.Ctx) error {
	var req putAccountRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	c.Account.Update(req.UID, req.Name, req.Excluded)
	return ctx.JSON(c.Account.List())
}
