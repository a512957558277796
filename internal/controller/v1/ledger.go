package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wishtally/backend/internal/model"
	"github.com/wishtally/backend/internal/pkg/apperr"
	"github.com/wishtally/backend/internal/pkg/async"
	"github.com/wishtally/backend/internal/pkg/rekuest"
	"github.com/wishtally/backend/internal/server/svr"
	"github.com/wishtally/backend/internal/service"
)

type LedgerController struct {
	Store *service.Store
}

func RegisterLedger(v1 *svr.V1, store *service.Store) {
	c := &LedgerController{Store: store}

	v1.Post("/ledger/:kind/reset", c.ResetLedger)
	v1.Post("/save", c.Save)
}

type resetLedgerRequest struct {
	Records []model.PullRecord `json:"records"`
}

// ResetLedger atomically replaces one banner's ledger with the given records,
// used when switching the tracked profile.
func (c *LedgerController) ResetLedger(ctx *fiber.Ctx) error {
	kind := model.BannerKind(ctx.Params("kind"))
	if !kind.Valid() {
		return apperr.ErrInvalidReq.Msg("unknown banner kind %q", kind)
	}

	var req resetLedgerRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	ledger := model.NewLedger(kind)
	for _, rec := range req.Records {
		ledger.Add(rec)
	}
	size := c.Store.ResetLedger(kind, ledger)

	return ctx.JSON(fiber.Map{"banner": kind, "size": size})
}

// Save persists all ledgers and the name map. Per-file failures are collected
// and reported; whatever saved stays saved.
func (c *LedgerController) Save(ctx *fiber.Ctx) error {
	err := c.Store.SaveAll()
	if err == nil {
		return ctx.JSON(fiber.Map{"errors": []string{}})
	}
	if collected, ok := err.(async.Errors); ok {
		return ctx.JSON(fiber.Map{"errors": collected.Strings()})
	}
	return ctx.JSON(fiber.Map{"errors": []string{err.Error()}})
}
