package v1

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/wishtally/backend/internal/client/gachalog"
	"github.com/wishtally/backend/internal/model"
	"github.com/wishtally/backend/internal/pkg/apperr"
	"github.com/wishtally/backend/internal/pkg/rekuest"
	"github.com/wishtally/backend/internal/server/svr"
	"github.com/wishtally/backend/internal/service"
	"github.com/wishtally/backend/internal/workers/taskwkr"
)

type SyncController struct {
	Worker *taskwkr.Worker
	Syncer *service.Syncer
	Store  *service.Store
	Report *service.Report
}

func RegisterSync(v1 *svr.V1, worker *taskwkr.Worker, syncer *service.Syncer, store *service.Store, report *service.Report) {
	c := &SyncController{
		Worker: worker,
		Syncer: syncer,
		Store:  store,
		Report: report,
	}

	v1.Post("/sync", c.StartSync)
	v1.Post("/sync/cancel", c.CancelSync)
	v1.Post("/reload", c.Reload)
	v1.Get("/status", c.GetStatus)
}

// StartSync launches a background synchronization over all three banners.
// The response carries the task id; progress is observable via /status.
func (c *SyncController) StartSync(ctx *fiber.Ctx) error {
	var params gachalog.FetchParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}
	if params.Game == "" {
		params.Game = c.Store.Game()
	}
	if !params.Game.Valid() {
		return apperr.ErrInvalidReq.Msg("unknown game %q", params.Game)
	}

	taskID, _, err := c.Worker.Submit("sync", func(taskCtx context.Context, progress model.ProgressFunc) error {
		counts, err := c.Syncer.SyncAll(taskCtx, params, progress)
		if err != nil {
			return err
		}

		if err := c.Store.SaveAll(); err != nil {
			log.Warn().Err(err).Str("evt.name", "sync.save").Msg("some ledgers failed to persist")
		}

		total := 0
		for _, n := range counts {
			total += n
		}
		progress("recounting", model.ProgressIndeterminate)
		if _, err := c.Report.Recount(taskCtx, c.Store.Excluded(), progress); err != nil {
			return err
		}

		log.Info().
			Str("evt.name", "sync.done").
			Int("added", total).
			Msg("synchronization complete")
		return nil
	})
	if err != nil {
		if errors.Is(err, taskwkr.ErrBusy) {
			return apperr.ErrTaskBusy
		}
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{"taskId": taskID})
}

type reloadRequest struct {
	Game model.Game `json:"game" validate:"required,oneof=hsr genshin"`
}

// Reload switches the tracked game profile: the target game's persisted state
// replaces the in-memory state, then a recount runs over it.
func (c *SyncController) Reload(ctx *fiber.Ctx) error {
	var req reloadRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	taskID, _, err := c.Worker.Submit("reload", func(taskCtx context.Context, progress model.ProgressFunc) error {
		progress("loading "+string(req.Game), model.ProgressIndeterminate)
		if err := c.Store.Load(req.Game); err != nil {
			log.Warn().Err(err).Str("evt.name", "reload").Msg("some persisted state failed to load")
		}
		_, err := c.Report.Recount(taskCtx, c.Store.Excluded(), progress)
		return err
	})
	if err != nil {
		if errors.Is(err, taskwkr.ErrBusy) {
			return apperr.ErrTaskBusy
		}
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{"taskId": taskID})
}

func (c *SyncController) CancelSync(ctx *fiber.Ctx) error {
	c.Worker.Cancel()
	return ctx.JSON(fiber.Map{"cancelled": true})
}

func (c *SyncController) GetStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Worker.Status())
}
