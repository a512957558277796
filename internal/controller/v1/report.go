package v1

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/wishtally/backend/internal/model"
	"github.com/wishtally/backend/internal/pkg/apperr"
	"github.com/wishtally/backend/internal/pkg/rekuest"
	"github.com/wishtally/backend/internal/server/svr"
	"github.com/wishtally/backend/internal/service"
	"github.com/wishtally/backend/internal/util/reportutil"
	"github.com/wishtally/backend/internal/workers/taskwkr"
)

type ReportController struct {
	Worker *taskwkr.Worker
	Store  *service.Store
	Report *service.Report
}

func RegisterReport(v1 *svr.V1, worker *taskwkr.Worker, store *service.Store, report *service.Report) {
	c := &ReportController{
		Worker: worker,
		Store:  store,
		Report: report,
	}

	v1.Post("/recount", c.Recount)
	v1.Get("/report", c.GetReport)
	v1.Get("/report/:kind/superseded", c.GetSuperseded)
}

type recountRequest struct {
	ExcludeUIDs []uint64 `json:"excludeUids"`
}

// Recount runs a counting pass over the current ledgers with the given
// exclusion set and waits for the result.
func (c *ReportController) Recount(ctx *fiber.Ctx) error {
	var req recountRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	c.Store.SetExcluded(req.ExcludeUIDs)

	var result *model.OverallReport
	_, done, err := c.Worker.Submit("recount", func(taskCtx context.Context, progress model.ProgressFunc) error {
		report, err := c.Report.Recount(taskCtx, c.Store.Excluded(), progress)
		if err != nil {
			return err
		}
		result = report
		return nil
	})
	if err != nil {
		if errors.Is(err, taskwkr.ErrBusy) {
			return apperr.ErrTaskBusy
		}
		return err
	}

	if err := <-done; err != nil {
		return err
	}
	return ctx.JSON(result)
}

// GetReport returns the most recently computed report. A positive bucket
// query parameter condenses the pity histograms for display.
func (c *ReportController) GetReport(ctx *fiber.Ctx) error {
	report := c.Report.Last()
	if report == nil {
		return apperr.ErrNotFound.Msg("no report computed yet")
	}

	if bucket := ctx.QueryInt("bucket"); bucket > 0 {
		condensed := *report
		condensed.Pity5Standard = report.Pity5Standard.Condense(bucket)
		condensed.Pity5Weapon = report.Pity5Weapon.Condense(bucket)
		condensed.Pity4 = report.Pity4.Condense(bucket)
		return ctx.JSON(&condensed)
	}
	return ctx.JSON(report)
}

// GetSuperseded derives, for one banner, which losing 5-star pulls were later
// made up for by a winning rate-up 5-star.
func (c *ReportController) GetSuperseded(ctx *fiber.Ctx) error {
	kind := model.BannerKind(ctx.Params("kind"))
	if !kind.Valid() {
		return apperr.ErrInvalidReq.Msg("unknown banner kind %q", kind)
	}

	report := c.Report.Last()
	if report == nil {
		return apperr.ErrNotFound.Msg("no report computed yet")
	}

	var banner *model.BannerReport
	switch kind {
	case model.BannerStandard:
		banner = report.Standard
	case model.BannerCharacter:
		banner = report.Character
	case model.BannerWeapon:
		banner = report.Weapon
	}

	lookup := reportutil.SupersededLookup(banner)
	entries := make([]fiber.Map, 0, len(lookup))
	for key, sup := range lookup {
		entries = append(entries, fiber.Map{
			"pull":         key,
			"supersededBy": sup,
		})
	}
	return ctx.JSON(fiber.Map{"banner": kind, "entries": entries})
}
