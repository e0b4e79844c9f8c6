package apiv1

import (
	"fmt"
	"time"

	"interview-scorer-backend/controllers"
	statisticshandler "interview-scorer-backend/lib/statistics"
	apimodels "interview-scorer-backend/models/api"
	statisticsapimodels "interview-scorer-backend/models/api/statistics"

	"github.com/gofiber/fiber/v2"
)

type statisticsApiController struct {
	controllers.BaseAPIController
}

func InitStatisticsApiRouters(app *fiber.App) {
	controller := statisticsApiController{}
	app.Route("statistics", func(router fiber.Router) {
		router.Get("", controller.dashboard)
		router.Get("export", controller.export)
	})
}

// @Summary Статистика по результатам интервью
// @Tags Статистика
// @Param	run_id	query	string	false	"ID набора"
// @Success 200 {object} apimodels.Response{data=statisticsapimodels.Dashboard}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/statistics [get]
func (c *statisticsApiController) dashboard(ctx *fiber.Ctx) error {
	var filter statisticsapimodels.Filter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	dashboard, err := statisticshandler.Instance.Dashboard(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статистики")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboard))
}

// @Summary Статистика. Выгрузить в Excel
// @Tags Статистика
// @Param	run_id	query	string	false	"ID набора"
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/statistics/export [get]
func (c *statisticsApiController) export(ctx *fiber.Ctx) error {
	var filter statisticsapimodels.Filter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := statisticshandler.Instance.Export(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки статистики")
	}
	fileName := fmt.Sprintf("statistics_%s.xlsx", time.Now().Format("20060102"))
	return c.SendAttachment(ctx, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", fileName, buffer.Bytes())
}
