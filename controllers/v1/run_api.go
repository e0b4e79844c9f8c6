package apiv1

import (
	"interview-scorer-backend/controllers"
	"interview-scorer-backend/lib/interchange"
	runhandler "interview-scorer-backend/lib/run"
	statisticshandler "interview-scorer-backend/lib/statistics"
	"interview-scorer-backend/lib/utils/helpers"
	apimodels "interview-scorer-backend/models/api"
	runapimodels "interview-scorer-backend/models/api/run"
	statisticsapimodels "interview-scorer-backend/models/api/statistics"

	"github.com/gofiber/fiber/v2"
)

type runApiController struct {
	controllers.BaseAPIController
}

func InitRunApiRouters(app *fiber.App) {
	controller := runApiController{}
	app.Route("runs", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Get("calendar", controller.calendar)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("export", controller.export)
			idRoute.Get("statistics", controller.statistics)
		})
	})
}

// @Summary Список наборов
// @Tags Наборы
// @Success 200 {object} apimodels.Response{data=[]runapimodels.RunWithCount}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/runs/list [get]
func (c *runApiController) list(ctx *fiber.Ctx) error {
	list, err := runhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка наборов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Наборы для календаря
// @Tags Наборы
// @Success 200 {object} apimodels.Response{data=[]runapimodels.CalendarEvent}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/runs/calendar [get]
func (c *runApiController) calendar(ctx *fiber.Ctx) error {
	events, err := runhandler.Instance.Calendar()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения календаря наборов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(events))
}

// @Summary Создать набор
// @Tags Наборы
// @Param	body	body	runapimodels.RunData	true	"request body"
// @Success 200 {object} apimodels.Response{data=runapimodels.RunView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/runs [post]
func (c *runApiController) create(ctx *fiber.Ctx) error {
	var payload runapimodels.RunData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	run, err := runhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания набора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(run))
}

// @Summary Получить набор
// @Tags Наборы
// @Param 	id 	path 	string  true 	"run ID"
// @Success 200 {object} apimodels.Response{data=runapimodels.RunWithCount}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/runs/{id} [get]
func (c *runApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	run, err := runhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения набора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(run))
}

// @Summary Изменить набор
// @Tags Наборы
// @Param 	id 		path 	string  true 	"run ID"
// @Param	body	body	runapimodels.RunData	true	"request body"
// @Success 200 {object} apimodels.Response{data=runapimodels.RunView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/runs/{id} [put]
func (c *runApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload runapimodels.RunData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	run, err := runhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения набора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(run))
}

// @Summary Удалить набор
// @Tags Наборы
// @Description Результаты набора сохраняются без привязки к набору
// @Param 	id 	path 	string  true 	"run ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/runs/{id} [delete]
func (c *runApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = runhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления набора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузить набор с результатами в yaml
// @Tags Наборы
// @Param 	id 	path 	string  true 	"run ID"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/runs/{id}/export [get]
func (c *runApiController) export(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	bundle, err := runhandler.Instance.Export(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки набора")
	}
	data, err := interchange.Dump(bundle)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки набора")
	}
	return c.SendAttachment(ctx, yamlContentType, helpers.FileName(bundle.RunInfo.Name, "", "yaml"), data)
}

// @Summary Статистика набора
// @Tags Наборы
// @Param 	id 	path 	string  true 	"run ID"
// @Success 200 {object} apimodels.Response{data=statisticsapimodels.Dashboard}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/runs/{id}/statistics [get]
func (c *runApiController) statistics(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if _, err = runhandler.Instance.Get(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статистики набора")
	}
	dashboard, err := statisticshandler.Instance.Dashboard(statisticsapimodels.Filter{RecruitmentRunID: id})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статистики набора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboard))
}
