package apiv1

import (
	"interview-scorer-backend/controllers"
	"interview-scorer-backend/lib/interchange"
	resulthandler "interview-scorer-backend/lib/result"
	"interview-scorer-backend/lib/utils/helpers"
	apimodels "interview-scorer-backend/models/api"
	resultapimodels "interview-scorer-backend/models/api/result"

	"github.com/gofiber/fiber/v2"
)

type resultApiController struct {
	controllers.BaseAPIController
}

func InitResultApiRouters(app *fiber.App) {
	controller := resultApiController{}
	app.Route("results", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.save)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("export", controller.export)
			idRoute.Get("report", controller.report)
			idRoute.Post("share", controller.share)
		})
	})
}

// @Summary Список результатов интервью
// @Tags Результаты
// @Description Новые сверху
// @Param	run_id	query	string	false	"ID набора"
// @Success 200 {object} apimodels.Response{data=[]resultapimodels.ResultView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/results/list [get]
func (c *resultApiController) list(ctx *fiber.Ctx) error {
	var filter resultapimodels.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := resulthandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка результатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сохранить интервью
// @Tags Результаты
// @Description Сохраняет снимок шаблона вместе с ответами и итоговыми баллами
// @Param	body	body	resultapimodels.SaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=resultapimodels.ResultView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/results [post]
func (c *resultApiController) save(ctx *fiber.Ctx) error {
	var payload resultapimodels.SaveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := resulthandler.Instance.Save(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Получить результат интервью
// @Tags Результаты
// @Description Результат с расчетом по категориям и по вопросам
// @Param 	id 	path 	string  true 	"result ID"
// @Success 200 {object} apimodels.Response{data=resultapimodels.ResultDetails}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/results/{id} [get]
func (c *resultApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	details, err := resulthandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения результата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(details))
}

// @Summary Изменить результат интервью
// @Tags Результаты
// @Description Меняются только резюме и привязка к набору
// @Param 	id 		path 	string  true 	"result ID"
// @Param	body	body	resultapimodels.UpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=resultapimodels.ResultView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/results/{id} [put]
func (c *resultApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload resultapimodels.UpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := resulthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения результата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Удалить результат интервью
// @Tags Результаты
// @Param 	id 	path 	string  true 	"result ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/results/{id} [delete]
func (c *resultApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = resulthandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления результата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузить результат в yaml
// @Tags Результаты
// @Param 	id 	path 	string  true 	"result ID"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/results/{id}/export [get]
func (c *resultApiController) export(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	details, err := resulthandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки результата")
	}
	data, err := interchange.Dump(details.ResultView)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки результата")
	}
	return c.SendAttachment(ctx, yamlContentType, helpers.FileName(details.CandidateName, "interview", "yaml"), data)
}

// @Summary Отчет по интервью в PDF
// @Tags Результаты
// @Param 	id 	path 	string  true 	"result ID"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/results/{id}/report [get]
func (c *resultApiController) report(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := resulthandler.Instance.Report(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчета")
	}
	return c.SendAttachment(ctx, "application/pdf", fileName, body)
}

// @Summary Отправить результат на почту
// @Tags Результаты
// @Param 	id 		path 	string  true 	"result ID"
// @Param	body	body	resultapimodels.ShareRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/results/{id}/share [post]
func (c *resultApiController) share(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload resultapimodels.ShareRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = resulthandler.Instance.Share(id, payload.Email); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки результата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
