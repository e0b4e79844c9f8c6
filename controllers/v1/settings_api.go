package apiv1

import (
	"interview-scorer-backend/controllers"
	"interview-scorer-backend/lib/interchange"
	settingshandler "interview-scorer-backend/lib/settings"
	apimodels "interview-scorer-backend/models/api"
	settingsapimodels "interview-scorer-backend/models/api/settings"

	"github.com/gofiber/fiber/v2"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsApiRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("settings", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", controller.save)
		router.Post("reset", controller.reset)
		router.Get("export", controller.export)
	})
}

// @Summary Глобальная шкала оценок
// @Tags Настройки
// @Success 200 {object} apimodels.Response{data=settingsapimodels.Settings}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings [get]
func (c *settingsApiController) get(ctx *fiber.Ctx) error {
	settings, err := settingshandler.Instance.Get()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения настроек")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(settings))
}

// @Summary Сохранить шкалу оценок
// @Tags Настройки
// @Param	body	body	settingsapimodels.Settings	true	"request body"
// @Success 200 {object} apimodels.Response{data=settingsapimodels.Settings}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings [put]
func (c *settingsApiController) save(ctx *fiber.Ctx) error {
	var payload settingsapimodels.Settings
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	settings, err := settingshandler.Instance.Save(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения настроек")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(settings))
}

// @Summary Сбросить шкалу оценок к значениям по умолчанию
// @Tags Настройки
// @Success 200 {object} apimodels.Response{data=settingsapimodels.Settings}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/reset [post]
func (c *settingsApiController) reset(ctx *fiber.Ctx) error {
	settings, err := settingshandler.Instance.Reset()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сброса настроек")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(settings))
}

// @Summary Выгрузить настройки в yaml
// @Tags Настройки
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/export [get]
func (c *settingsApiController) export(ctx *fiber.Ctx) error {
	settings, err := settingshandler.Instance.Get()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки настроек")
	}
	data, err := interchange.Dump(settings)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки настроек")
	}
	return c.SendAttachment(ctx, yamlContentType, "settings.yaml", data)
}
