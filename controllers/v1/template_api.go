package apiv1

import (
	"interview-scorer-backend/controllers"
	"interview-scorer-backend/lib/interchange"
	templatehandler "interview-scorer-backend/lib/template"
	"interview-scorer-backend/lib/utils/helpers"
	apimodels "interview-scorer-backend/models/api"
	templateapimodels "interview-scorer-backend/models/api/template"

	"github.com/gofiber/fiber/v2"
)

const yamlContentType = "application/x-yaml"

type templateApiController struct {
	controllers.BaseAPIController
}

func InitTemplateApiRouters(app *fiber.App) {
	controller := templateApiController{}
	app.Route("templates", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.rename)
			idRoute.Delete("", controller.delete)
			idRoute.Post("duplicate", controller.duplicate)
			idRoute.Get("export", controller.export)

			idRoute.Post("categories", controller.addCategory)
			idRoute.Route("categories/:catID", func(catRoute fiber.Router) {
				catRoute.Put("", controller.renameCategory)
				catRoute.Delete("", controller.removeCategory)
				catRoute.Post("move", controller.moveCategory)
				catRoute.Post("questions", controller.addQuestion)
			})

			idRoute.Route("questions/:qID", func(qRoute fiber.Router) {
				qRoute.Put("", controller.updateQuestion)
				qRoute.Delete("", controller.removeQuestion)
				qRoute.Post("move", controller.moveQuestion)
				qRoute.Get("feedback-options", controller.feedbackOptions)
				qRoute.Post("feedbacks", controller.addFeedback)
				qRoute.Put("feedbacks/:fID", controller.updateFeedback)
				qRoute.Delete("feedbacks/:fID", controller.removeFeedback)
			})
		})
	})
}

// @Summary Список шаблонов
// @Tags Шаблоны
// @Success 200 {object} apimodels.Response{data=[]templateapimodels.TemplateView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/list [get]
func (c *templateApiController) list(ctx *fiber.Ctx) error {
	list, err := templatehandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка шаблонов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создать шаблон
// @Tags Шаблоны
// @Param	body	body	templateapimodels.TemplateData	false	"request body"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates [post]
func (c *templateApiController) create(ctx *fiber.Ctx) error {
	var payload templateapimodels.TemplateData
	if len(ctx.Body()) != 0 {
		if err := c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	tpl, err := templatehandler.Instance.Create(payload.Name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания шаблона")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Получить шаблон
// @Tags Шаблоны
// @Param 	id 	path 	string  true 	"template ID"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id} [get]
func (c *templateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения шаблона")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Переименовать шаблон
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param	body	body	templateapimodels.TemplateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id} [put]
func (c *templateApiController) rename(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload templateapimodels.TemplateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.Rename(id, payload.Name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка переименования шаблона")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Удалить шаблон
// @Tags Шаблоны
// @Description Результаты интервью по шаблону сохраняются
// @Param 	id 	path 	string  true 	"template ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id} [delete]
func (c *templateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = templatehandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления шаблона")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Копировать шаблон
// @Tags Шаблоны
// @Param 	id 	path 	string  true 	"template ID"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/duplicate [post]
func (c *templateApiController) duplicate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.Duplicate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка копирования шаблона")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Выгрузить шаблон в yaml
// @Tags Шаблоны
// @Param 	id 	path 	string  true 	"template ID"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/export [get]
func (c *templateApiController) export(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки шаблона")
	}
	data, err := interchange.Dump(tpl)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки шаблона")
	}
	return c.SendAttachment(ctx, yamlContentType, helpers.FileName(tpl.Name, "template", "yaml"), data)
}

// @Summary Добавить категорию
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param	body	body	templateapimodels.CategoryData	true	"request body"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/categories [post]
func (c *templateApiController) addCategory(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload templateapimodels.CategoryData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.AddCategory(id, payload.Name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления категории")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Переименовать категорию
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	catID 	path 	string  true 	"category ID"
// @Param	body	body	templateapimodels.CategoryData	true	"request body"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/categories/{catID} [put]
func (c *templateApiController) renameCategory(ctx *fiber.Ctx) error {
	id, catID, err := c.getTemplateAndKey(ctx, "catID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload templateapimodels.CategoryData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.RenameCategory(id, catID, payload.Name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка переименования категории")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Удалить категорию
// @Tags Шаблоны
// @Description Удаляются также все вопросы категории
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	catID 	path 	string  true 	"category ID"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/categories/{catID} [delete]
func (c *templateApiController) removeCategory(ctx *fiber.Ctx) error {
	id, catID, err := c.getTemplateAndKey(ctx, "catID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.RemoveCategory(id, catID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления категории")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Переместить категорию
// @Tags Шаблоны
// @Description Категория встает на место целевой категории
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	catID 	path 	string  true 	"category ID"
// @Param	body	body	templateapimodels.CategoryMove	true	"request body"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/categories/{catID}/move [post]
func (c *templateApiController) moveCategory(ctx *fiber.Ctx) error {
	id, catID, err := c.getTemplateAndKey(ctx, "catID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload templateapimodels.CategoryMove
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.MoveCategory(id, catID, payload.TargetID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка перемещения категории")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Добавить вопрос в категорию
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	catID 	path 	string  true 	"category ID"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/categories/{catID}/questions [post]
func (c *templateApiController) addQuestion(ctx *fiber.Ctx) error {
	id, catID, err := c.getTemplateAndKey(ctx, "catID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.AddQuestion(id, catID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления вопроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Изменить вопрос
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	qID 	path 	string  true 	"question ID"
// @Param	body	body	templateapimodels.QuestionPatch	true	"request body"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/questions/{qID} [put]
func (c *templateApiController) updateQuestion(ctx *fiber.Ctx) error {
	id, qID, err := c.getTemplateAndKey(ctx, "qID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload templateapimodels.QuestionPatch
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.UpdateQuestion(id, qID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вопроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Удалить вопрос
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	qID 	path 	string  true 	"question ID"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/questions/{qID} [delete]
func (c *templateApiController) removeQuestion(ctx *fiber.Ctx) error {
	id, qID, err := c.getTemplateAndKey(ctx, "qID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.RemoveQuestion(id, qID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вопроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Переместить вопрос вверх или вниз внутри категории
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	qID 	path 	string  true 	"question ID"
// @Param	body	body	templateapimodels.QuestionMove	true	"request body"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/questions/{qID}/move [post]
func (c *templateApiController) moveQuestion(ctx *fiber.Ctx) error {
	id, qID, err := c.getTemplateAndKey(ctx, "qID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload templateapimodels.QuestionMove
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.MoveQuestion(id, qID, payload.Direction)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка перемещения вопроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Варианты оценки вопроса
// @Tags Шаблоны
// @Description Глобальная шкала для типа вопроса и пользовательские варианты
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	qID 	path 	string  true 	"question ID"
// @Success 200 {object} apimodels.Response{data=[]templateapimodels.FeedbackOption}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/questions/{qID}/feedback-options [get]
func (c *templateApiController) feedbackOptions(ctx *fiber.Ctx) error {
	id, qID, err := c.getTemplateAndKey(ctx, "qID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	options, err := templatehandler.Instance.FeedbackOptions(id, qID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вариантов оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(options))
}

// @Summary Добавить вариант оценки вопроса
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	qID 	path 	string  true 	"question ID"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/questions/{qID}/feedbacks [post]
func (c *templateApiController) addFeedback(ctx *fiber.Ctx) error {
	id, qID, err := c.getTemplateAndKey(ctx, "qID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.AddCustomFeedback(id, qID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления варианта оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Изменить вариант оценки вопроса
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	qID 	path 	string  true 	"question ID"
// @Param 	fID 	path 	string  true 	"feedback ID"
// @Param	body	body	templateapimodels.CustomFeedbackPatch	true	"request body"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/questions/{qID}/feedbacks/{fID} [put]
func (c *templateApiController) updateFeedback(ctx *fiber.Ctx) error {
	id, qID, err := c.getTemplateAndKey(ctx, "qID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fID, err := c.GetIDByKey(ctx, "fID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload templateapimodels.CustomFeedbackPatch
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.UpdateCustomFeedback(id, qID, fID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения варианта оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

// @Summary Удалить вариант оценки вопроса
// @Tags Шаблоны
// @Param 	id 		path 	string  true 	"template ID"
// @Param 	qID 	path 	string  true 	"question ID"
// @Param 	fID 	path 	string  true 	"feedback ID"
// @Success 200 {object} apimodels.Response{data=templateapimodels.TemplateView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id}/questions/{qID}/feedbacks/{fID} [delete]
func (c *templateApiController) removeFeedback(ctx *fiber.Ctx) error {
	id, qID, err := c.getTemplateAndKey(ctx, "qID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fID, err := c.GetIDByKey(ctx, "fID")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tpl, err := templatehandler.Instance.RemoveCustomFeedback(id, qID, fID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления варианта оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tpl))
}

func (c *templateApiController) getTemplateAndKey(ctx *fiber.Ctx, key string) (id, value string, err error) {
	id, err = c.GetID(ctx)
	if err != nil {
		return "", "", err
	}
	value, err = c.GetIDByKey(ctx, key)
	if err != nil {
		return "", "", err
	}
	return id, value, nil
}
