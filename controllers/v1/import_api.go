package apiv1

import (
	"io"

	"interview-scorer-backend/controllers"
	importhandler "interview-scorer-backend/lib/importer"
	apimodels "interview-scorer-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type importApiController struct {
	controllers.BaseAPIController
}

func InitImportApiRouters(app *fiber.App) {
	controller := importApiController{}
	app.Post("import", controller.load)
}

// @Summary Загрузить yaml файл
// @Tags Обмен
// @Description Тип файла (шаблон, результат, настройки, набор, резервная копия) определяется по содержимому
// @Param   file		formData	file 	false 	"yaml файл, либо yaml в теле запроса"
// @Success 200 {object} apimodels.Response{data=apimodels.ImportView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/import [post]
func (c *importApiController) load(ctx *fiber.Ctx) error {
	data, err := c.readFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if len(data) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("файл не передан"))
	}
	view, err := importhandler.Instance.Import(data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки файла")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *importApiController) readFile(ctx *fiber.Ctx) ([]byte, error) {
	file, err := ctx.FormFile("file")
	if err != nil {
		// файл не в multipart, берем тело целиком
		return append([]byte(nil), ctx.Body()...), nil
	}
	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("ошибка закрытия загруженного файла")
		}
	}()
	return io.ReadAll(reader)
}
