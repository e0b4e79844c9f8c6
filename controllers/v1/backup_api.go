package apiv1

import (
	"fmt"
	"time"

	"interview-scorer-backend/controllers"
	backuphandler "interview-scorer-backend/lib/backup"
	"interview-scorer-backend/lib/interchange"
	apimodels "interview-scorer-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type backupApiController struct {
	controllers.BaseAPIController
}

func InitBackupApiRouters(app *fiber.App) {
	controller := backupApiController{}
	app.Route("backup", func(router fiber.Router) {
		router.Get("snapshot", controller.snapshot)
		router.Post("restore", controller.restore)
		router.Post("upload", controller.upload)
		router.Get("list", controller.list)
		router.Post("restore-object", controller.restoreObject)
	})
}

// @Summary Скачать резервную копию
// @Tags Резервные копии
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/backup/snapshot [get]
func (c *backupApiController) snapshot(ctx *fiber.Ctx) error {
	bundle, err := backuphandler.Instance.Snapshot()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования резервной копии")
	}
	data, err := interchange.Dump(bundle)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования резервной копии")
	}
	fileName := fmt.Sprintf("backup_%s.yaml", time.Now().Format("20060102_150405"))
	return c.SendAttachment(ctx, yamlContentType, fileName, data)
}

// @Summary Восстановить из резервной копии
// @Tags Резервные копии
// @Description Текущие данные полностью заменяются содержимым копии
// @Success 200 {object} apimodels.Response{data=backupapimodels.RestoreSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/backup/restore [post]
func (c *backupApiController) restore(ctx *fiber.Ctx) error {
	doc, err := interchange.Load(ctx.Body())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения резервной копии")
	}
	if doc.Kind != interchange.KindBackup {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("файл не является резервной копией"))
	}
	summary, err := backuphandler.Instance.Restore(*doc.Backup)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка восстановления из резервной копии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(summary))
}

// @Summary Выгрузить резервную копию в хранилище
// @Tags Резервные копии
// @Success 200 {object} apimodels.Response{data=backupapimodels.ObjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/backup/upload [post]
func (c *backupApiController) upload(ctx *fiber.Ctx) error {
	object, err := backuphandler.Instance.Upload(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки резервной копии в хранилище")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(object))
}

// @Summary Резервные копии в хранилище
// @Tags Резервные копии
// @Success 200 {object} apimodels.Response{data=[]backupapimodels.ObjectView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/backup/list [get]
func (c *backupApiController) list(ctx *fiber.Ctx) error {
	list, err := backuphandler.Instance.List(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка резервных копий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Восстановить из резервной копии в хранилище
// @Tags Резервные копии
// @Param 	key 	query 	string  true 	"ключ объекта"
// @Success 200 {object} apimodels.Response{data=backupapimodels.RestoreSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/backup/restore-object [post]
func (c *backupApiController) restoreObject(ctx *fiber.Ctx) error {
	key := ctx.Query("key")
	if key == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан параметр key"))
	}
	summary, err := backuphandler.Instance.RestoreObject(ctx.UserContext(), key)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка восстановления из резервной копии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(summary))
}
