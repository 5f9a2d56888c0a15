package apiv1

import (
	"hr-onboarding-backend/controllers"
	filestorage "hr-onboarding-backend/lib/file-storage"
	apimodels "hr-onboarding-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type filesApiController struct {
	controllers.BaseAPIController
}

func InitFilesApiRouters(app *fiber.App) {
	controller := filesApiController{}
	app.Get(":id", controller.download)
}

// @Summary Download file
// @Tags Files
// @Description Streams a stored file with its content type
// @Param   id          		path    string  				    	true         "file ID"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @router /api/v1/files/{id} [get]
func (c *filesApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, file, err := filestorage.Instance.GetFile(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	if file.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, file.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+file.Name+`"`)
	return ctx.SendStream(body)
}
