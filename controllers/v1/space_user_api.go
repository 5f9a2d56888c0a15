package apiv1

import (
	"hr-onboarding-backend/controllers"
	spaceusershandler "hr-onboarding-backend/lib/space/users/handler"
	"hr-onboarding-backend/middleware"
	"hr-onboarding-backend/models"
	apimodels "hr-onboarding-backend/models/api"
	spaceapimodels "hr-onboarding-backend/models/api/space"

	"github.com/gofiber/fiber/v2"
)

type spaceUserController struct {
	controllers.BaseAPIController
}

func InitSpaceUserRouters(app *fiber.App) {
	controller := spaceUserController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.SpaceAdminRequired(), controller.create)
		router.Get(":id", controller.get)
	})
}

// @Summary Add HR user
// @Tags Space users
// @Description Adds a recruiter to the company space (admins only)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		spaceapimodels.CreateUser	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/space/users [post]
func (c *spaceUserController) create(ctx *fiber.Ctx) error {
	var payload spaceapimodels.CreateUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID, err := spaceusershandler.Instance.CreateUser(middleware.GetUserSpace(ctx), payload, models.SpaceUserRole)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(userID))
}

// @Summary HR users
// @Tags Space users
// @Description Paginated list of the space HR users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page		query		int	false	"page number"
// @Param   limit		query		int	false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]spaceapimodels.SpaceUser}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/space/users [get]
func (c *spaceUserController) list(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	page, limit := pagination.GetPage()
	list, rowCount, err := spaceusershandler.Instance.GetListUsers(middleware.GetUserSpace(ctx), page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary HR user
// @Tags Space users
// @Description HR user by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true         "user ID"
// @Success 200 {object} apimodels.Response{data=spaceapimodels.SpaceUser}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/users/{id} [get]
func (c *spaceUserController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user, err := spaceusershandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if user == nil || user.SpaceID != middleware.GetUserSpace(ctx) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("user not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}
