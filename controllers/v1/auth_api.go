package apiv1

import (
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/controllers"
	spaceauthhandler "hr-onboarding-backend/lib/space/auth"
	spacehandler "hr-onboarding-backend/lib/space/handler"
	"hr-onboarding-backend/middleware"
	apimodels "hr-onboarding-backend/models/api"
	authapimodels "hr-onboarding-backend/models/api/auth"
	spaceapimodels "hr-onboarding-backend/models/api/space"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", middleware.RateLimitPerIP(config.Conf.Auth.LoginRatePerSec, config.Conf.Auth.LoginRateBurst), controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Get("me", middleware.AuthorizationRequired(), controller.me)
	})
}

// @Summary Company registration
// @Tags Auth
// @Description Creates the company space with its admin user
// @Param	body				body		spaceapimodels.CreateOrganization	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload spaceapimodels.CreateOrganization
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID, err := spacehandler.Instance.CreateOrganizationSpace(ctx.UserContext(), payload)
	if err != nil {
		if errors.Is(err, spacehandler.ErrEmailExists) || errors.Is(err, spacehandler.ErrEINExists) {
			return c.SendError(ctx, err)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(spaceID))
}

// @Summary Login
// @Tags Auth
// @Description Login by email and password
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 429 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := spaceauthhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, spaceauthhandler.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Current user
// @Tags Auth
// @Description Current user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=spaceapimodels.SpaceUser}
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := spaceauthhandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(middleware.NotAuthenticatedMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Refresh JWT
// @Tags Auth
// @Description Issues a new token pair
// @Param	body				body		authapimodels.JWTRefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.JWTRefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := spaceauthhandler.Instance.RefreshToken(payload.RefreshToken)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(middleware.NotAuthenticatedMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
