package apiv1

import (
	"hr-onboarding-backend/controllers"
	documenthandler "hr-onboarding-backend/lib/onboarding/document"
	signaturehandler "hr-onboarding-backend/lib/onboarding/signature"
	"hr-onboarding-backend/middleware"
	"hr-onboarding-backend/models"
	apimodels "hr-onboarding-backend/models/api"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"

	"github.com/gofiber/fiber/v2"
)

type onboardingApiController struct {
	controllers.BaseAPIController
}

func InitOnboardingApiRouters(app *fiber.App) {
	controller := onboardingApiController{}
	app.Route("documents/:slug", func(router fiber.Router) {
		router.Post("add-document", controller.save)
		router.Patch("edit-info", controller.edit)
		router.Patch("submit-document", controller.submit)
		router.Get("retrieve-document", controller.get)
		// legacy clients
		router.Get("retireve-document", controller.get)
		router.Get("preview", controller.preview)
	})
	app.Get("progress", controller.progress)
	app.Route("signature", func(router fiber.Router) {
		router.Get("", controller.getSignature)
		router.Post("", controller.captureSignature)
	})
}

// @Summary Save document
// @Tags Onboarding
// @Description First save of a form document, renders the PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   slug          		path    string  				    	true         "document slug, e.g. personal-info"
// @Param	body body	 object	true	"document payload"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/onboarding/documents/{slug}/add-document [post]
func (c *onboardingApiController) save(ctx *fiber.Ctx) error {
	docType, err := c.documentType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := documenthandler.Instance.Save(ctx.UserContext(), c.owner(ctx), docType, ctx.Body())
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Edit document
// @Tags Onboarding
// @Description Replaces the payload of a saved document that is not completed yet
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   slug          		path    string  				    	true         "document slug"
// @Param	body body	 object	true	"document payload"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/onboarding/documents/{slug}/edit-info [patch]
func (c *onboardingApiController) edit(ctx *fiber.Ctx) error {
	docType, err := c.documentType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := documenthandler.Instance.Edit(ctx.UserContext(), c.owner(ctx), docType, ctx.Body())
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Submit document
// @Tags Onboarding
// @Description Signs and completes the document, repeated submits are a no-op
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   slug          		path    string  				    	true         "document slug"
// @Param	body body	 onboardingapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/onboarding/documents/{slug}/submit-document [patch]
func (c *onboardingApiController) submit(ctx *fiber.Ctx) error {
	docType, err := c.documentType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}

	var payload onboardingapimodels.SubmitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := documenthandler.Instance.Submit(ctx.UserContext(), c.owner(ctx), docType, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get document
// @Tags Onboarding
// @Description Document status and payload, NOT_STARTED when it was never saved
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   slug          		path    string  				    	true         "document slug"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.DocumentView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/onboarding/documents/{slug}/retrieve-document [get]
func (c *onboardingApiController) get(ctx *fiber.Ctx) error {
	docType, err := c.documentType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := documenthandler.Instance.Get(c.owner(ctx), docType)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Preview document
// @Tags Onboarding
// @Description Rendered PDF of the document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   slug          		path    string  				    	true         "document slug"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @router /api/v1/onboarding/documents/{slug}/preview [get]
func (c *onboardingApiController) preview(ctx *fiber.Ctx) error {
	docType, err := c.documentType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	body, file, err := documenthandler.Instance.Preview(ctx.UserContext(), c.owner(ctx), docType)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+file.Name+`"`)
	return ctx.SendStream(body)
}

// @Summary Progress
// @Tags Onboarding
// @Description Ordered onboarding steps with statuses and the current step
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.ProgressView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/onboarding/progress [get]
func (c *onboardingApiController) progress(ctx *fiber.Ctx) error {
	resp, err := documenthandler.Instance.Progress(c.owner(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get signature
// @Tags Onboarding
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.SignatureView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/onboarding/signature [get]
func (c *onboardingApiController) getSignature(ctx *fiber.Ctx) error {
	resp, err := signaturehandler.Instance.Get(middleware.GetApplicantID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Capture signature
// @Tags Onboarding
// @Description Stores the drawn signature once, it can not be recaptured
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   typed_name		formData	string 	true 	"full name typed by the signer"
// @Param   signature		formData	file 	true 	"signature image"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.SignatureView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/onboarding/signature [post]
func (c *onboardingApiController) captureSignature(ctx *fiber.Ctx) error {
	file, closer, err := c.FormFile(ctx, "signature")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer closer.Close()

	resp, err := signaturehandler.Instance.Capture(ctx.UserContext(), middleware.GetUserSpace(ctx),
		middleware.GetApplicantID(ctx), ctx.FormValue("typed_name"), file)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *onboardingApiController) documentType(ctx *fiber.Ctx) (models.DocumentType, error) {
	docType, ok := onboardingapimodels.TypeBySlug(ctx.Params("slug"))
	if !ok {
		return "", documenthandler.ErrUnknownType
	}
	return docType, nil
}

func (c *onboardingApiController) owner(ctx *fiber.Ctx) documenthandler.Owner {
	return documenthandler.Owner{
		SpaceID:     middleware.GetUserSpace(ctx),
		ApplicantID: middleware.GetApplicantID(ctx),
	}
}
