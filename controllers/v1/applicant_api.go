package apiv1

import (
	"fmt"
	"hr-onboarding-backend/controllers"
	"hr-onboarding-backend/lib/applicant"
	applicanthistoryhandler "hr-onboarding-backend/lib/applicant-history"
	documenthandler "hr-onboarding-backend/lib/onboarding/document"
	"hr-onboarding-backend/lib/qualification"
	"hr-onboarding-backend/lib/screening"
	"hr-onboarding-backend/middleware"
	"hr-onboarding-backend/models"
	apimodels "hr-onboarding-backend/models/api"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	"time"

	"github.com/gofiber/fiber/v2"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	app.Route("applicant", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Post("bulk-upload", controller.bulkUpload)
		router.Put("category", controller.setCategoryMulti)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Put("advance", controller.advance)
			idRouter.Put("decline", controller.decline)
			idRouter.Put("hire", controller.hire)
			idRouter.Put("category", controller.setCategory)
			idRouter.Post("comment", controller.addComment)
			idRouter.Post("history", controller.history)
			idRouter.Get("onboarding", controller.onboardingProgress)
			idRouter.Route("qualification", func(docRouter fiber.Router) {
				docRouter.Get("", controller.qualificationList)
				docRouter.Post(":docType", controller.qualificationUpload)
				docRouter.Put(":docType/status", controller.qualificationStatus)
			})
		})
	})
}

// @Summary List
// @Tags Applicant
// @Description Paginated list of a pipeline stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.ApplicantFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/applicant/list [post]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicantFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := applicant.Instance.List(middleware.GetUserSpace(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create
// @Tags Applicant
// @Description Adds an applicant to a job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.ApplicantData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/space/applicant [post]
func (c *applicantApiController) create(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicantData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicant.Instance.Create(middleware.GetUserSpace(ctx), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get
// @Tags Applicant
// @Description Applicant by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicant.Instance.GetByID(middleware.GetUserSpace(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update
// @Tags Applicant
// @Description Update
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.ApplicantData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id} [put]
func (c *applicantApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload applicantapimodels.ApplicantData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicant.Instance.Update(middleware.GetUserSpace(ctx), middleware.GetUserID(ctx), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Advance
// @Tags Applicant
// @Description APPLICANT -> CANDIDATE
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/advance [put]
func (c *applicantApiController) advance(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicant.Instance.Advance(middleware.GetUserSpace(ctx), middleware.GetUserID(ctx), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Decline
// @Tags Applicant
// @Description Declines an applicant or candidate, the reason is required
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicantapimodels.DeclineRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/decline [put]
func (c *applicantApiController) decline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload applicantapimodels.DeclineRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicant.Instance.Decline(middleware.GetUserSpace(ctx), middleware.GetUserID(ctx), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Hire
// @Tags Applicant
// @Description CANDIDATE -> HIRED, creates the onboarding account and emails the invite
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicantapimodels.HireRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/hire [put]
func (c *applicantApiController) hire(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload applicantapimodels.HireRequest
	if len(ctx.Body()) != 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicant.Instance.Hire(middleware.GetUserSpace(ctx), middleware.GetUserID(ctx), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Screening category
// @Tags Screening
// @Description Sets the screening category of an applicant
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicantapimodels.CategoryRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/category [put]
func (c *applicantApiController) setCategory(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload applicantapimodels.CategoryRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicant.Instance.SetCategory(middleware.GetUserSpace(ctx), middleware.GetUserID(ctx), id, payload.Category)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Screening category (multiple)
// @Tags Screening
// @Description Sets the screening category of several applicants
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.MultiCategoryRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/space/applicant/category [put]
func (c *applicantApiController) setCategoryMulti(ctx *fiber.Ctx) error {
	var payload applicantapimodels.MultiCategoryRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := applicant.Instance.SetCategoryMulti(middleware.GetUserSpace(ctx), middleware.GetUserID(ctx), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Bulk upload
// @Tags Screening
// @Description Creates applicants from an xlsx file, invalid rows are reported and skipped
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   vacancy_id		formData	string 	true 	"job posting"
// @Param   file		formData	file 	true 	"xlsx file"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.BulkUploadResult}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/bulk-upload [post]
func (c *applicantApiController) bulkUpload(ctx *fiber.Ctx) error {
	vacancyID := ctx.FormValue("vacancy_id")
	if vacancyID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("vacancy_id is required"))
	}
	file, closer, err := c.FormFile(ctx, "file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer closer.Close()

	resp, err := screening.Instance.BulkUpload(middleware.GetUserSpace(ctx), middleware.GetUserID(ctx), vacancyID, file.Body)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export
// @Tags Applicant
// @Description Xlsx export of the selected or filtered applicants
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicantapimodels.XlsExportRequest	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @router /api/v1/space/applicant/export [post]
func (c *applicantApiController) export(ctx *fiber.Ctx) error {
	var payload applicantapimodels.XlsExportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.Filter != nil {
		if err := payload.Filter.Validate(); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	buffer, err := applicant.Instance.ExportXls(middleware.GetUserSpace(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileName := fmt.Sprintf("applicants-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(buffer)
}

// @Summary Add comment
// @Tags Applicant
// @Description Comment with an optional 1..5 rating
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicantapimodels.CommentRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/comment [post]
func (c *applicantApiController) addComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload applicantapimodels.CommentRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicanthistoryhandler.Instance.AddComment(middleware.GetUserSpace(ctx), id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary History
// @Tags Applicant
// @Description Paginated action log and comments
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicantapimodels.ApplicantHistoryFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicantapimodels.ApplicantHistoryView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/history [post]
func (c *applicantApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload applicantapimodels.ApplicantHistoryFilter
	if len(ctx.Body()) != 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	list, rowCount, err := applicanthistoryhandler.Instance.List(middleware.GetUserSpace(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Onboarding progress
// @Tags Applicant
// @Description Onboarding steps of a hired candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=onboardingapimodels.ProgressView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/onboarding [get]
func (c *applicantApiController) onboardingProgress(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := documenthandler.Instance.Progress(documenthandler.Owner{SpaceID: middleware.GetUserSpace(ctx), ApplicantID: id})
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Qualification documents
// @Tags Qualification
// @Description All qualification document types with their status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.QualificationDocView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/qualification [get]
func (c *applicantApiController) qualificationList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := qualification.Instance.List(middleware.GetUserSpace(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Upload qualification document
// @Tags Qualification
// @Description Uploads or replaces a document of an active applicant
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   docType          		path    string  				    	true         "RESUME, DRIVERS_LICENSE, ..."
// @Param   file		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.QualificationDocView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/qualification/{docType} [post]
func (c *applicantApiController) qualificationUpload(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	docType := models.QualificationDocType(ctx.Params("docType"))
	if err = docType.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, closer, err := c.FormFile(ctx, "file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer closer.Close()

	resp, err := qualification.Instance.Upload(ctx.UserContext(), middleware.GetUserSpace(ctx), id, docType, file)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Review qualification document
// @Tags Qualification
// @Description APPROVED or REJECTED with an optional comment
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   docType          		path    string  				    	true         "document type"
// @Param	body body	 applicantapimodels.QualificationStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/applicant/{id}/qualification/{docType}/status [put]
func (c *applicantApiController) qualificationStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	docType := models.QualificationDocType(ctx.Params("docType"))
	if err = docType.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload applicantapimodels.QualificationStatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = qualification.Instance.SetStatus(middleware.GetUserSpace(ctx), id, docType, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
