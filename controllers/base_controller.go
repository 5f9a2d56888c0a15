package controllers

import (
	"hr-onboarding-backend/lib/applicant"
	applicanthistoryhandler "hr-onboarding-backend/lib/applicant-history"
	filestorage "hr-onboarding-backend/lib/file-storage"
	documenthandler "hr-onboarding-backend/lib/onboarding/document"
	signaturehandler "hr-onboarding-backend/lib/onboarding/signature"
	"hr-onboarding-backend/lib/qualification"
	"hr-onboarding-backend/lib/screening"
	spacehandler "hr-onboarding-backend/lib/space/handler"
	spaceusershandler "hr-onboarding-backend/lib/space/users/handler"
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	vacancyhandler "hr-onboarding-backend/lib/vacancy"
	apimodels "hr-onboarding-backend/models/api"
	filesapimodels "hr-onboarding-backend/models/api/files"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var notFoundErrors = []error{
	applicant.ErrNotFound,
	applicant.ErrVacancyNotFound,
	applicanthistoryhandler.ErrApplicantNotFound,
	vacancyhandler.ErrNotFound,
	qualification.ErrApplicantNotFound,
	qualification.ErrDocumentNotFound,
	screening.ErrVacancyNotFound,
	filestorage.ErrFileNotFound,
	documenthandler.ErrUnknownType,
	documenthandler.ErrApplicantNotFound,
	documenthandler.ErrDocumentNotFound,
}

var conflictErrors = []error{
	applicant.ErrDuplicate,
	spacehandler.ErrEmailExists,
	spacehandler.ErrEINExists,
	spaceusershandler.ErrEmailExists,
	signaturehandler.ErrSignatureExists,
	documenthandler.ErrDocumentExists,
	documenthandler.ErrDocumentCompleted,
	documenthandler.ErrSignatureRequired,
	documenthandler.ErrSubmitInProgress,
}

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("id is required")
	}
	return id, nil
}

// FormFile - multipart file of the request, the closer must be closed by the caller
func (c *BaseAPIController) FormFile(ctx *fiber.Ctx, field string) (filesapimodels.UploadFile, io.Closer, error) {
	header, err := ctx.FormFile(field)
	if err != nil {
		return filesapimodels.UploadFile{}, nil, errors.Errorf("file %v is required", field)
	}
	body, err := header.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded file")
		return filesapimodels.UploadFile{}, nil, errors.New("failed to read uploaded file")
	}
	return filesapimodels.UploadFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Body:        body,
	}, body, nil
}

// SendError - answers with the status matching the handler error
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	var vErr *onboardingapimodels.ValidationError
	if errors.As(err, &vErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewFail(vErr.Error(), vErr))
	}
	status := ErrorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		return ctx.Status(status).JSON(apimodels.NewError(storageerrors.ErrStorage.Error()))
	}
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}

func ErrorStatus(err error) int {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return fiber.StatusNotFound
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return fiber.StatusConflict
		}
	}
	if errors.Is(err, storageerrors.ErrStorage) {
		return fiber.StatusInternalServerError
	}
	return fiber.StatusBadRequest
}
