package middleware

import (
	authutils "hr-onboarding-backend/lib/utils/auth-utils"
	"hr-onboarding-backend/models"
	apimodels "hr-onboarding-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

const forbiddenMsg = "operation is not permitted"

func GetUserSpace(ctx *fiber.Ctx) string {
	return authutils.GetClaim(ctx, authutils.ClaimSpace)
}

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetClaim(ctx, authutils.ClaimSubject)
}

func GetUserName(ctx *fiber.Ctx) string {
	return authutils.GetClaim(ctx, authutils.ClaimName)
}

// GetApplicantID - applicant of a candidate token
func GetApplicantID(ctx *fiber.Ctx) string {
	return authutils.GetClaim(ctx, authutils.ClaimApplicant)
}

func GetSpaceRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(authutils.GetClaim(ctx, authutils.ClaimRole))
}

func SpaceAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetSpaceRole(ctx).IsSpaceAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(forbiddenMsg))
		}
		return ctx.Next()
	}
}

// StaffRequired - HR users of the space (admin or recruiter)
func StaffRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetSpaceRole(ctx).IsStaff() || GetUserSpace(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(forbiddenMsg))
		}
		return ctx.Next()
	}
}

// CandidateRequired - hired candidate going through onboarding
func CandidateRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetSpaceRole(ctx) != models.CandidateRole || GetApplicantID(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(forbiddenMsg))
		}
		return ctx.Next()
	}
}
