package controller

import (
	"hireup-be/internal/dto"
	"hireup-be/internal/pkg/serverutils"
	"hireup-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IApplicationController interface {
	RegisterRoutes(r fiber.Router)
	Apply(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	ListApplicants(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type applicationController struct {
	applicationService service.IApplicationService
}

func NewApplicationController(applicationService service.IApplicationService) IApplicationController {
	return &applicationController{
		applicationService: applicationService,
	}
}

func (c *applicationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/application/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Apply)
	h.Get("", c.ListMine)
	h.Get("company", serverutils.CompanyOnlyMiddleware, c.ListApplicants)
	h.Patch(":id/status", serverutils.CompanyOnlyMiddleware, c.UpdateStatus)
}

func accountIdFromLocals(ctx *fiber.Ctx) uuid.UUID {
	accountIdStr, _ := ctx.Locals("account_id").(string)
	accountId, _ := uuid.Parse(accountIdStr)
	return accountId
}

func (c *applicationController) Apply(ctx *fiber.Ctx) error {
	userId := accountIdFromLocals(ctx)

	var req dto.ApplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.applicationService.Apply(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit application", res))
}

func (c *applicationController) ListMine(ctx *fiber.Ctx) error {
	userId := accountIdFromLocals(ctx)

	res, err := c.applicationService.ListForUser(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("User applications", res))
}

func (c *applicationController) ListApplicants(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	var jobId *uuid.UUID
	if jobIdParam := ctx.Query("job_id", ""); jobIdParam != "" {
		id, err := uuid.Parse(jobIdParam)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid job_id"))
		}
		jobId = &id
	}

	res, err := c.applicationService.ListApplicants(ctx.Context(), companyId, jobId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Company applicants", res))
}

func (c *applicationController) UpdateStatus(ctx *fiber.Ctx) error {
	companyId := accountIdFromLocals(ctx)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid application id"))
	}

	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.applicationService.UpdateStatus(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Application status updated", res))
}
