package controller

import (
	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/pkg/serverutils"
	"contractdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Return(ctx *fiber.Ctx) error
	Resubmit(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Stage(ctx *fiber.Ctx) error
	Queue(ctx *fiber.Ctx) error
}

type reviewController struct {
	service service.IReviewService
}

func NewReviewController(service service.IReviewService) IReviewController {
	return &reviewController{service: service}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/review/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/contract/:id/submit", c.Submit)
	h.Post("/update/:id/return", serverutils.RequireRole(constant.RoleContractAdmin), c.Return)
	h.Post("/update/:id/resubmit", c.Resubmit)
	h.Post("/update/:id/complete", serverutils.RequireRole(constant.RoleContractAdmin), c.Complete)
	h.Get("/contract/:id/history", c.History)
	h.Get("/contract/:id/stage", c.Stage)
	h.Get("/queue/:name", c.Queue)
}

func (c *reviewController) Submit(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.SubmitUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ContractId = uint(id)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit review", res))
}

func (c *reviewController) Return(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.ReturnUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.UpdateId = uint(id)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Return(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success return review", res))
}

func (c *reviewController) Resubmit(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.ResubmitUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.UpdateId = uint(id)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Resubmit(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resubmit review", res))
}

func (c *reviewController) Complete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.Complete(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success complete review", res))
}

func (c *reviewController) History(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.History(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get review history", res))
}

func (c *reviewController) Stage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.Stage(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get workflow stage", res))
}

// Queue serves the six operator worklists keyed by path name.
func (c *reviewController) Queue(ctx *fiber.Ctx) error {
	skip := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 50)

	var (
		res *dto.ContractListResponse
		err error
	)
	switch ctx.Params("name") {
	case "no-documents":
		res, err = c.service.QueueNoDocuments(ctx.Context(), skip, limit)
	case "needing-review":
		res, err = c.service.QueueNeedingReview(ctx.Context(), skip, limit)
	case "requiring-attention":
		res, err = c.service.QueueRequiringAttention(ctx.Context(), skip, limit)
	case "pending-admin-review":
		res, err = c.service.QueuePendingAdminReview(ctx.Context(), skip, limit)
	case "awaiting-termination-document":
		res, err = c.service.QueueAwaitingTerminationDocument(ctx.Context(), skip, limit)
	case "terminated":
		res, err = c.service.QueueTerminated(ctx.Context(), skip, limit)
	default:
		return fiber.NewError(fiber.StatusNotFound, "unknown queue")
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get queue", res))
}
