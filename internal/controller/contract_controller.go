package controller

import (
	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/pkg/serverutils"
	"contractdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContractController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowByContractID(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	SweepExpired(ctx *fiber.Ctx) error
	Extend(ctx *fiber.Ctx) error
	SavePendingTermination(ctx *fiber.Ctx) error
	Terminate(ctx *fiber.Ctx) error
	CancelTermination(ctx *fiber.Ctx) error
}

type contractController struct {
	service service.IContractService
}

func NewContractController(service service.IContractService) IContractController {
	return &contractController{service: service}
}

func (c *contractController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/contract/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Post("/sweep-expired", serverutils.RequireRole(constant.RoleContractAdmin), c.SweepExpired)
	h.Get("/number/:contract_id", c.ShowByContractID)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Post(":id/extend", serverutils.RequireRole(constant.RoleContractAdmin), c.Extend)
	h.Post(":id/termination", serverutils.RequireRole(constant.RoleContractAdmin), c.SavePendingTermination)
	h.Post(":id/terminate", serverutils.RequireRole(constant.RoleContractAdmin), c.Terminate)
	h.Post(":id/cancel-termination", serverutils.RequireRole(constant.RoleContractAdmin), c.CancelTermination)
}

func (c *contractController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateContractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.ActorName(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create contract", res))
}

func (c *contractController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateContractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = uint(id)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), serverutils.ActorName(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update contract", res))
}

func (c *contractController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.Show(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show contract", res))
}

func (c *contractController) ShowByContractID(ctx *fiber.Ctx) error {
	res, err := c.service.ShowByContractID(ctx.Context(), ctx.Params("contract_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show contract", res))
}

func (c *contractController) List(ctx *fiber.Ctx) error {
	var req dto.ContractFilterRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list contracts", res))
}

func (c *contractController) SweepExpired(ctx *fiber.Ctx) error {
	res, err := c.service.SweepExpired(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run expiry sweep", res))
}

func (c *contractController) Extend(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.ExtendContractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = uint(id)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Extend(ctx.Context(), serverutils.ActorName(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success extend contract", res))
}

func (c *contractController) SavePendingTermination(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.SavePendingTerminationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = uint(id)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SavePendingTermination(ctx.Context(), serverutils.ActorName(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save pending termination", res))
}

func (c *contractController) Terminate(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.TerminateContractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = uint(id)

	res, err := c.service.Terminate(ctx.Context(), serverutils.ActorName(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success terminate contract", res))
}

func (c *contractController) CancelTermination(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.CancelTermination(ctx.Context(), serverutils.ActorName(ctx), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cancel termination", res))
}
