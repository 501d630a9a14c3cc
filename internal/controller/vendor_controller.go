package controller

import (
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/pkg/serverutils"
	"contractdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVendorController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type vendorController struct {
	service service.IVendorService
}

func NewVendorController(service service.IVendorService) IVendorController {
	return &vendorController{service: service}
}

func (c *vendorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/vendor/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
}

func (c *vendorController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateVendorRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success create vendor", res))
}

func (c *vendorController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.Show(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show vendor", res))
}

func (c *vendorController) List(ctx *fiber.Ctx) error {
	activeOnly := ctx.QueryBool("active_only", false)

	res, err := c.service.List(ctx.Context(), activeOnly)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list vendors", res))
}
