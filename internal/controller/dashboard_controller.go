package controller

import (
	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/pkg/serverutils"
	"contractdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Manager(ctx *fiber.Ctx) error
	Admin(ctx *fiber.Ctx) error
	ContractSummary(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/manager", c.Manager)
	h.Get("/admin", serverutils.RequireRole(constant.RoleContractAdmin), c.Admin)
	h.Get("/contract/:id", c.ContractSummary)
}

func (c *dashboardController) Manager(ctx *fiber.Ctx) error {
	res, err := c.service.ManagerDashboard(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get manager dashboard", res))
}

func (c *dashboardController) Admin(ctx *fiber.Ctx) error {
	res, err := c.service.AdminDashboard(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get admin dashboard", res))
}

func (c *dashboardController) ContractSummary(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.ContractSummary(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get contract summary", res))
}
