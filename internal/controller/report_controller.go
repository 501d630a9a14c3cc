package controller

import (
	"fmt"
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/pkg/serverutils"
	"contractdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	ContractRegister(ctx *fiber.Ctx) error
	MonetaryValue(ctx *fiber.Ctx) error
	MOA(ctx *fiber.Ctx) error
	DueDiligence(ctx *fiber.Ctx) error
}

type reportController struct {
	service service.IReportService
}

func NewReportController(service service.IReportService) IReportController {
	return &reportController{service: service}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/report/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRole(constant.RoleContractAdmin))
	h.Get("/contract-register", c.ContractRegister)
	h.Get("/monetary-value", c.MonetaryValue)
	h.Get("/moa", c.MOA)
	h.Get("/due-diligence", c.DueDiligence)
}

func (c *reportController) ContractRegister(ctx *fiber.Ctx) error {
	buf, err := c.service.ContractRegister(ctx.Context())
	if err != nil {
		return err
	}

	return sendWorkbook(ctx, "contract_register", buf.Bytes())
}

func (c *reportController) MonetaryValue(ctx *fiber.Ctx) error {
	buf, err := c.service.MonetaryValueReport(ctx.Context())
	if err != nil {
		return err
	}

	return sendWorkbook(ctx, "monetary_value_report", buf.Bytes())
}

func (c *reportController) MOA(ctx *fiber.Ctx) error {
	buf, err := c.service.MOAReport(ctx.Context())
	if err != nil {
		return err
	}

	return sendWorkbook(ctx, "moa_contracts_report", buf.Bytes())
}

func (c *reportController) DueDiligence(ctx *fiber.Ctx) error {
	buf, err := c.service.DueDiligenceReport(ctx.Context())
	if err != nil {
		return err
	}

	return sendWorkbook(ctx, "due_diligence_report", buf.Bytes())
}

func sendWorkbook(ctx *fiber.Ctx, name string, data []byte) error {
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102"))
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Send(data)
}
