package controller

import (
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/pkg/serverutils"
	"contractdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	UploadContract(ctx *fiber.Ctx) error
	ListContract(ctx *fiber.Ctx) error
	DownloadContract(ctx *fiber.Ctx) error
	DeleteContract(ctx *fiber.Ctx) error
	UploadTermination(ctx *fiber.Ctx) error
	CloneTermination(ctx *fiber.Ctx) error
	ListTermination(ctx *fiber.Ctx) error
	UpdateTermination(ctx *fiber.Ctx) error
	DownloadTermination(ctx *fiber.Ctx) error
	DeleteTermination(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/contract/:id", c.UploadContract)
	h.Get("/contract/:id", c.ListContract)
	h.Get(":id/download", c.DownloadContract)
	h.Delete(":id", c.DeleteContract)

	t := h.Group("/termination")
	t.Post("/contract/:id", c.UploadTermination)
	t.Post("/contract/:id/clone", c.CloneTermination)
	t.Get("/contract/:id", c.ListTermination)
	t.Patch(":id", serverutils.RequireRole(constant.RoleContractAdmin), c.UpdateTermination)
	t.Get(":id/download", c.DownloadTermination)
	t.Delete(":id", c.DeleteTermination)
}

// parseUploadForm pulls the metadata fields out of a multipart upload.
func parseUploadForm(ctx *fiber.Ctx, contractId uint) (*dto.UploadDocumentRequest, error) {
	dateStr := ctx.FormValue("document_date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "document_date must be formatted as YYYY-MM-DD")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	return &dto.UploadDocumentRequest{
		ContractId:   contractId,
		DocumentName: ctx.FormValue("document_name"),
		DocumentDate: date,
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
	}, nil
}

func (c *documentController) UploadContract(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	req, err := parseUploadForm(ctx, uint(id))
	if err != nil {
		return err
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.ErrBadRequest
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := c.service.UploadContractDocument(ctx.Context(), req, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload contract document", res))
}

func (c *documentController) ListContract(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.ListContractDocuments(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list contract documents", res))
}

func (c *documentController) DownloadContract(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.DownloadContractDocument(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	return ctx.Download(res.FilePath, res.FileName)
}

func (c *documentController) DeleteContract(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.service.DeleteContractDocument(ctx.Context(), uint(id)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete contract document", nil))
}

func (c *documentController) UploadTermination(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	req, err := parseUploadForm(ctx, uint(id))
	if err != nil {
		return err
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.ErrBadRequest
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := c.service.UploadTerminationDocument(ctx.Context(), req, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload termination document", res))
}

func (c *documentController) CloneTermination(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.CloneDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ContractId = uint(id)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CloneToTerminationDocument(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clone document", res))
}

func (c *documentController) ListTermination(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.ListTerminationDocuments(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list termination documents", res))
}

func (c *documentController) UpdateTermination(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateTerminationDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = uint(id)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateTerminationDocument(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update termination document", res))
}

func (c *documentController) DownloadTermination(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.service.DownloadTerminationDocument(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	return ctx.Download(res.FilePath, res.FileName)
}

func (c *documentController) DeleteTermination(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.service.DeleteTerminationDocument(ctx.Context(), uint(id)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete termination document", nil))
}
