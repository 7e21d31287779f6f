package controller

import (
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILabelController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type labelController struct {
	labelService service.ILabelService
}

func NewLabelController(labelService service.ILabelService) ILabelController {
	return &labelController{
		labelService: labelService,
	}
}

func (c *labelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/labels")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *labelController) List(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	res, err := c.labelService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Successfully fetched labels.", res))
}

func (c *labelController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.CreateLabelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.labelService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Label created successfully.", res))
}

func (c *labelController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	id, err := labelIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateLabelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.labelService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Label updated successfully.", res))
}

func (c *labelController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	id, err := labelIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.labelService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Label deleted successfully.", nil))
}

func labelIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, serverutils.NewValidationError("Invalid label ID", nil)
	}
	return uint(id), nil
}
