package controller

import (
	"notekeeper-be/internal/dto"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Archived(ctx *fiber.Ctx) error
	Trashed(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ToggleArchive(ctx *fiber.Ctx) error
	ToggleTrash(ctx *fiber.Ctx) error
	AddCollaborators(ctx *fiber.Ctx) error
	RemoveCollaborators(ctx *fiber.Ctx) error
	AddLabels(ctx *fiber.Ctx) error
	RemoveLabels(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/archived", c.Archived)
	h.Get("/trashed", c.Trashed)
	h.Post("/add-collaborator", c.AddCollaborators)
	h.Post("/remove-collaborator", c.RemoveCollaborators)
	h.Post("/add-labels", c.AddLabels)
	h.Post("/remove-labels", c.RemoveLabels)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Patch("/:id/toggle-archive", c.ToggleArchive)
	h.Patch("/:id/toggle-trash", c.ToggleTrash)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	res, err := c.noteService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Successfully fetched notes for user.", res))
}

func (c *noteController) Archived(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	res, err := c.noteService.Archived(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Successfully fetched archived notes.", res))
}

func (c *noteController) Trashed(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	res, err := c.noteService.Trashed(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Successfully fetched trashed notes.", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Successfully fetched note.", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Successfully created note for user.", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Note updated successfully.", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *noteController) ToggleArchive(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.ToggleArchive(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Successfully toggled archive status.", res))
}

func (c *noteController) ToggleTrash(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.ToggleTrash(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Successfully toggled trash status.", res))
}

func (c *noteController) AddCollaborators(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.AddCollaboratorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.AddCollaborators(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Collaborators processed successfully", nil))
}

func (c *noteController) RemoveCollaborators(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.RemoveCollaboratorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.RemoveCollaborators(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Collaborators removed successfully", nil))
}

func (c *noteController) AddLabels(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.NoteLabelsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.AddLabels(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Labels added successfully", nil))
}

func (c *noteController) RemoveLabels(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.NoteLabelsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.RemoveLabels(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Labels removed successfully", nil))
}

func noteIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, serverutils.NewValidationError("Invalid note ID", nil)
	}
	return uint(id), nil
}
