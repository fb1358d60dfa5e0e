package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloodlink/internal/domain"
	applog "bloodlink/internal/log"
	"bloodlink/internal/validate"
)

type BlogStore interface {
	Insert(ctx context.Context, b *domain.Blog) (primitive.ObjectID, error)
	List(ctx context.Context, status string) ([]domain.Blog, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type BlogHandler struct {
	Blogs BlogStore
}

// GET /blogs?status=draft|published
func (h *BlogHandler) List(c *fiber.Ctx) error {
	status, _ := validate.StatusFilter(c.Query("status"))
	blogs, err := h.Blogs.List(c.UserContext(), status)
	if err != nil {
		return err
	}
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	return c.JSON(blogs)
}

// Create stores a new blog as a draft; publishing is a separate toggle.
// POST /blogs
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var b domain.Blog
	if err := c.BodyParser(&b); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if b.Title == "" || b.Content == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title and content required")
	}
	b.Status = domain.BlogDraft
	b.CreatedAt = time.Now().UTC()

	id, err := h.Blogs.Insert(c.UserContext(), &b)
	if err != nil {
		return err
	}
	applog.Audit(c, "blog.create", map[string]any{"blog_id": id.Hex()})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id.Hex()})
}

// SetStatus flips a blog between draft and published.
// PATCH /blogs/:id
func (h *BlogHandler) SetStatus(c *fiber.Ctx) error {
	id, ok := validate.ObjectID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Status != domain.BlogDraft && body.Status != domain.BlogPublished {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}
	if err := h.Blogs.SetStatus(c.UserContext(), id, body.Status); err != nil {
		return err
	}
	applog.Audit(c, "blog.status", map[string]any{"blog_id": id.Hex(), "status": body.Status})
	return c.JSON(fiber.Map{"success": true})
}

// DELETE /blogs/:id
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ObjectID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.Blogs.Delete(c.UserContext(), id); err != nil {
		return err
	}
	applog.Audit(c, "blog.delete", map[string]any{"blog_id": id.Hex()})
	return c.JSON(fiber.Map{"success": true})
}
