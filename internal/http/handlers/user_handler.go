package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bloodlink/internal/domain"
	applog "bloodlink/internal/log"
	"bloodlink/internal/validate"
)

// UserStore is the slice of the user repo the handler needs.
type UserStore interface {
	Exists(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, u *domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, status *bool) ([]domain.User, error)
	UpdateProfile(ctx context.Context, email string, fields bson.M) error
	SetRole(ctx context.Context, email, role string) error
	ToggleStatus(ctx context.Context, email string) (bool, error)
}

type UserHandler struct {
	Users UserStore
}

// Create registers a user once per email. A duplicate email is answered with
// an explicit 409 instead of the silent no-op the old backend had.
// POST /user
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var u domain.User
	if err := c.BodyParser(&u); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	email, ok := validate.Email(u.Email)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email")
	}
	u.Email = email

	exists, err := h.Users.Exists(c.UserContext(), u.Email)
	if err != nil {
		return err
	}
	if exists {
		applog.Info(c, "user.create.duplicate", map[string]any{"email": u.Email})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "user already exists"})
	}

	if u.Role == "" {
		u.Role = domain.RoleDonor
	}
	u.Status = true
	u.CreatedAt = time.Now().UTC()
	if err := h.Users.Insert(c.UserContext(), &u); err != nil {
		return err
	}
	applog.Audit(c, "user.create", map[string]any{"email": u.Email})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// Get returns one user, or null when the email is unknown.
// GET /user/:email
func (h *UserHandler) Get(c *fiber.Ctx) error {
	u, err := h.Users.ByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(nil)
		}
		return err
	}
	return c.JSON(u)
}

// Update applies a role overwrite, a status toggle or a profile patch,
// whichever the body asks for.
// PUT /user/:email
func (h *UserHandler) Update(c *fiber.Ctx) error {
	email := c.Params("email")
	var body struct {
		Role         string `json:"role"`
		ToggleStatus bool   `json:"toggleStatus"`
		Name         string `json:"name"`
		Avatar       string `json:"avatar"`
		BloodGroup   string `json:"bloodGroup"`
		District     string `json:"district"`
		Upazila      string `json:"upazila"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	switch {
	case body.Role != "":
		if err := h.Users.SetRole(c.UserContext(), email, body.Role); err != nil {
			return err
		}
		applog.Audit(c, "user.role.set", map[string]any{"target": email, "role": body.Role})
	case body.ToggleStatus:
		// Read-then-write: two concurrent toggles race, last write wins.
		next, err := h.Users.ToggleStatus(c.UserContext(), email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return fiber.NewError(fiber.StatusNotFound, "user not found")
			}
			return err
		}
		applog.Audit(c, "user.status.toggle", map[string]any{"target": email, "status": next})
	default:
		fields := bson.M{}
		if body.Name != "" {
			fields["name"] = body.Name
		}
		if body.Avatar != "" {
			fields["avatar"] = body.Avatar
		}
		if bg, ok := validate.BloodGroup(body.BloodGroup); ok {
			fields["bloodGroup"] = bg
		}
		if body.District != "" {
			fields["district"] = body.District
		}
		if body.Upazila != "" {
			fields["upazila"] = body.Upazila
		}
		if len(fields) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
		}
		if err := h.Users.UpdateProfile(c.UserContext(), email, fields); err != nil {
			return err
		}
		applog.Audit(c, "user.profile.update", map[string]any{"target": email})
	}
	return c.JSON(fiber.Map{"success": true})
}

// List returns all users, optionally filtered by active/blocked status.
// GET /users?status=active|blocked
func (h *UserHandler) List(c *fiber.Ctx) error {
	var status *bool
	if raw, ok := validate.StatusFilter(c.Query("status")); ok {
		active := raw == "active"
		status = &active
	}
	users, err := h.Users.List(c.UserContext(), status)
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(users)
}
