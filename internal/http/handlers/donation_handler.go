package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bloodlink/internal/domain"
	applog "bloodlink/internal/log"
	"bloodlink/internal/services"
	"bloodlink/internal/validate"
)

// DonationReader is the query side of the donation repo.
type DonationReader interface {
	ByID(ctx context.Context, id primitive.ObjectID) (*domain.DonationRequest, error)
	ByRequester(ctx context.Context, email string) ([]domain.DonationRequest, error)
	Recent(ctx context.Context, email string) ([]domain.DonationRequest, error)
	All(ctx context.Context) ([]domain.DonationRequest, error)
	Pending(ctx context.Context) ([]domain.DonationRequest, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status, donorName, donorEmail string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type DonationHandler struct {
	Save *services.DonationService
	Repo DonationReader
}

// Upsert saves a donation request: `?id=` targets an existing record,
// otherwise a new one is inserted.
// PUT /donationReq
func (h *DonationHandler) Upsert(c *fiber.Ctx) error {
	var req domain.DonationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if _, ok := validate.Email(req.RequesterEmail); !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid requester email")
	}
	if _, ok := validate.BloodGroup(req.BloodGroup); !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid blood group")
	}

	id, err := h.Save.Save(c.UserContext(), c.Query("id"), &req)
	if err != nil {
		if errors.Is(err, primitive.ErrInvalidHex) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid id")
		}
		return err
	}
	applog.Audit(c, "donation.save", map[string]any{"request_id": id.Hex()})
	return c.JSON(fiber.Map{"success": true, "id": id.Hex()})
}

// GET /donationReq/:email
func (h *DonationHandler) ByRequester(c *fiber.Ctx) error {
	reqs, err := h.Repo.ByRequester(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(emptyIfNil(reqs))
}

// GET /recent/:email
func (h *DonationHandler) Recent(c *fiber.Ctx) error {
	reqs, err := h.Repo.Recent(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(emptyIfNil(reqs))
}

// GET /allRequest
func (h *DonationHandler) All(c *fiber.Ctx) error {
	reqs, err := h.Repo.All(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(emptyIfNil(reqs))
}

// GET /pendingReq
func (h *DonationHandler) Pending(c *fiber.Ctx) error {
	reqs, err := h.Repo.Pending(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(emptyIfNil(reqs))
}

// GET /aDonationReq/:id
func (h *DonationHandler) One(c *fiber.Ctx) error {
	id, ok := validate.ObjectID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	req, err := h.Repo.ByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(nil)
		}
		return err
	}
	return c.JSON(req)
}

// SetStatus moves a request through its lifecycle; donor identity rides along
// when a donor takes it.
// PATCH /donationReq/:id
func (h *DonationHandler) SetStatus(c *fiber.Ctx) error {
	id, ok := validate.ObjectID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var body struct {
		Status     string `json:"status"`
		DonorName  string `json:"donorName"`
		DonorEmail string `json:"donorEmail"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	switch body.Status {
	case domain.StatusPending, domain.StatusInProgress, domain.StatusDone, domain.StatusCanceled:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}
	if err := h.Repo.SetStatus(c.UserContext(), id, body.Status, body.DonorName, body.DonorEmail); err != nil {
		return err
	}
	applog.Audit(c, "donation.status", map[string]any{"request_id": id.Hex(), "status": body.Status})
	return c.JSON(fiber.Map{"success": true})
}

// DELETE /donationReq/:id
func (h *DonationHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ObjectID(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return err
	}
	applog.Audit(c, "donation.delete", map[string]any{"request_id": id.Hex()})
	return c.JSON(fiber.Map{"success": true})
}

func emptyIfNil(reqs []domain.DonationRequest) []domain.DonationRequest {
	if reqs == nil {
		return []domain.DonationRequest{}
	}
	return reqs
}
