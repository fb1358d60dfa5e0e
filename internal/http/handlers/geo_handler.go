package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/domain"
)

type GeoStore interface {
	Divisions(ctx context.Context) ([]domain.Division, error)
	DistrictsByDivision(ctx context.Context, divisionID string) ([]domain.District, error)
	UpazilasByDistrict(ctx context.Context, districtID string) ([]domain.Upazila, error)
}

type GeoHandler struct {
	Geo GeoStore
}

// GET /division
func (h *GeoHandler) Divisions(c *fiber.Ctx) error {
	out, err := h.Geo.Divisions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /district/:id
func (h *GeoHandler) Districts(c *fiber.Ctx) error {
	out, err := h.Geo.DistrictsByDivision(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /upazila/:id
func (h *GeoHandler) Upazilas(c *fiber.Ctx) error {
	out, err := h.Geo.UpazilasByDistrict(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
