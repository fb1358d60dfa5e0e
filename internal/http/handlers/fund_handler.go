package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bloodlink/internal/domain"
	applog "bloodlink/internal/log"
	"bloodlink/internal/services"
	"bloodlink/internal/validate"
)

type FundStore interface {
	Insert(ctx context.Context, f *domain.Fund) error
	ByEmail(ctx context.Context, email string) ([]domain.Fund, error)
	All(ctx context.Context) ([]domain.Fund, error)
}

type FundHandler struct {
	Funds    FundStore
	Payments services.PaymentIntenter
}

// Create records a completed fund. Transaction references missing from the
// body get a server-generated one.
// POST /funding
func (h *FundHandler) Create(c *fiber.Ctx) error {
	var f domain.Fund
	if err := c.BodyParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	email, ok := validate.Email(f.Email)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email")
	}
	f.Email = email
	if f.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be positive")
	}
	if f.TransactionID == "" {
		f.TransactionID = uuid.NewString()
	}
	f.Date = time.Now().UTC()

	if err := h.Funds.Insert(c.UserContext(), &f); err != nil {
		return err
	}
	applog.Audit(c, "fund.create", map[string]any{"email": f.Email, "amount": f.Amount})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "transactionId": f.TransactionID})
}

// GET /funding/:email
func (h *FundHandler) ByEmail(c *fiber.Ctx) error {
	funds, err := h.Funds.ByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	if funds == nil {
		funds = []domain.Fund{}
	}
	return c.JSON(funds)
}

// GET /funding
func (h *FundHandler) All(c *fiber.Ctx) error {
	funds, err := h.Funds.All(c.UserContext())
	if err != nil {
		return err
	}
	if funds == nil {
		funds = []domain.Fund{}
	}
	return c.JSON(funds)
}

// CreateIntent delegates to the payment processor and hands the client secret
// back to the frontend.
// POST /create-payment-intent
func (h *FundHandler) CreateIntent(c *fiber.Ctx) error {
	var body struct {
		Amount   int64  `json:"amount"` // cents
		Currency string `json:"currency"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be positive")
	}
	if body.Currency == "" {
		body.Currency = "usd"
	}

	secret, err := h.Payments.CreateIntent(c.UserContext(), body.Amount, body.Currency)
	if err != nil {
		applog.Error(c, "payment.intent.fail", err, map[string]any{"amount": body.Amount})
		return fiber.NewError(fiber.StatusBadGateway, "payment processor unavailable")
	}
	applog.Audit(c, "payment.intent", map[string]any{"amount": body.Amount})
	return c.JSON(fiber.Map{"clientSecret": secret})
}
