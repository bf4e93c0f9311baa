package handlers

import (
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tiered-support/support-desk/internal/domain"
	apperrors "github.com/tiered-support/support-desk/pkg/util"
)

const pageLayout = "layouts/main"

type feature struct {
	Title       string
	Description string
	Icon        string
}

type step struct {
	Title  string
	Detail string
}

var features = []feature{
	{
		Title:       "USDC Payments on Solana",
		Description: "Secure, verifiable payments powered by Coinbase X402 ensure every paid request is honored immediately.",
		Icon:        "💳",
	},
	{
		Title:       "Real Engineers, Real Time",
		Description: "Your ticket is routed directly to the right engineer queue based on tier, keeping wait times honest.",
		Icon:        "👩‍💻",
	},
	{
		Title:       "Transparent SLAs",
		Description: "See exactly how long each tier takes before you pay, with automated updates as your case progresses.",
		Icon:        "📈",
	},
}

// ticketView adapts a TierConfig for the ticket template. Theme carries the
// registry's trusted gradient CSS.
type ticketView struct {
	domain.TierConfig
	Theme template.CSS
}

// PagesHandler renders the marketing and ticket pages.
type PagesHandler struct {
	siteName string
}

// NewPagesHandler constructs handler.
func NewPagesHandler(siteName string) *PagesHandler {
	return &PagesHandler{siteName: siteName}
}

// Landing GET /.
func (h *PagesHandler) Landing(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":    h.siteName,
		"Features": features,
		"Tiers":    domain.Tiers(),
	}, pageLayout)
}

// TicketPage GET /tickets/:tier.
func (h *PagesHandler) TicketPage(c *fiber.Ctx) error {
	cfg, ok := domain.LookupTier(c.Params("tier"))
	if !ok {
		return h.NotFound(c)
	}

	return c.Render("ticket", fiber.Map{
		"Title":  cfg.Headline,
		"Tier":   ticketView{TierConfig: cfg, Theme: template.CSS(cfg.Gradient)},
		"Steps":  nextSteps(cfg),
		"Action": "/api/tickets",
	}, pageLayout)
}

// NotFound renders the 404 page for browsers and a JSON error for API paths.
func (h *PagesHandler) NotFound(c *fiber.Ctx) error {
	if isAPIPath(c.Path()) {
		return apperrors.NewNotFound("Not found.")
	}
	c.Status(fiber.StatusNotFound)
	return c.Render("not_found", fiber.Map{"Title": "Page not found"}, pageLayout)
}

func nextSteps(cfg domain.TierConfig) []step {
	payment := "Authorize the USDC payment. We verify it on-chain via X402 in seconds."
	if cfg.IsFree() {
		payment = "Standard tickets stay free—no payment required."
	}
	return []step{
		{Title: "Submit your ticket", Detail: "Give us context so the right engineer can take over immediately."},
		{Title: "Confirm payment (if required)", Detail: payment},
		{Title: "Receive updates", Detail: "Track progress by email. You’ll hear from us within the guaranteed window."},
	}
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
