package handler

import (
	"strings"

	"arova-be/internal/catalog"
	"arova-be/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type heroView struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type categoryView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Link  string `json:"link"`
	Count int    `json:"count"`
}

type homeResponse struct {
	Success    bool           `json:"success"`
	Hero       heroView       `json:"hero"`
	Offers     []string       `json:"offers"`
	Categories []categoryView `json:"categories"`
	Badges     Badges         `json:"badges"`
}

// Home renders the landing view: hero copy, the offer marquee, and the
// category grid.
func (h *Handler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.catalogSvc.Categories(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Something went wrong.",
		})
	}

	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, categoryView{
			Key:   cat.Key,
			Label: titleCase(cat.Key) + "'s Collection",
			Link:  "/shop?category=" + cat.Key,
			Count: cat.Count,
		})
	}

	return c.JSON(homeResponse{
		Success: true,
		Hero: heroView{
			Title:    "Arova",
			Subtitle: "Fragrance oils, worn close to the skin.",
		},
		Offers: []string{
			"Free shipping on every order",
			"New: the unisex collection",
			"Oils bottled in small batches",
		},
		Categories: views,
		Badges:     h.badges(ctx),
	})
}

type collectionResponse struct {
	Success  bool              `json:"success"`
	Title    string            `json:"title"`
	Vibes    []string          `json:"vibes"`
	Products []catalog.Product `json:"products"`
	Badges   Badges            `json:"badges"`
}

// Collection renders the full catalog with its vibe vocabulary.
func (h *Handler) Collection(c *fiber.Ctx) error {
	ctx := c.UserContext()

	products, err := h.catalogSvc.ListProducts(ctx, nil)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load catalog", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Something went wrong.",
		})
	}

	seen := make(map[string]bool)
	vibes := make([]string, 0)
	for _, p := range products {
		for _, v := range p.Vibe {
			if !seen[v] {
				seen[v] = true
				vibes = append(vibes, v)
			}
		}
	}

	return c.JSON(collectionResponse{
		Success:  true,
		Title:    "The Collection",
		Vibes:    vibes,
		Products: products,
		Badges:   h.badges(ctx),
	})
}

type benefitView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type benefitsResponse struct {
	Success  bool          `json:"success"`
	Title    string        `json:"title"`
	Benefits []benefitView `json:"benefits"`
	Badges   Badges        `json:"badges"`
}

// Benefits renders the static benefits page.
func (h *Handler) Benefits(c *fiber.Ctx) error {
	ctx := c.UserContext()

	return c.JSON(benefitsResponse{
		Success: true,
		Title:   "Why Fragrance Oils",
		Benefits: []benefitView{
			{Title: "Longer wear", Description: "Oil-based scents bind to the skin and last through the day without reapplying."},
			{Title: "No alcohol", Description: "Gentle on sensitive skin, with no sharp alcohol opening."},
			{Title: "Travel friendly", Description: "Compact roll-on bottles that pass any airport liquid rule."},
			{Title: "Closer projection", Description: "A scent bubble for you and the people near you, not the whole room."},
		},
		Badges: h.badges(ctx),
	})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
