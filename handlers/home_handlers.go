package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/models"
	"mobilemall/api-gateway/utils"
)

// Health godoc
// @Summary Health check
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *ApplicationHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Content API is healthy",
	})
}

// GetHome godoc
// @Summary Aggregate marketing page payload
// @Description Returns every public section in one response: settings, menu, hero banners, service cards, pricing, reviews, event banners and footer. Sections that fail to load come back empty rather than failing the whole page.
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /home [get]
func (h *ApplicationHandler) GetHome(c *fiber.Ctx) error {
	siteSettings := h.siteSettingsOrDefault()
	footer := h.footerOrDefault()

	menu, err := store.ListOrdered[models.MenuItem](h.Store, store.TableMenuItems, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching menu items for home")
		menu = models.DefaultMenuItems()
	}
	banners, err := store.ListOrdered[models.Banner](h.Store, store.TableBanners, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching banners for home")
		banners = []models.Banner{}
	}
	cards, err := store.ListOrdered[models.ServiceCard](h.Store, store.TableServiceCards, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching service cards for home")
		cards = []models.ServiceCard{}
	}
	plans, err := store.ListOrdered[models.PricingPlan](h.Store, store.TablePricingPlans, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching pricing plans for home")
		plans = []models.PricingPlan{}
	}
	reviews, err := store.ListOrdered[models.CustomerReview](h.Store, store.TableCustomerReviews, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching reviews for home")
		reviews = []models.CustomerReview{}
	}
	events, err := store.ListOrdered[models.EventBanner](h.Store, store.TableEventBanners, true)
	if err != nil {
		h.Logger.WithError(err).Error("Error fetching event banners for home")
		events = []models.EventBanner{}
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"site_settings": siteSettings,
		"menu":          menu,
		"hero": fiber.Map{
			"items":              banners,
			"rotate_interval_ms": heroRotateIntervalMS,
		},
		"service_cards": cards,
		"pricing_plans": plans,
		"reviews":       reviews,
		"events": fiber.Map{
			"items":              events,
			"rotate_interval_ms": eventRotateIntervalMS,
		},
		"footer": footer,
	})
}

func (h *ApplicationHandler) siteSettingsOrDefault() models.SiteSettings {
	settings, err := store.GetSingleton[models.SiteSettings](h.Store, store.TableSiteSettings)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.Logger.WithError(err).Error("Error fetching site settings")
		}
		return models.DefaultSiteSettings()
	}
	return *settings
}

func (h *ApplicationHandler) footerOrDefault() models.FooterSettings {
	settings, err := store.GetSingleton[models.FooterSettings](h.Store, store.TableFooterSettings)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.Logger.WithError(err).Error("Error fetching footer settings")
		}
		return models.DefaultFooterSettings()
	}
	return *settings
}
