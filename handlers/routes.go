package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mobilemall/api-gateway/middleware"
)

// RegisterRoutes mounts the public content API, the auth endpoints and
// the token-gated admin API on app.
func RegisterRoutes(app *fiber.App, h *ApplicationHandler) {
	app.Get("/health", h.Health)

	apiV1 := app.Group("/api/v1")
	apiV1.Get("/home", h.GetHome)
	apiV1.Get("/site-settings", h.GetSiteSettings)
	apiV1.Get("/footer", h.GetFooter)
	apiV1.Get("/menu", h.GetMenu)
	apiV1.Get("/banners", h.GetBanners)
	apiV1.Get("/event-banners", h.GetEventBanners)
	apiV1.Get("/service-cards", h.GetServiceCards)
	apiV1.Get("/pricing-plans", h.GetPricingPlans)
	apiV1.Get("/reviews", h.GetReviews)
	apiV1.Get("/boards/:slug", h.GetBoard)
	apiV1.Get("/boards/:slug/posts", h.GetBoardPosts)

	apiV1.Post("/auth/login", h.Login)
	apiV1.Post("/auth/logout", h.Logout)

	admin := apiV1.Group("/admin", middleware.AdminRequired(h.Config.JWTSecret))
	admin.Get("/dashboard", h.GetDashboard)

	admin.Put("/site-settings", h.UpsertSiteSettings)
	admin.Put("/footer", h.UpsertFooter)

	admin.Get("/banners", h.AdminListBanners)
	admin.Post("/banners", h.CreateBanner)
	admin.Patch("/banners/:id", h.UpdateBanner)
	admin.Delete("/banners/:id", h.DeleteBanner)

	admin.Get("/menu-items", h.AdminListMenuItems)
	admin.Post("/menu-items", h.CreateMenuItem)
	admin.Patch("/menu-items/:id", h.UpdateMenuItem)
	admin.Delete("/menu-items/:id", h.DeleteMenuItem)

	admin.Get("/service-cards", h.AdminListServiceCards)
	admin.Post("/service-cards", h.CreateServiceCard)
	admin.Patch("/service-cards/:id", h.UpdateServiceCard)
	admin.Delete("/service-cards/:id", h.DeleteServiceCard)

	admin.Get("/pricing-plans", h.AdminListPricingPlans)
	admin.Post("/pricing-plans", h.CreatePricingPlan)
	admin.Patch("/pricing-plans/:id", h.UpdatePricingPlan)
	admin.Delete("/pricing-plans/:id", h.DeletePricingPlan)

	admin.Get("/reviews", h.AdminListReviews)
	admin.Post("/reviews", h.CreateReview)
	admin.Patch("/reviews/:id", h.UpdateReview)
	admin.Delete("/reviews/:id", h.DeleteReview)

	admin.Get("/event-banners", h.AdminListEventBanners)
	admin.Post("/event-banners", h.CreateEventBanner)
	admin.Patch("/event-banners/:id", h.UpdateEventBanner)
	admin.Delete("/event-banners/:id", h.DeleteEventBanner)

	admin.Get("/boards/:slug/posts", h.AdminListBoardPosts)
	admin.Post("/boards/:slug/posts", h.CreateBoardPost)
	admin.Patch("/boards/:slug/posts/:id", h.UpdateBoardPost)
	admin.Delete("/boards/:slug/posts/:id", h.DeleteBoardPost)

	admin.Post("/uploads", h.UploadImage)
	admin.Post("/uploads/url", h.RegisterImageURL)
}
