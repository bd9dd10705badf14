package store

// Fixed table names, one per content kind. Board tables are dynamic and
// come from the board registry instead.
const (
	TableSiteSettings    = "site_settings"
	TableMenuItems       = "menu_items"
	TableBanners         = "banners"
	TableServiceCards    = "service_cards"
	TablePricingPlans    = "pricing_plans"
	TableCustomerReviews = "customer_reviews"
	TableEventBanners    = "event_banners"
	TableFooterSettings  = "footer_settings"
)

// ContentTables lists every fixed table, used by the dashboard counts.
var ContentTables = []string{
	TableSiteSettings,
	TableMenuItems,
	TableBanners,
	TableServiceCards,
	TablePricingPlans,
	TableCustomerReviews,
	TableEventBanners,
	TableFooterSettings,
}
