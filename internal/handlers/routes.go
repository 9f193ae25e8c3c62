// internal/handlers/routes.go
package handlers

import (
	"net/http"
)

// APIPrefix is the versioned root of every JSON endpoint.
const APIPrefix = "/api/v1"

// Handlers groups the HTTP handlers served by the API. A nil Health skips
// the health endpoints.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Property   *PropertyHandler
	Engagement *EngagementHandler
	Seller     *SellerHandler
	Dashboard  *DashboardHandler
	Export     *ExportHandler
	Import     *ImportHandler
}

// RegisterRoutes wires every endpoint onto mux. requireAuth wraps the
// routes that need a signed-in user.
func RegisterRoutes(mux *http.ServeMux, h Handlers, requireAuth func(http.Handler) http.Handler) {
	apiV1 := APIPrefix
	protected := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(fn)
	}

	if h.Health != nil {
		mux.HandleFunc("GET /health", h.Health.Health)
		mux.HandleFunc("GET /ready", h.Health.Readiness)
		mux.HandleFunc("GET /live", h.Health.Liveness)
		mux.HandleFunc("GET "+apiV1+"/health", h.Health.Health)
	}

	// Accounts
	mux.HandleFunc("POST "+apiV1+"/auth/register", h.Auth.Register)
	mux.HandleFunc("POST "+apiV1+"/auth/login", h.Auth.Login)
	mux.Handle("POST "+apiV1+"/auth/logout", protected(h.Auth.Logout))
	mux.Handle("GET "+apiV1+"/auth/me", protected(h.Auth.Me))

	// Public catalog
	mux.HandleFunc("GET "+apiV1+"/properties", h.Property.Browse)
	mux.HandleFunc("GET "+apiV1+"/properties/featured", h.Property.Featured)
	mux.HandleFunc("GET "+apiV1+"/properties/{id}", h.Property.Get)
	mux.HandleFunc("POST "+apiV1+"/properties/{id}/view", h.Property.View)
	mux.HandleFunc("GET "+apiV1+"/emi", h.Property.EMI)

	// Buyer engagement
	mux.Handle("POST "+apiV1+"/properties/{id}/interest", protected(h.Engagement.ExpressInterest))
	mux.Handle("POST "+apiV1+"/properties/{id}/schedule-visit", protected(h.Engagement.ScheduleVisit))
	mux.Handle("GET "+apiV1+"/user/visits", protected(h.Engagement.UserVisits))

	mux.Handle("GET "+apiV1+"/likes/properties", protected(h.Engagement.Liked))
	mux.Handle("POST "+apiV1+"/likes/properties", protected(h.Engagement.LikeFromBody))
	mux.Handle("POST "+apiV1+"/likes/properties/{id}", protected(h.Engagement.Like))
	mux.Handle("DELETE "+apiV1+"/likes/properties/{id}", protected(h.Engagement.Unlike))
	mux.Handle("GET "+apiV1+"/likes/check", protected(h.Engagement.LikedIDs))

	// Seller listings. The literal export/import paths take precedence over
	// the {id} wildcard.
	mux.Handle("GET "+apiV1+"/seller/properties", protected(h.Seller.ListProperties))
	mux.Handle("POST "+apiV1+"/seller/properties", protected(h.Seller.CreateProperty))
	mux.Handle("GET "+apiV1+"/seller/properties/export", protected(h.Export.ExportExcel))
	mux.Handle("GET "+apiV1+"/seller/properties/import/template", protected(h.Export.Template))
	mux.Handle("POST "+apiV1+"/seller/properties/import", protected(h.Import.ImportExcel))
	mux.Handle("PUT "+apiV1+"/seller/properties/{id}", protected(h.Seller.UpdateProperty))
	mux.Handle("DELETE "+apiV1+"/seller/properties/{id}", protected(h.Seller.DeleteProperty))
	mux.Handle("POST "+apiV1+"/seller/properties/{id}/images", protected(h.Seller.UploadImage))
	mux.Handle("POST "+apiV1+"/seller/properties/{id}/brochure", protected(h.Seller.UploadBrochure))

	// Seller inbox and dashboard
	mux.Handle("GET "+apiV1+"/seller/interests", protected(h.Seller.Interests))
	mux.Handle("PUT "+apiV1+"/seller/interests/{id}", protected(h.Seller.UpdateInterest))
	mux.Handle("GET "+apiV1+"/seller/visits", protected(h.Seller.Visits))
	mux.Handle("PUT "+apiV1+"/seller/visits/{id}", protected(h.Seller.UpdateVisit))
	mux.Handle("GET "+apiV1+"/seller/dashboard", protected(h.Dashboard.GetDashboard))
	mux.Handle("GET "+apiV1+"/seller/activity", protected(h.Dashboard.GetActivity))
}
