package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerScrapingRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("GET /v1/admin/scraping/sports", RequireAdminToken(adminToken, http.HandlerFunc(handler.ListScrapeSports)))
	mux.Handle("GET /v1/admin/scraping/config", RequireAdminToken(adminToken, http.HandlerFunc(handler.GetPreviousRunConfig)))
	mux.Handle("POST /v1/admin/scraping/runs", RequireAdminToken(adminToken, http.HandlerFunc(handler.SubmitRunConfig)))
	mux.Handle("GET /v1/admin/scraping/status", RequireAdminToken(adminToken, http.HandlerFunc(handler.GetRunStatus)))
	mux.Handle("GET /v1/admin/scraping/matches", RequireAdminToken(adminToken, http.HandlerFunc(handler.GetStagedMatches)))
	// Status and staged matches in one round trip for the review screen.
	mux.Handle("POST /v1/admin/scraping/pool", RequireAdminToken(adminToken, http.HandlerFunc(handler.GetScrapePool)))
	mux.Handle("POST /v1/admin/scraping/accept", RequireAdminToken(adminToken, http.HandlerFunc(handler.AcceptMatches)))
}

func registerScheduleRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("GET /v1/admin/schedule", RequireAdminToken(adminToken, http.HandlerFunc(handler.ListSchedule)))
	mux.Handle("POST /v1/admin/schedule/matches", RequireAdminToken(adminToken, http.HandlerFunc(handler.AddManualMatch)))
	mux.Handle("DELETE /v1/admin/schedule/matches/{matchID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("POST /v1/admin/schedule/matches/delete", RequireAdminToken(adminToken, http.HandlerFunc(handler.DeleteMatches)))
}
