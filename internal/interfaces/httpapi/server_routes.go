package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/users", handler.ListUsers)
	mux.HandleFunc("GET /v1/assignments", handler.ListAssignments)
}

func registerWebhookRoutes(mux *http.ServeMux, handler *Handler, webhookToken string) {
	// The upstream scheduler only knows how to GET, so both verbs trigger
	// the same allocation cycle.
	mux.Handle("POST /webhook", RequireWebhookToken(webhookToken, http.HandlerFunc(handler.RunAllocationCycle)))
	mux.Handle("GET /webhook", RequireWebhookToken(webhookToken, http.HandlerFunc(handler.RunAllocationCycle)))
}
