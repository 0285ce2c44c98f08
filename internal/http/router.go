package http

import (
	nethttp "net/http"

	"scout-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/search_player", handler.SearchPlayer)
	mux.HandleFunc("/api/filter_players", handler.FilterPlayers)
	mux.HandleFunc("/api/submit_demo", handler.SubmitDemo)
	return mux
}
