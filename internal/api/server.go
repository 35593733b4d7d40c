package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ClickHouse/clickhouse-go/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/database"
)

// Server exposes stored wallet scores over HTTP.
type Server struct {
	Conn clickhouse.Conn
}

// NewServer initializes a new API server instance.
func NewServer(conn clickhouse.Conn) *Server {
	return &Server{
		Conn: conn,
	}
}

// ScoresHandler handles the /scores endpoint. It serves the most recent
// scoring run as JSON, with optional min and limit query parameters.
func (s *Server) ScoresHandler(w http.ResponseWriter, r *http.Request) {
	minScore := 0
	if v := r.URL.Query().Get("min"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid 'min' query parameter", http.StatusBadRequest)
			return
		}
		minScore = parsed
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid 'limit' query parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	rows, err := database.FetchTopScores(r.Context(), s.Conn, minScore, limit)
	if err != nil {
		log.Errorf("fetching scores: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		log.Errorf("encoding scores response: %v", err)
	}
}

// StartServer starts the API server on the given address and blocks.
func StartServer(addr string, server *Server) error {
	http.HandleFunc("/scores", server.ScoresHandler)

	log.Infof("serving wallet scores on %s", addr)
	return http.ListenAndServe(addr, nil)
}
