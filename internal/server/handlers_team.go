package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// teamRequest is the body of POST /api/team. A save replaces both lists
// wholesale; there are no merge semantics.
type teamRequest struct {
	BannedWords     []string `json:"bannedWords"`
	RequiredPhrases []string `json:"requiredPhrases"`
}

// handleGetTeam returns the team rules, creating an empty default
// record on first read.
func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	rules, err := s.store.GetTeamRules(r.Context())
	if err != nil {
		log.Printf("Error fetching team rules: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch team settings")
		return
	}

	s.jsonResponse(w, http.StatusOK, rules)
}

// handleSaveTeam replaces the team's banned words and required phrases.
func (s *Server) handleSaveTeam(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rules, err := s.store.SaveTeamRules(r.Context(), req.BannedWords, req.RequiredPhrases)
	if err != nil {
		log.Printf("Error saving team rules: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save team settings")
		return
	}

	s.jsonResponse(w, http.StatusOK, rules)
}
