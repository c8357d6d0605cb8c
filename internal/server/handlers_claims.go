package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/claims"
)

func (s *Server) handleFileClaim(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone,omitempty"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact := claims.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}

	err := s.engine.FileClaim(r.Context(), mux.Vars(r)["id"], callerID(r), contact)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	// No token values in the response: they travel via the owner email.
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Claim filed. The reporter has been notified and will accept or reject your claim.",
	})
}

func (s *Server) handleAcceptClaim(w http.ResponseWriter, r *http.Request) {
	s.resolveClaim(w, r, claims.Accept, "Claim accepted. The claimant has been sent your contact details.")
}

func (s *Server) handleRejectClaim(w http.ResponseWriter, r *http.Request) {
	s.resolveClaim(w, r, claims.Reject, "Claim rejected. The item is available again.")
}

func (s *Server) resolveClaim(w http.ResponseWriter, r *http.Request, decision claims.Decision, message string) {
	if err := s.engine.ResolveClaim(r.Context(), mux.Vars(r)["token"], decision); err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}
