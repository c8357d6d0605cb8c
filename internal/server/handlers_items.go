package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/storage"
)

const maxImageUploadBytes = 2 << 20

// itemRequest is the single well-typed DTO for item writes; the core never
// sees ambiguous request shapes.
type itemRequest struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date,omitempty"`
	Location    struct {
		Address string `json:"address"`
		City    string `json:"city"`
		State   string `json:"state"`
	} `json:"location"`
}

func (req itemRequest) toInput() (storage.ItemInput, error) {
	input := storage.ItemInput{
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Location.Address,
		City:        req.Location.City,
		State:       req.Location.State,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return input, err
		}
		input.EventDate = date.UTC()
	}
	return input, nil
}

type locationResponse struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
}

type claimResponse struct {
	FiledAt   time.Time `json:"filedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// itemResponse deliberately omits the claim tokens and the claimant
// contact snapshot: tokens travel only via the owner email.
type itemResponse struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"ownerId"`
	Kind        string           `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Date        time.Time        `json:"date"`
	Location    locationResponse `json:"location"`
	Images      []string         `json:"images"`
	Status      string           `json:"status"`
	Claim       *claimResponse   `json:"claim,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func toItemResponse(item *repository.Item) itemResponse {
	resp := itemResponse{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Kind:        item.Kind,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Date:        item.EventDate,
		Location: locationResponse{
			Address: item.Address,
			City:    item.City,
			State:   item.State,
		},
		Images:    item.Images,
		Status:    item.Status,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	if item.ClaimFiledAt != nil && item.ClaimExpiresAt != nil {
		resp.Claim = &claimResponse{
			FiledAt:   *item.ClaimFiledAt,
			ExpiresAt: *item.ClaimExpiresAt,
		}
	}
	return resp
}

func toItemResponses(items []*repository.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out
}

func (s *Server) handleReportItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	item, err := s.items.Report(r.Context(), callerID(r), input)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toItemResponse(item))
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.items.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toItemResponse(item))
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	item, err := s.items.Update(r.Context(), mux.Vars(r)["id"], callerID(r), input)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toItemResponse(item))
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.items.Delete(r.Context(), mux.Vars(r)["id"], callerID(r)); err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	filter := repository.ItemFilter{
		Kind:     r.URL.Query().Get("kind"),
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
	}

	page := 1
	limit := 20

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'page' parameter")
			return
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'limit' parameter")
			return
		}
	}

	items, err := s.items.List(r.Context(), filter, page, limit)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(items),
		"data":  toItemResponses(items),
	})
}

func (s *Server) handleMyItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.ListByOwner(r.Context(), callerID(r))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(items),
		"data":  toItemResponses(items),
	})
}

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes)
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "image too large or malformed upload (2MB max)")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing 'image' form field")
		return
	}
	defer file.Close()

	name, err := s.images.Save(itemID, file)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	if err := s.items.AttachImage(r.Context(), itemID, callerID(r), "/uploads/"+name); err != nil {
		s.images.Remove(name)
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"image": "/uploads/" + name})
}
