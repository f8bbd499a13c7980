package httpx

import (
	"net/http"

	"github.com/leerbron/leerbron-api/internal/domain/model"
	apperrors "github.com/leerbron/leerbron-api/internal/errors"
	"github.com/leerbron/leerbron-api/internal/service"
)

// LeermiddelHandlers serves the learning-resource and comment endpoints.
type LeermiddelHandlers struct {
	Leermiddelen *service.LeermiddelService
	Reacties     *service.ReactieService
}

// Create handles POST /api/leermiddelen.
func (h *LeermiddelHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLeermiddelRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	out, err := h.Leermiddelen.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, out)
}

// List handles GET /api/leermiddelen.
func (h *LeermiddelHandlers) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.Leermiddelen.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// GetByID handles GET /api/leermiddelen/{id}. The comment list depends on
// who is asking.
func (h *LeermiddelHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	out, err := h.Leermiddelen.Get(r.Context(), r.PathValue("id"), PrincipalFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// Update handles PUT /api/leermiddelen/{id}.
func (h *LeermiddelHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateLeermiddelRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	id := r.PathValue("id")
	if req.ID != "" && req.ID != id {
		WriteAppError(w, apperrors.ValidationField("id", "ID in pad en body komen niet overeen"))
		return
	}

	out, err := h.Leermiddelen.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/leermiddelen/{id}.
func (h *LeermiddelHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Leermiddelen.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateReactie handles POST /api/leermiddelen/{id}/reacties. Anonymous
// callers may comment.
func (h *LeermiddelHandlers) CreateReactie(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReactieRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	out, err := h.Reacties.Create(r.Context(), r.PathValue("id"), req, PrincipalFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, out)
}

// ListReacties handles GET /api/leermiddelen/{id}/reacties.
func (h *LeermiddelHandlers) ListReacties(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reacties.ListVisible(r.Context(), r.PathValue("id"), PrincipalFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// ListPendingReacties handles GET /api/reacties/pending.
func (h *LeermiddelHandlers) ListPendingReacties(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reacties.ListPending(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// ApproveReactie handles POST /api/reacties/{id}/approve.
func (h *LeermiddelHandlers) ApproveReactie(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reacties.Approve(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// DeleteReactie handles DELETE /api/reacties/{id}.
func (h *LeermiddelHandlers) DeleteReactie(w http.ResponseWriter, r *http.Request) {
	if err := h.Reacties.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
