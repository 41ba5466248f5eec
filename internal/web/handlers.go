package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkovtun/aifolio/internal/apperrors"
	"github.com/mkovtun/aifolio/internal/portfolio"
)

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type response struct {
	Success bool        `json:"success"`
	Error   *errorBody  `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type generateRequest struct {
	Budget    float64 `json:"budget"`
	RiskLevel float64 `json:"risk_level"`
	Strategy  string  `json:"strategy"`
}

type generateResponse struct {
	Success   bool                `json:"success"`
	Portfolio []portfolio.Holding `json:"portfolio"`
}

type addPositionRequest struct {
	AssetID  uint    `json:"asset_id"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type updateQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := s.repo.ListAssetsWithLatestPrice()
	if err != nil {
		s.writeError(w, apperrors.External("list assets", err))
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: assets})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Validation("invalid request body"))
		return
	}

	holdings, err := s.service.Generate(userID, req.Budget, req.RiskLevel, req.Strategy)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Success: true, Portfolio: holdings})
}

func (s *Server) handleHoldings(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	positions, err := s.service.Holdings(userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: positions})
}

func (s *Server) handleAddPosition(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	var req addPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Validation("invalid request body"))
		return
	}

	position, err := s.service.AddPosition(userID, req.AssetID, req.Quantity, req.Price)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: position})
}

func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	positionID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, apperrors.Validation("invalid position id"))
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Validation("invalid request body"))
		return
	}

	position, err := s.service.UpdateQuantity(userID, positionID, req.Quantity)
	if err != nil {
		s.writeError(w, err)
		return
	}
	// position is nil when the update removed the position
	writeJSON(w, http.StatusOK, response{Success: true, Data: position})
}

func (s *Server) handleRemovePosition(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")

	positionID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, apperrors.Validation("invalid position id"))
		return
	}

	if err := s.service.RemovePosition(userID, positionID); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := apperrors.KindOf(err)
	status := statusForKind(kind)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "kind", kind.String(), "error", err)
	}
	writeJSON(w, status, response{
		Success: false,
		Error:   &errorBody{Kind: kind.String(), Message: err.Error()},
	})
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindComputation:
		return http.StatusUnprocessableEntity
	case apperrors.KindExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
