package rest

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openmaterials/auction-engine/internal/domain/errors"
	"github.com/openmaterials/auction-engine/internal/service/bidding"
)

var validate = validator.New()

type submitBidRequest struct {
	BidderID    uuid.UUID `json:"bidder_id" validate:"required"`
	AmountCents int64     `json:"amount_cents" validate:"required,gt=0"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleSubmitBid(w http.ResponseWriter, r *http.Request) {
	auctionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "INVALID_AUCTION_ID", Message: "auction id must be a UUID"})
		return
	}

	var req submitBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "INVALID_BODY", Message: "request body must be valid JSON"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "INVALID_BID", Message: err.Error()})
		return
	}

	outcome, err := s.service.SubmitBid(r.Context(), bidding.SubmitBidRequest{
		AuctionID:   auctionID,
		BidderID:    req.BidderID,
		AmountCents: req.AmountCents,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, statusForOutcome(outcome), outcome)
}

func (s *Server) handleMinimumBid(w http.ResponseWriter, r *http.Request) {
	auctionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "INVALID_AUCTION_ID", Message: "auction id must be a UUID"})
		return
	}

	minimum, err := s.service.ComputeMinimumNextBid(r.Context(), auctionID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, minimum)
}

func (s *Server) handleListBids(w http.ResponseWriter, r *http.Request) {
	auctionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "INVALID_AUCTION_ID", Message: "auction id must be a UUID"})
		return
	}

	bids, err := s.service.ListBids(r.Context(), auctionID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bids": bids})
}

// statusForOutcome maps the engine's outcome to an HTTP status. Rejections
// are successful decisions, not server failures.
func statusForOutcome(outcome *bidding.BidOutcome) int {
	if outcome.Accepted {
		return http.StatusCreated
	}
	switch outcome.Rejection.Reason {
	case bidding.ReasonAuctionNotActive:
		return http.StatusConflict
	case bidding.ReasonBidderNotEligible:
		return http.StatusForbidden
	case bidding.ReasonBidTooLow:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.GetStatusCode(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}

	resp := errorResponse{Code: "INTERNAL_ERROR", Message: "internal error"}
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		resp = errorResponse{Code: appErr.Code, Message: appErr.Message}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
