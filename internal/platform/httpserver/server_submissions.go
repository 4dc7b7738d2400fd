package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	submissionerrors "brandloop/contexts/marketplace/submission-service/domain/errors"
	submissionhttp "brandloop/contexts/marketplace/submission-service/transport/http"
)

func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req submissionhttp.CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSubmissionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.submissions.Handler.CreateSubmissionHandler(r.Context(), actor.UserID, req)
	if err != nil {
		writeSubmissionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req submissionhttp.UpdateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSubmissionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.submissions.Handler.UpdateSubmissionHandler(r.Context(), actor.UserID, r.PathValue("submission_id"), req)
	if err != nil {
		writeSubmissionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReviewSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req submissionhttp.ReviewSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSubmissionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.submissions.Handler.ReviewSubmissionHandler(r.Context(), actor.UserID, r.PathValue("submission_id"), req)
	if err != nil {
		writeSubmissionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEngagementSubmissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.submissions.Handler.EngagementSubmissionsHandler(r.Context(), actor.UserID, r.PathValue("engagement_id"))
	if err != nil {
		writeSubmissionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCampaignSubmissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.submissions.Handler.CampaignSubmissionsHandler(r.Context(), actor.UserID, r.PathValue("campaign_id"))
	if err != nil {
		writeSubmissionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMySubmissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.submissions.Handler.MySubmissionsHandler(r.Context(), actor.UserID)
	if err != nil {
		writeSubmissionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeSubmissionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, submissionhttp.ErrorResponse{Code: code, Message: message})
}

func writeSubmissionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, guarderrors.ErrAccessDenied):
		writeSubmissionError(w, http.StatusForbidden, "access_denied", err.Error())
	case errors.Is(err, guarderrors.ErrClientProfileNotFound),
		errors.Is(err, guarderrors.ErrAmbassadorProfileNotFound):
		writeSubmissionError(w, http.StatusForbidden, "profile_required", err.Error())
	case errors.Is(err, submissionerrors.ErrSubmissionNotFound):
		writeSubmissionError(w, http.StatusNotFound, "submission_not_found", err.Error())
	case errors.Is(err, submissionerrors.ErrEngagementNotActive):
		writeSubmissionError(w, http.StatusConflict, "engagement_not_active", err.Error())
	case errors.Is(err, submissionerrors.ErrFeedbackRequired):
		writeSubmissionError(w, http.StatusBadRequest, "feedback_required", err.Error())
	case errors.Is(err, submissionerrors.ErrInvalidReviewDecision),
		errors.Is(err, submissionerrors.ErrInvalidSubmissionInput):
		writeSubmissionError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeSubmissionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
