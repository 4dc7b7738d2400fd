package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	"brandloop/contexts/marketplace/engagement-service/application/commands"
	engagementerrors "brandloop/contexts/marketplace/engagement-service/domain/errors"
	engagementhttp "brandloop/contexts/marketplace/engagement-service/transport/http"
)

func (s *Server) handleInviteAmbassador(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req engagementhttp.InviteAmbassadorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEngagementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.engagements.Handler.InviteAmbassadorHandler(r.Context(), actor.UserID, r.PathValue("campaign_id"), req)
	if err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleAcceptProposal(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req engagementhttp.AcceptProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEngagementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.engagements.Handler.AcceptProposalHandler(r.Context(), actor.UserID, req)
	if err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActivateEngagement(w http.ResponseWriter, r *http.Request) {
	s.handleEngagementStatusAction(w, r, commands.StatusActionActivate)
}

func (s *Server) handleCompleteEngagement(w http.ResponseWriter, r *http.Request) {
	s.handleEngagementStatusAction(w, r, commands.StatusActionComplete)
}

func (s *Server) handleTerminateEngagement(w http.ResponseWriter, r *http.Request) {
	s.handleEngagementStatusAction(w, r, commands.StatusActionTerminate)
}

func (s *Server) handleEngagementStatusAction(w http.ResponseWriter, r *http.Request, action commands.StatusAction) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.engagements.Handler.ChangeStatusHandler(r.Context(), actor.UserID, r.PathValue("engagement_id"), action)
	if err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEngagement(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.engagements.Handler.GetEngagementHandler(r.Context(), actor.UserID, r.PathValue("engagement_id"))
	if err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCampaignEngagements(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.engagements.Handler.ListCampaignEngagementsHandler(r.Context(), actor.UserID, r.PathValue("campaign_id"))
	if err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMyEngagements(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.engagements.Handler.MyEngagementsHandler(r.Context(), actor.UserID)
	if err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDraftContract(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req engagementhttp.DraftContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEngagementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.engagements.Handler.DraftContractHandler(r.Context(), actor.UserID, r.PathValue("engagement_id"), req)
	if err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateContract(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req engagementhttp.UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEngagementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	if err := s.engagements.Handler.UpdateContractHandler(r.Context(), actor.UserID, r.PathValue("contract_id"), req); err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSendContract(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	if err := s.engagements.Handler.SendContractHandler(r.Context(), actor.UserID, r.PathValue("contract_id")); err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSignContract(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req engagementhttp.SignContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEngagementError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	if err := s.engagements.Handler.SignContractHandler(r.Context(), actor.UserID, r.PathValue("contract_id"), req); err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetContract(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.engagements.Handler.GetContractHandler(r.Context(), actor.UserID, r.PathValue("contract_id"))
	if err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMyContracts(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.engagements.Handler.MyContractsHandler(r.Context(), actor.UserID)
	if err != nil {
		writeEngagementDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeEngagementError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, engagementhttp.ErrorResponse{Code: code, Message: message})
}

func writeEngagementDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, guarderrors.ErrAccessDenied):
		writeEngagementError(w, http.StatusForbidden, "access_denied", err.Error())
	case errors.Is(err, guarderrors.ErrClientProfileNotFound),
		errors.Is(err, guarderrors.ErrAmbassadorProfileNotFound):
		writeEngagementError(w, http.StatusForbidden, "profile_required", err.Error())
	case errors.Is(err, engagementerrors.ErrEngagementNotFound),
		errors.Is(err, engagementerrors.ErrProposalNotFound),
		errors.Is(err, engagementerrors.ErrCampaignNotFound),
		errors.Is(err, engagementerrors.ErrContractNotFound):
		writeEngagementError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, engagementerrors.ErrProposalAlreadyProcessed),
		errors.Is(err, engagementerrors.ErrInvalidStatusTransition),
		errors.Is(err, engagementerrors.ErrStatusConflict),
		errors.Is(err, engagementerrors.ErrEngagementTerminated),
		errors.Is(err, engagementerrors.ErrAlreadyInvited),
		errors.Is(err, engagementerrors.ErrContractAlreadyDrafted),
		errors.Is(err, engagementerrors.ErrContractNotEditable),
		errors.Is(err, engagementerrors.ErrContractNotSendable),
		errors.Is(err, engagementerrors.ErrContractAlreadySigned):
		writeEngagementError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, engagementerrors.ErrInvalidEngagementInput):
		writeEngagementError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeEngagementError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
