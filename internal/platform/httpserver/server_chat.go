package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chaterrors "brandloop/contexts/community-experience/chat-service/domain/errors"
	chathttp "brandloop/contexts/community-experience/chat-service/transport/http"
)

func (s *Server) handleStartChatThread(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req chathttp.StartThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChatError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.chat.Handler.StartThreadHandler(r.Context(), actor.UserID, req)
	if err != nil {
		writeChatDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePostChatMessage(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req chathttp.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChatError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.chat.Handler.PostMessageHandler(r.Context(), actor.UserID, r.PathValue("thread_id"), req)
	if err != nil {
		writeChatDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListChatMessages(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeChatError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.chat.Handler.ListMessagesHandler(r.Context(), actor.UserID, r.PathValue("thread_id"), limit)
	if err != nil {
		writeChatDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeChatError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, chathttp.ErrorResponse{Code: code, Message: message})
}

func writeChatDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chaterrors.ErrThreadNotFound):
		writeChatError(w, http.StatusNotFound, "thread_not_found", err.Error())
	case errors.Is(err, chaterrors.ErrNotParticipant):
		writeChatError(w, http.StatusForbidden, "not_participant", err.Error())
	case errors.Is(err, chaterrors.ErrInvalidRequest):
		writeChatError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeChatError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
