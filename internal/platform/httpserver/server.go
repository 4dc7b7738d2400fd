package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chatservice "brandloop/contexts/community-experience/chat-service"
	campaignservice "brandloop/contexts/marketplace/campaign-service"
	engagementservice "brandloop/contexts/marketplace/engagement-service"
	submissionservice "brandloop/contexts/marketplace/submission-service"

	httpSwagger "github.com/swaggo/http-swagger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	jwtSecret   []byte
	campaigns   campaignservice.Module
	engagements engagementservice.Module
	submissions submissionservice.Module
	chat        chatservice.Module
}

func New(
	campaigns campaignservice.Module,
	engagements engagementservice.Module,
	submissions submissionservice.Module,
	chat chatservice.Module,
	jwtSecret string,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		jwtSecret:   []byte(jwtSecret),
		campaigns:   campaigns,
		engagements: engagements,
		submissions: submissions,
		chat:        chat,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/v1/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("GET /api/v1/campaigns/open", s.handleOpenCampaigns)
	s.mux.HandleFunc("GET /api/v1/campaigns/mine", s.handleMyCampaigns)
	s.mux.HandleFunc("GET /api/v1/campaigns/{campaign_id}", s.handleGetCampaign)
	s.mux.HandleFunc("PATCH /api/v1/campaigns/{campaign_id}", s.handleUpdateCampaign)
	s.mux.HandleFunc("DELETE /api/v1/campaigns/{campaign_id}", s.handleDeleteCampaign)
	s.mux.HandleFunc("POST /api/v1/campaigns/{campaign_id}/status", s.handleChangeCampaignStatus)
	s.mux.HandleFunc("POST /api/v1/campaigns/{campaign_id}/invitations", s.handleInviteAmbassador)
	s.mux.HandleFunc("GET /api/v1/campaigns/{campaign_id}/engagements", s.handleCampaignEngagements)
	s.mux.HandleFunc("GET /api/v1/campaigns/{campaign_id}/submissions", s.handleCampaignSubmissions)

	s.mux.HandleFunc("POST /api/v1/proposals/accept", s.handleAcceptProposal)

	s.mux.HandleFunc("GET /api/v1/engagements/mine", s.handleMyEngagements)
	s.mux.HandleFunc("GET /api/v1/engagements/{engagement_id}", s.handleGetEngagement)
	s.mux.HandleFunc("POST /api/v1/engagements/{engagement_id}/activate", s.handleActivateEngagement)
	s.mux.HandleFunc("POST /api/v1/engagements/{engagement_id}/complete", s.handleCompleteEngagement)
	s.mux.HandleFunc("POST /api/v1/engagements/{engagement_id}/terminate", s.handleTerminateEngagement)
	s.mux.HandleFunc("POST /api/v1/engagements/{engagement_id}/contract", s.handleDraftContract)
	s.mux.HandleFunc("GET /api/v1/engagements/{engagement_id}/submissions", s.handleEngagementSubmissions)

	s.mux.HandleFunc("GET /api/v1/contracts/mine", s.handleMyContracts)
	s.mux.HandleFunc("GET /api/v1/contracts/{contract_id}", s.handleGetContract)
	s.mux.HandleFunc("PATCH /api/v1/contracts/{contract_id}", s.handleUpdateContract)
	s.mux.HandleFunc("POST /api/v1/contracts/{contract_id}/send", s.handleSendContract)
	s.mux.HandleFunc("POST /api/v1/contracts/{contract_id}/sign", s.handleSignContract)

	s.mux.HandleFunc("POST /api/v1/submissions", s.handleCreateSubmission)
	s.mux.HandleFunc("GET /api/v1/submissions/mine", s.handleMySubmissions)
	s.mux.HandleFunc("PATCH /api/v1/submissions/{submission_id}", s.handleUpdateSubmission)
	s.mux.HandleFunc("POST /api/v1/submissions/{submission_id}/review", s.handleReviewSubmission)

	s.mux.HandleFunc("POST /api/v1/chat/threads", s.handleStartChatThread)
	s.mux.HandleFunc("POST /api/v1/chat/threads/{thread_id}/messages", s.handlePostChatMessage)
	s.mux.HandleFunc("GET /api/v1/chat/threads/{thread_id}/messages", s.handleListChatMessages)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
