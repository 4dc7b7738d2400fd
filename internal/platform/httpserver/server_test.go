package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chatservice "brandloop/contexts/community-experience/chat-service"
	guardmemory "brandloop/contexts/identity-access/access-guard/adapters/memory"
	guardapp "brandloop/contexts/identity-access/access-guard/application"
	guardentities "brandloop/contexts/identity-access/access-guard/domain/entities"
	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	campaignservice "brandloop/contexts/marketplace/campaign-service"
	campaigntransport "brandloop/contexts/marketplace/campaign-service/transport/http"
	engagementservice "brandloop/contexts/marketplace/engagement-service"
	chatadapter "brandloop/contexts/marketplace/engagement-service/adapters/chat"
	engagementtransport "brandloop/contexts/marketplace/engagement-service/transport/http"
	submissionservice "brandloop/contexts/marketplace/submission-service"
	engagementadapter "brandloop/contexts/marketplace/submission-service/adapters/engagement"

	"github.com/golang-jwt/jwt/v5"
)

type campaignOwnerReader interface {
	CampaignOwner(ctx context.Context, campaignID string) (string, error)
}

type engagementAmbassadorReader interface {
	EngagementAmbassador(ctx context.Context, engagementID string) (string, error)
}

// storeOwnership resolves ownership against the in-memory stores, the same
// role the postgres guard repository plays in production.
type storeOwnership struct {
	campaigns   campaignOwnerReader
	engagements engagementAmbassadorReader
}

func (o *storeOwnership) CampaignOwner(ctx context.Context, campaignID string) (string, error) {
	if o.campaigns == nil {
		return "", guarderrors.ErrAccessDenied
	}
	return o.campaigns.CampaignOwner(ctx, campaignID)
}

func (o *storeOwnership) EngagementAmbassador(ctx context.Context, engagementID string) (string, error) {
	if o.engagements == nil {
		return "", guarderrors.ErrAccessDenied
	}
	return o.engagements.EngagementAmbassador(ctx, engagementID)
}

func newTestServer(t *testing.T, jwtSecret string) *Server {
	t.Helper()

	profiles := guardmemory.NewStore()
	profiles.AddClient(guardentities.ClientProfile{ProfileID: "client-1", UserID: "user-client", CompanyName: "Acme"})
	profiles.AddClient(guardentities.ClientProfile{ProfileID: "client-2", UserID: "user-rival", CompanyName: "Rival"})
	profiles.AddAmbassador(guardentities.AmbassadorProfile{ProfileID: "amb-1", UserID: "user-amb", FullName: "Riley Fox"})

	ownership := &storeOwnership{}
	guard := guardapp.Guard{Profiles: profiles, Ownership: ownership}

	chatModule := chatservice.NewInMemoryModule(nil)
	campaignModule := campaignservice.NewInMemoryModule(nil, guard, nil)
	engagementModule := engagementservice.NewInMemoryModule(nil, engagementservice.InMemoryDependencies{
		Campaigns: campaignModule.Store,
		Guard:     guard,
		Chat:      chatadapter.Gateway{Chat: chatModule.Service},
	})
	submissionModule := submissionservice.NewInMemoryModule(
		nil,
		engagementadapter.Directory{Engagements: engagementModule.Store},
		guard,
		nil,
	)
	ownership.campaigns = campaignModule.Store
	ownership.engagements = engagementModule.Store

	return New(campaignModule, engagementModule, submissionModule, chatModule, jwtSecret, nil, "")
}

func doJSON(t *testing.T, handler http.Handler, method string, path string, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestRequestsWithoutIdentityAreRejected(t *testing.T) {
	server := newTestServer(t, "")

	rec := doJSON(t, server.Handler(), http.MethodGet, "/api/v1/campaigns/open", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var errResp ErrorResponse
	decodeInto(t, rec, &errResp)
	if errResp.Code != "unauthorized" {
		t.Fatalf("error code = %q, want unauthorized", errResp.Code)
	}
}

func TestJWTModeRejectsBadTokenAndAcceptsSignedOne(t *testing.T) {
	const secret = "test-secret"
	server := newTestServer(t, secret)
	handler := server.Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/open", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want 401", rec.Code)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-client",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/open", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("signed token status = %d, want 200", rec.Code)
	}
}

func TestCampaignToAcceptedProposalFlow(t *testing.T) {
	server := newTestServer(t, "")
	handler := server.Handler()

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/campaigns", "user-client", campaigntransport.CreateCampaignRequest{
		Title:     "Spring Launch",
		BudgetMin: 100,
		BudgetMax: 500,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create campaign status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created campaigntransport.CampaignResponse
	decodeInto(t, rec, &created)
	if created.Campaign.Status != "draft" {
		t.Fatalf("campaign status = %s, want draft", created.Campaign.Status)
	}
	campaignID := created.Campaign.CampaignID

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/campaigns/"+campaignID+"/invitations", "user-client", engagementtransport.InviteAmbassadorRequest{
		AmbassadorProfileID: "amb-1",
		Message:             "We would love to work with you.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("invite status = %d, body %s", rec.Code, rec.Body.String())
	}
	var invited engagementtransport.EngagementResponse
	decodeInto(t, rec, &invited)
	if invited.Engagement.Status != "proposal_received" {
		t.Fatalf("engagement status = %s, want proposal_received", invited.Engagement.Status)
	}
	if invited.Engagement.ChatThreadID == "" {
		t.Fatal("invitation must open a chat thread")
	}

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/proposals/accept", "user-amb", engagementtransport.AcceptProposalRequest{
		ChatThreadID: invited.Engagement.ChatThreadID,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("accept status = %d, body %s", rec.Code, rec.Body.String())
	}
	var accepted engagementtransport.EngagementResponse
	decodeInto(t, rec, &accepted)
	if accepted.Engagement.Status != "contract_drafted" {
		t.Fatalf("engagement status = %s, want contract_drafted", accepted.Engagement.Status)
	}
	if accepted.Engagement.SelectedAt == "" {
		t.Fatal("accept must stamp selected_at")
	}

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/proposals/accept", "user-amb", engagementtransport.AcceptProposalRequest{
		ChatThreadID: invited.Engagement.ChatThreadID,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate accept status = %d, want 409", rec.Code)
	}
}

func TestCrossClientAccessIsDenied(t *testing.T) {
	server := newTestServer(t, "")
	handler := server.Handler()

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/campaigns", "user-client", campaigntransport.CreateCampaignRequest{
		Title:     "Spring Launch",
		BudgetMin: 100,
		BudgetMax: 500,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create campaign status = %d", rec.Code)
	}
	var created campaigntransport.CampaignResponse
	decodeInto(t, rec, &created)

	title := "Hijacked"
	rec = doJSON(t, handler, http.MethodPatch, "/api/v1/campaigns/"+created.Campaign.CampaignID, "user-rival", campaigntransport.UpdateCampaignRequest{
		Title: &title,
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("cross client update status = %d, want 403", rec.Code)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/campaigns/"+created.Campaign.CampaignID, "user-rival", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("read status = %d, want 200", rec.Code)
	}
	var fetched campaigntransport.CampaignResponse
	decodeInto(t, rec, &fetched)
	if fetched.Campaign.Title != "Spring Launch" {
		t.Fatalf("denied update must not change the row, title = %q", fetched.Campaign.Title)
	}
}
