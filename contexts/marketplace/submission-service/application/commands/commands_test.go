package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	guardmemory "brandloop/contexts/identity-access/access-guard/adapters/memory"
	guardapp "brandloop/contexts/identity-access/access-guard/application"
	guardentities "brandloop/contexts/identity-access/access-guard/domain/entities"
	guarderrors "brandloop/contexts/identity-access/access-guard/domain/errors"
	"brandloop/contexts/marketplace/submission-service/adapters/memory"
	"brandloop/contexts/marketplace/submission-service/domain/entities"
	domainerrors "brandloop/contexts/marketplace/submission-service/domain/errors"
	"brandloop/contexts/marketplace/submission-service/ports"
)

type fakeDirectory struct {
	engagements map[string]ports.EngagementRef
}

func (d fakeDirectory) EngagementByID(_ context.Context, engagementID string) (ports.EngagementRef, error) {
	ref, ok := d.engagements[engagementID]
	if !ok {
		return ports.EngagementRef{}, domainerrors.ErrSubmissionNotFound
	}
	return ref, nil
}

func (d fakeDirectory) ListByCampaign(_ context.Context, campaignID string) ([]ports.EngagementRef, error) {
	var refs []ports.EngagementRef
	for _, ref := range d.engagements {
		if ref.CampaignID == campaignID {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

func (d fakeDirectory) ListByAmbassador(_ context.Context, ambassadorID string) ([]ports.EngagementRef, error) {
	var refs []ports.EngagementRef
	for _, ref := range d.engagements {
		if ref.AmbassadorID == ambassadorID {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

type staticOwnership struct {
	owners map[string]string
	ambs   map[string]string
}

func (o staticOwnership) CampaignOwner(_ context.Context, campaignID string) (string, error) {
	owner, ok := o.owners[campaignID]
	if !ok {
		return "", guarderrors.ErrAccessDenied
	}
	return owner, nil
}

func (o staticOwnership) EngagementAmbassador(_ context.Context, engagementID string) (string, error) {
	ambassador, ok := o.ambs[engagementID]
	if !ok {
		return "", guarderrors.ErrAccessDenied
	}
	return ambassador, nil
}

func newSubmissionGuard() guardapp.Guard {
	profiles := guardmemory.NewStore()
	profiles.AddClient(guardentities.ClientProfile{ProfileID: "client-1", UserID: "user-client", CompanyName: "Acme"})
	profiles.AddAmbassador(guardentities.AmbassadorProfile{ProfileID: "amb-1", UserID: "user-amb", FullName: "Riley Fox"})
	profiles.AddAmbassador(guardentities.AmbassadorProfile{ProfileID: "amb-2", UserID: "user-other", FullName: "Sam Lee"})

	return guardapp.Guard{
		Profiles: profiles,
		Ownership: staticOwnership{
			owners: map[string]string{"camp-1": "client-1"},
			ambs:   map[string]string{"eng-1": "amb-1"},
		},
	}
}

func newDirectory(status string) fakeDirectory {
	return fakeDirectory{engagements: map[string]ports.EngagementRef{
		"eng-1": {EngagementID: "eng-1", CampaignID: "camp-1", AmbassadorID: "amb-1", Status: status},
	}}
}

func TestCreateSubmissionRequiresActiveEngagement(t *testing.T) {
	for _, status := range []string{"proposal_received", "contract_drafted", "contract_signed", "complete", "terminated"} {
		store := memory.NewStore(nil)
		uc := CreateSubmissionUseCase{
			Submissions: store,
			Directory:   newDirectory(status),
			Guard:       newSubmissionGuard(),
			Clock:       store,
			IDGen:       store,
		}
		_, err := uc.Execute(context.Background(), CreateSubmissionCommand{
			ActorUserID:  "user-amb",
			EngagementID: "eng-1",
			ContentURL:   "https://example.com/post/1",
		})
		if !errors.Is(err, domainerrors.ErrEngagementNotActive) {
			t.Fatalf("status %s: got %v, want engagement not active", status, err)
		}
	}
}

func TestCreateSubmissionHappyPath(t *testing.T) {
	store := memory.NewStore(nil)
	uc := CreateSubmissionUseCase{
		Submissions: store,
		Directory:   newDirectory(ports.EngagementStatusActive),
		Guard:       newSubmissionGuard(),
		Clock:       store,
		IDGen:       store,
	}

	submission, err := uc.Execute(context.Background(), CreateSubmissionCommand{
		ActorUserID:  "user-amb",
		EngagementID: "eng-1",
		ContentURL:   "https://example.com/post/1",
		AdCode:       "SPRING26",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if submission.Status != entities.SubmissionStatusPendingReview {
		t.Fatalf("status = %s, want pending_review", submission.Status)
	}
	if submission.ReviewedAt != nil {
		t.Fatal("a fresh submission must not carry a review timestamp")
	}
}

func TestCreateSubmissionHidesEngagementExistence(t *testing.T) {
	store := memory.NewStore(nil)
	uc := CreateSubmissionUseCase{
		Submissions: store,
		Directory:   newDirectory(ports.EngagementStatusActive),
		Guard:       newSubmissionGuard(),
		Clock:       store,
		IDGen:       store,
	}

	_, missingErr := uc.Execute(context.Background(), CreateSubmissionCommand{
		ActorUserID:  "user-other",
		EngagementID: "eng-9",
		ContentURL:   "https://example.com/post/1",
	})
	_, foreignErr := uc.Execute(context.Background(), CreateSubmissionCommand{
		ActorUserID:  "user-other",
		EngagementID: "eng-1",
		ContentURL:   "https://example.com/post/1",
	})

	if !errors.Is(missingErr, guarderrors.ErrAccessDenied) {
		t.Fatalf("missing engagement: got %v, want access denied", missingErr)
	}
	if !errors.Is(foreignErr, guarderrors.ErrAccessDenied) {
		t.Fatalf("foreign engagement: got %v, want access denied", foreignErr)
	}
}

func TestUpdateSubmissionDeniedForWrongAmbassador(t *testing.T) {
	store := memory.NewStore([]entities.Submission{{
		SubmissionID: "sub-1",
		EngagementID: "eng-1",
		ContentURL:   "https://example.com/post/1",
		Status:       entities.SubmissionStatusApproved,
		SubmittedAt:  time.Now().UTC().Add(-time.Hour),
	}})
	uc := UpdateSubmissionUseCase{
		Submissions: store,
		Guard:       newSubmissionGuard(),
		Clock:       store,
	}

	contentURL := "https://example.com/post/2"
	_, err := uc.Execute(context.Background(), UpdateSubmissionCommand{
		ActorUserID:  "user-other",
		SubmissionID: "sub-1",
		ContentURL:   &contentURL,
	})
	if !errors.Is(err, guarderrors.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}

	current, err := store.GetSubmission(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if current.Status != entities.SubmissionStatusApproved {
		t.Fatalf("denied update must not touch the row, status = %s", current.Status)
	}
}

func TestCreateSubmissionDeniedForWrongAmbassador(t *testing.T) {
	store := memory.NewStore(nil)
	uc := CreateSubmissionUseCase{
		Submissions: store,
		Directory:   newDirectory(ports.EngagementStatusActive),
		Guard:       newSubmissionGuard(),
		Clock:       store,
		IDGen:       store,
	}

	_, err := uc.Execute(context.Background(), CreateSubmissionCommand{
		ActorUserID:  "user-other",
		EngagementID: "eng-1",
		ContentURL:   "https://example.com/post/1",
	})
	if !errors.Is(err, guarderrors.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestReviewRequiresChangesNeedsFeedback(t *testing.T) {
	store := memory.NewStore([]entities.Submission{{
		SubmissionID: "sub-1",
		EngagementID: "eng-1",
		ContentURL:   "https://example.com/post/1",
		Status:       entities.SubmissionStatusPendingReview,
		SubmittedAt:  time.Now().UTC().Add(-time.Hour),
	}})
	uc := ReviewSubmissionUseCase{
		Submissions: store,
		Directory:   newDirectory(ports.EngagementStatusActive),
		Guard:       newSubmissionGuard(),
		Clock:       store,
	}

	_, err := uc.Execute(context.Background(), ReviewSubmissionCommand{
		ActorUserID:  "user-client",
		SubmissionID: "sub-1",
		Decision:     "requires_changes",
	})
	if !errors.Is(err, domainerrors.ErrFeedbackRequired) {
		t.Fatalf("expected feedback required, got %v", err)
	}

	current, err := store.GetSubmission(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if current.Status != entities.SubmissionStatusPendingReview {
		t.Fatalf("rejected review must not touch the row, status = %s", current.Status)
	}
	if current.ReviewedAt != nil {
		t.Fatal("rejected review must not stamp reviewed_at")
	}
}

func TestReviewApproveAndRequestChanges(t *testing.T) {
	store := memory.NewStore([]entities.Submission{{
		SubmissionID: "sub-1",
		EngagementID: "eng-1",
		ContentURL:   "https://example.com/post/1",
		Status:       entities.SubmissionStatusPendingReview,
		SubmittedAt:  time.Now().UTC().Add(-time.Hour),
	}})
	uc := ReviewSubmissionUseCase{
		Submissions: store,
		Directory:   newDirectory(ports.EngagementStatusActive),
		Guard:       newSubmissionGuard(),
		Clock:       store,
	}

	reviewed, err := uc.Execute(context.Background(), ReviewSubmissionCommand{
		ActorUserID:  "user-client",
		SubmissionID: "sub-1",
		Decision:     "requires_changes",
		Feedback:     "Logo is missing from the frame.",
	})
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if reviewed.Status != entities.SubmissionStatusRequiresChanges {
		t.Fatalf("status = %s, want requires_changes", reviewed.Status)
	}
	if reviewed.Feedback == "" || reviewed.ReviewedAt == nil {
		t.Fatal("review must record feedback and reviewed_at")
	}

	approved, err := uc.Execute(context.Background(), ReviewSubmissionCommand{
		ActorUserID:  "user-client",
		SubmissionID: "sub-1",
		Decision:     "approved",
	})
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != entities.SubmissionStatusApproved {
		t.Fatalf("status = %s, want approved", approved.Status)
	}
}

func TestReviewRejectsUnknownDecision(t *testing.T) {
	store := memory.NewStore(nil)
	uc := ReviewSubmissionUseCase{
		Submissions: store,
		Directory:   newDirectory(ports.EngagementStatusActive),
		Guard:       newSubmissionGuard(),
		Clock:       store,
	}

	_, err := uc.Execute(context.Background(), ReviewSubmissionCommand{
		ActorUserID:  "user-client",
		SubmissionID: "sub-1",
		Decision:     "maybe",
	})
	if !errors.Is(err, domainerrors.ErrInvalidReviewDecision) {
		t.Fatalf("expected invalid decision, got %v", err)
	}
}
