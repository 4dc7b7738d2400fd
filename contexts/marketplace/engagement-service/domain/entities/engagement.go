package entities

import "time"

type EngagementStatus string

const (
	EngagementStatusProposalReceived EngagementStatus = "proposal_received"
	EngagementStatusContractDrafted  EngagementStatus = "contract_drafted"
	EngagementStatusContractSigned   EngagementStatus = "contract_signed"
	EngagementStatusActive           EngagementStatus = "active"
	EngagementStatusComplete         EngagementStatus = "complete"
	EngagementStatusTerminated       EngagementStatus = "terminated"
)

// Terminal reports whether no further transition is permitted.
func (s EngagementStatus) Terminal() bool {
	return s == EngagementStatusComplete || s == EngagementStatusTerminated
}

func IsSupportedEngagementStatus(value EngagementStatus) bool {
	switch value {
	case EngagementStatusProposalReceived,
		EngagementStatusContractDrafted,
		EngagementStatusContractSigned,
		EngagementStatusActive,
		EngagementStatusComplete,
		EngagementStatusTerminated:
		return true
	default:
		return false
	}
}

// NextStatus returns the linear successor on the happy path.
func NextStatus(status EngagementStatus) (EngagementStatus, bool) {
	switch status {
	case EngagementStatusProposalReceived:
		return EngagementStatusContractDrafted, true
	case EngagementStatusContractDrafted:
		return EngagementStatusContractSigned, true
	case EngagementStatusContractSigned:
		return EngagementStatusActive, true
	case EngagementStatusActive:
		return EngagementStatusComplete, true
	default:
		return "", false
	}
}

// CanTransition permits the single linear step forward, plus termination from
// any non-terminal status. Terminated is absorbing.
func CanTransition(from EngagementStatus, to EngagementStatus) bool {
	if to == EngagementStatusTerminated {
		return !from.Terminal()
	}
	next, ok := NextStatus(from)
	return ok && next == to
}

// ActiveStatuses are the accepted-and-in-flight statuses shown on the
// ambassador dashboard. Mere proposals and terminal rows are excluded.
func ActiveStatuses() []EngagementStatus {
	return []EngagementStatus{
		EngagementStatusContractDrafted,
		EngagementStatusContractSigned,
		EngagementStatusActive,
	}
}

// Engagement is the campaign-ambassador association row. It is never
// hard-deleted; termination is recorded as a status instead.
type Engagement struct {
	EngagementID string
	CampaignID   string
	AmbassadorID string
	ChatThreadID string
	Status       EngagementStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	SelectedAt   *time.Time
}
