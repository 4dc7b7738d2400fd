package entities

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

func IsSupportedCampaignStatus(value string) bool {
	switch CampaignStatus(strings.TrimSpace(value)) {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	default:
		return false
	}
}

func (s CampaignStatus) Terminal() bool {
	return s == CampaignStatusCompleted || s == CampaignStatusCancelled
}

type Campaign struct {
	CampaignID      string
	ClientID        string
	Title           string
	Description     string
	BudgetMin       float64
	BudgetMax       float64
	Deadline        *time.Time
	Requirements    string
	ProposalMessage string
	MaxAmbassadors  int
	Status          CampaignStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
