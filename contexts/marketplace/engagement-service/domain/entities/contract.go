package entities

import (
	"strings"
	"time"
)

type ContractStatus string
type PaymentType string
type SignerRole string

const (
	ContractStatusDraft            ContractStatus = "draft"
	ContractStatusPendingSignature ContractStatus = "pending_ambassador_signature"
	ContractStatusActive           ContractStatus = "active"
	ContractStatusCompleted        ContractStatus = "completed"
	ContractStatusTerminated       ContractStatus = "terminated"

	PaymentTypePerPost PaymentType = "pay_per_post"
	PaymentTypePerCPM  PaymentType = "pay_per_cpm"

	SignerClient     SignerRole = "client"
	SignerAmbassador SignerRole = "ambassador"
)

func IsSupportedPaymentType(value PaymentType) bool {
	return value == PaymentTypePerPost || value == PaymentTypePerCPM
}

func IsSupportedSignerRole(value SignerRole) bool {
	return value == SignerClient || value == SignerAmbassador
}

// Contract is drafted once per engagement by the campaign's client and read
// by both parties.
type Contract struct {
	ContractID          string
	EngagementID        string
	ClientID            string
	ContractText        string
	TermsAccepted       bool
	Status              ContractStatus
	PaymentType         PaymentType
	TargetImpressions   *int
	CostPerCPM          *float64
	StartDate           *time.Time
	UsageRightsDuration string
	ClientSignedAt      *time.Time
	AmbassadorSignedAt  *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (c Contract) Editable() bool {
	return c.Status == ContractStatusDraft
}

// AppendSignature adds a signature block to the contract text unless one with
// the same tag is already present.
func AppendSignature(text string, tag string, name string, signedAt time.Time) string {
	if strings.Contains(text, tag) {
		return text
	}
	return text + "\n\n" + tag + " " + name + " — " + signedAt.Format("2006-01-02")
}
