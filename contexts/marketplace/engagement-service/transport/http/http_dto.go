package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type EngagementDTO struct {
	EngagementID string `json:"engagement_id"`
	CampaignID   string `json:"campaign_id"`
	AmbassadorID string `json:"ambassador_id"`
	ChatThreadID string `json:"chat_thread_id"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	SelectedAt   string `json:"selected_at,omitempty"`
}

type ContractDTO struct {
	ContractID          string   `json:"contract_id"`
	EngagementID        string   `json:"engagement_id"`
	ClientID            string   `json:"client_id"`
	ContractText        string   `json:"contract_text"`
	TermsAccepted       bool     `json:"terms_accepted"`
	Status              string   `json:"status"`
	PaymentType         string   `json:"payment_type"`
	TargetImpressions   *int     `json:"target_impressions,omitempty"`
	CostPerCPM          *float64 `json:"cost_per_cpm,omitempty"`
	StartDate           string   `json:"start_date,omitempty"`
	UsageRightsDuration string   `json:"usage_rights_duration,omitempty"`
	ClientSignedAt      string   `json:"client_signed_at,omitempty"`
	AmbassadorSignedAt  string   `json:"ambassador_signed_at,omitempty"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

type InviteAmbassadorRequest struct {
	AmbassadorProfileID string `json:"ambassador_profile_id"`
	Message             string `json:"message"`
}

type AcceptProposalRequest struct {
	ChatThreadID string `json:"chat_thread_id"`
}

type EngagementResponse struct {
	Engagement EngagementDTO `json:"engagement"`
}

type ListEngagementsResponse struct {
	Items []EngagementDTO `json:"items"`
}

type DraftContractRequest struct {
	ContractText        string   `json:"contract_text"`
	PaymentType         string   `json:"payment_type"`
	TargetImpressions   *int     `json:"target_impressions"`
	CostPerCPM          *float64 `json:"cost_per_cpm"`
	StartDate           string   `json:"start_date"`
	UsageRightsDuration string   `json:"usage_rights_duration"`
}

type UpdateContractRequest struct {
	ContractText        *string  `json:"contract_text"`
	PaymentType         *string  `json:"payment_type"`
	TargetImpressions   *int     `json:"target_impressions"`
	CostPerCPM          *float64 `json:"cost_per_cpm"`
	StartDate           *string  `json:"start_date"`
	UsageRightsDuration *string  `json:"usage_rights_duration"`
}

type SignContractRequest struct {
	Signer string `json:"signer"`
}

type ContractResponse struct {
	Contract ContractDTO `json:"contract"`
}

type ListContractsResponse struct {
	Items []ContractDTO `json:"items"`
}
