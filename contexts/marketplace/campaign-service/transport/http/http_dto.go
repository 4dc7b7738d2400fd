package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCampaignRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	BudgetMin       float64 `json:"budget_min"`
	BudgetMax       float64 `json:"budget_max"`
	Deadline        string  `json:"deadline"`
	Requirements    string  `json:"requirements"`
	ProposalMessage string  `json:"proposal_message"`
	MaxAmbassadors  int     `json:"max_ambassadors"`
}

type UpdateCampaignRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	BudgetMin       *float64 `json:"budget_min"`
	BudgetMax       *float64 `json:"budget_max"`
	Requirements    *string  `json:"requirements"`
	ProposalMessage *string  `json:"proposal_message"`
	MaxAmbassadors  *int     `json:"max_ambassadors"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type CampaignDTO struct {
	CampaignID      string  `json:"campaign_id"`
	ClientID        string  `json:"client_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	BudgetMin       float64 `json:"budget_min"`
	BudgetMax       float64 `json:"budget_max"`
	Deadline        string  `json:"deadline,omitempty"`
	Requirements    string  `json:"requirements"`
	ProposalMessage string  `json:"proposal_message"`
	MaxAmbassadors  int     `json:"max_ambassadors"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type CampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type ListCampaignsResponse struct {
	Items []CampaignDTO `json:"items"`
}
