package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateSubmissionRequest struct {
	EngagementID string `json:"engagement_id"`
	ContentURL   string `json:"content_url"`
	AdCode       string `json:"ad_code"`
}

type UpdateSubmissionRequest struct {
	ContentURL *string `json:"content_url"`
	AdCode     *string `json:"ad_code"`
}

type ReviewSubmissionRequest struct {
	Decision string `json:"decision"`
	Feedback string `json:"feedback"`
}

type SubmissionDTO struct {
	SubmissionID string `json:"submission_id"`
	EngagementID string `json:"engagement_id"`
	ContentURL   string `json:"content_url"`
	AdCode       string `json:"ad_code"`
	Status       string `json:"status"`
	Feedback     string `json:"feedback,omitempty"`
	SubmittedAt  string `json:"submitted_at"`
	ReviewedAt   string `json:"reviewed_at,omitempty"`
}

type SubmissionResponse struct {
	Submission SubmissionDTO `json:"submission"`
}

type ListSubmissionsResponse struct {
	Items []SubmissionDTO `json:"items"`
}
