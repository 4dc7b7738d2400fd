package errors

import "errors"

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrInvalidCampaignInput  = errors.New("invalid campaign input")
	ErrInvalidCampaignStatus = errors.New("unsupported campaign status")
	ErrCampaignClosed        = errors.New("campaign is completed or cancelled")
)
