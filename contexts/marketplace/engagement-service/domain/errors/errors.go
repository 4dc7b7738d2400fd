package errors

import "errors"

var (
	ErrEngagementNotFound       = errors.New("engagement not found")
	ErrProposalNotFound         = errors.New("no pending proposal found for this chat")
	ErrProposalAlreadyProcessed = errors.New("proposal already processed")
	ErrInvalidStatusTransition  = errors.New("invalid engagement status transition")
	ErrStatusConflict           = errors.New("engagement status changed concurrently")
	ErrEngagementTerminated     = errors.New("engagement is terminated")
	ErrAlreadyInvited           = errors.New("ambassador is already added to this campaign")
	ErrCampaignNotFound         = errors.New("campaign not found")
	ErrContractNotFound         = errors.New("contract not found")
	ErrContractAlreadyDrafted   = errors.New("contract already drafted for this engagement")
	ErrContractNotEditable      = errors.New("contract can only be edited in draft status")
	ErrContractNotSendable      = errors.New("contract must be in draft status to send")
	ErrContractAlreadySigned    = errors.New("contract already signed")
	ErrInvalidEngagementInput   = errors.New("invalid engagement input")
)
