package entities

// ClientProfile is the brand-side identity referenced by campaign ownership.
type ClientProfile struct {
	ProfileID   string
	UserID      string
	CompanyName string
}

// AmbassadorProfile is the influencer-side identity referenced by engagements.
type AmbassadorProfile struct {
	ProfileID string
	UserID    string
	FullName  string
}
