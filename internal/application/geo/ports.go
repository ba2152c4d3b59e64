package geo

import "context"

// CountryScreening is the collaborator's screening verdict for a country
type CountryScreening struct {
	CountryCode string   `json:"country_code"`
	Status      string   `json:"status"`
	RiskLevel   string   `json:"risk_level"`
	Restricted  bool     `json:"restricted"`
	Notes       []string `json:"notes,omitempty"`
}

// RegionAssessment is the collaborator's aggregate assessment for a region
type RegionAssessment struct {
	RegionCode string             `json:"region_code"`
	RiskLevel  string             `json:"risk_level"`
	Countries  []CountryScreening `json:"countries,omitempty"`
}

// ComplianceClient talks to the external trade-compliance collaborator.
// Calls are best effort from the tree's point of view: annotation is
// skipped when the collaborator is slow or unavailable.
type ComplianceClient interface {
	ScreenCountry(ctx context.Context, code string) (*CountryScreening, error)
	AssessRegion(ctx context.Context, code string) (*RegionAssessment, error)
}
