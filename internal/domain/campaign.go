package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type CampaignStatus string

const (
	StatusPending CampaignStatus = "PENDING"
	StatusActive  CampaignStatus = "ACTIVE"
	StatusDone    CampaignStatus = "DONE"
)

// ValidStatus reports whether s is one of the known campaign statuses.
func ValidStatus(s CampaignStatus) bool {
	switch s {
	case StatusPending, StatusActive, StatusDone:
		return true
	}
	return false
}

// GeofenceConfig is a geofence attached to a campaign: the polygon boundary
// plus the per-zone serving settings. Budget caps are stored in the
// currency's smallest unit to avoid floating rounding.
type GeofenceConfig struct {
	ID                  string   `json:"id"`
	Boundary            Geometry `json:"boundary"`
	PriorityWeight      int      `json:"priority_weight"`
	BudgetCapMinorUnits int64    `json:"budget_cap_minor_units"`
	ClickQuorum         int      `json:"click_quorum"`
	Name                string   `json:"name"`
}

// NewGeofenceConfig builds a fully-populated geofence config from a draft.
// Unset settings default to zero; the budget cap is converted from major
// units via round(v * 100). Negative settings are clamped to zero.
func NewGeofenceConfig(draft GeofenceDraft) GeofenceConfig {
	cfg := GeofenceConfig{
		ID:       draft.ID,
		Boundary: draft.Boundary,
		Name:     draft.Name,
	}
	if draft.PriorityWeight != nil && *draft.PriorityWeight > 0 {
		cfg.PriorityWeight = *draft.PriorityWeight
	}
	if draft.BudgetCapMajorUnits != nil && *draft.BudgetCapMajorUnits > 0 {
		cfg.BudgetCapMinorUnits = int64(math.Round(*draft.BudgetCapMajorUnits * 100))
	}
	if draft.ClickQuorum != nil && *draft.ClickQuorum > 0 {
		cfg.ClickQuorum = *draft.ClickQuorum
	}
	return cfg
}

// Campaign is the canonical record for a geofenced ad campaign. Metric
// fields are mock values in this system; no real delivery produces them.
type Campaign struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	Status                  CampaignStatus   `json:"status"`
	BudgetMajorUnits        float64          `json:"budget"`
	SpentMajorUnits         float64          `json:"spent"`
	Conversions             int              `json:"conversions"`
	ClickThroughRatePercent float64          `json:"ctr"`
	GeofenceConfigs         []GeofenceConfig `json:"geofence_configs"`
	CreatedDate             string           `json:"created"`
}

// Date layout for Campaign.CreatedDate (no time component retained)
const CreatedDateLayout = "2006-01-02"

// SortKey orders campaigns newest-first: created date descending, then the
// time-derived id descending. Returns true when a sorts before b.
func SortKey(a, b Campaign) bool {
	if a.CreatedDate != b.CreatedDate {
		return a.CreatedDate > b.CreatedDate
	}
	ai, aerr := strconv.ParseInt(a.ID, 10, 64)
	bi, berr := strconv.ParseInt(b.ID, 10, 64)
	if aerr == nil && berr == nil {
		return ai > bi
	}
	return a.ID > b.ID
}

// CreateCampaignInput carries the campaign-creation form payload.
type CreateCampaignInput struct {
	Name             string          `json:"name"`
	BudgetMajorUnits float64         `json:"budget"`
	Geofences        []GeofenceDraft `json:"geofences"`
}

// Validate checks the creation preconditions: non-empty name, positive
// budget, and at least one geofence each carrying a boundary ring.
func (in CreateCampaignInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Reason: "campaign name is required"}
	}
	if in.BudgetMajorUnits <= 0 {
		return &ValidationError{Field: "budget", Reason: "budget must be a positive amount"}
	}
	if len(in.Geofences) == 0 {
		return &ValidationError{Field: "geofences", Reason: "at least one geofence is required"}
	}
	for _, g := range in.Geofences {
		if len(g.Boundary.Ring()) == 0 {
			return &ValidationError{Field: "geofences", Reason: "geofence " + g.ID + " has no boundary"}
		}
	}
	return nil
}

// CampaignPatch is a shallow field patch for Update. Nil fields are left
// untouched on the target record.
type CampaignPatch struct {
	Name                    *string           `json:"name,omitempty"`
	Status                  *CampaignStatus   `json:"status,omitempty"`
	BudgetMajorUnits        *float64          `json:"budget,omitempty"`
	SpentMajorUnits         *float64          `json:"spent,omitempty"`
	Conversions             *int              `json:"conversions,omitempty"`
	ClickThroughRatePercent *float64          `json:"ctr,omitempty"`
	GeofenceConfigs         *[]GeofenceConfig `json:"geofence_configs,omitempty"`
}

// Apply merges the set patch fields onto c.
func (p CampaignPatch) Apply(c *Campaign) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.BudgetMajorUnits != nil {
		c.BudgetMajorUnits = *p.BudgetMajorUnits
	}
	if p.SpentMajorUnits != nil {
		c.SpentMajorUnits = *p.SpentMajorUnits
	}
	if p.Conversions != nil {
		c.Conversions = *p.Conversions
	}
	if p.ClickThroughRatePercent != nil {
		c.ClickThroughRatePercent = *p.ClickThroughRatePercent
	}
	if p.GeofenceConfigs != nil {
		c.GeofenceConfigs = *p.GeofenceConfigs
	}
}

// CampaignSummary is the derived rollup across the current campaign list.
// Always recomputed from the list, never stored.
type CampaignSummary struct {
	Campaigns        int     `json:"campaigns"`
	ActiveCampaigns  int     `json:"active_campaigns"`
	TotalBudget      float64 `json:"total_budget"`
	TotalSpend       float64 `json:"total_spend"`
	TotalConversions int     `json:"total_conversions"`
	MeanCTRPercent   float64 `json:"mean_ctr"`
}

// Summarize computes the rollup for a campaign list.
func Summarize(campaigns []Campaign) CampaignSummary {
	s := CampaignSummary{Campaigns: len(campaigns)}
	for _, c := range campaigns {
		if c.Status == StatusActive {
			s.ActiveCampaigns++
		}
		s.TotalBudget += c.BudgetMajorUnits
		s.TotalSpend += c.SpentMajorUnits
		s.TotalConversions += c.Conversions
		s.MeanCTRPercent += c.ClickThroughRatePercent
	}
	if len(campaigns) > 0 {
		s.MeanCTRPercent /= float64(len(campaigns))
	}
	return s
}

// FormatCreatedDate renders a timestamp as a CreatedDate value.
func FormatCreatedDate(t time.Time) string {
	return t.Format(CreatedDateLayout)
}
