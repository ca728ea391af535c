package usecase

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"

	"adsniper/internal/domain"
	"adsniper/pkg/logger"
	"adsniper/pkg/metrics"
)

// CampaignService owns the canonical campaign list. Every mutation runs
// in-memory first, then synchronously serializes the whole list to the
// durable slot. A failed write degrades to in-memory-only operation; the
// mutation still succeeds and the caller is told via the persisted flag.
type CampaignService struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
	slot      domain.SlotStore
	clock     domain.Clock
	ids       domain.IDSource
	logger    *logger.Logger
	metrics   *metrics.Metrics
}

// creates a new campaign service, rehydrating from the durable slot. An
// absent slot or unparseable content falls back to the seed dataset; startup
// never fails on bad stored data.
func NewCampaignService(
	slot domain.SlotStore,
	clock domain.Clock,
	ids domain.IDSource,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *CampaignService {
	s := &CampaignService{
		slot:    slot,
		clock:   clock,
		ids:     ids,
		logger:  logger,
		metrics: metrics,
	}
	s.load()
	return s
}

func (s *CampaignService) load() {
	value, found, err := s.slot.Get()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read campaign slot, using seed dataset")
		s.metrics.RecordPersistenceFailure("read")
		s.seed()
		return
	}
	if !found {
		s.logger.Info("Campaign slot empty, using seed dataset")
		s.seed()
		return
	}

	var campaigns []domain.Campaign
	if err := json.Unmarshal([]byte(value), &campaigns); err != nil {
		s.logger.WithError(err).Warn("Corrupt campaign slot, using seed dataset")
		s.metrics.RecordPersistenceFailure("read")
		s.seed()
		return
	}

	s.campaigns = campaigns
	s.sortLocked()
	s.metrics.SetCampaignCount(len(s.campaigns))
	s.logger.WithField("count", len(s.campaigns)).Info("Rehydrated campaigns from slot")
}

func (s *CampaignService) seed() {
	s.campaigns = SeedCampaigns()
	s.sortLocked()
	s.metrics.RecordSeedFallback()
	s.metrics.SetCampaignCount(len(s.campaigns))
}

// Create validates the input, builds the canonical record, prepends it to
// the list and persists. The returned flag reports whether the durable
// write succeeded; on false the record exists in memory only and the caller
// should surface a non-blocking warning.
func (s *CampaignService) Create(input domain.CreateCampaignInput) (domain.Campaign, bool, error) {
	if err := input.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			s.metrics.RecordValidationFailure(ve.Field)
		}
		s.metrics.RecordCampaignOp("create", "rejected")
		s.logger.WithError(err).Info("Rejected campaign creation")
		return domain.Campaign{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	configs := make([]domain.GeofenceConfig, len(input.Geofences))
	for i, draft := range input.Geofences {
		configs[i] = domain.NewGeofenceConfig(draft)
	}

	campaign := domain.Campaign{
		ID:               s.ids.NextID(),
		Name:             strings.TrimSpace(input.Name),
		Status:           domain.StatusPending,
		BudgetMajorUnits: input.BudgetMajorUnits,
		GeofenceConfigs:  configs,
		CreatedDate:      domain.FormatCreatedDate(s.clock.Now()),
	}

	s.campaigns = append([]domain.Campaign{campaign}, s.campaigns...)
	s.sortLocked()
	persisted := s.persistLocked()

	s.metrics.RecordCampaignOp("create", "ok")
	s.metrics.SetCampaignCount(len(s.campaigns))
	s.logger.WithFields(map[string]any{
		"campaign_id": campaign.ID,
		"name":        campaign.Name,
		"geofences":   len(configs),
		"persisted":   persisted,
	}).Info("Created campaign")

	return campaign, persisted, nil
}

// Update shallow-merges the set patch fields onto the matching record. An
// unknown id is a silent no-op reported by found=false, not an error.
func (s *CampaignService) Update(id string, patch domain.CampaignPatch) (domain.Campaign, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.campaigns {
		if s.campaigns[i].ID != id {
			continue
		}
		patch.Apply(&s.campaigns[i])
		s.sortLocked()
		persisted := s.persistLocked()

		updated, _ := s.findLocked(id)
		s.metrics.RecordCampaignOp("update", "ok")
		s.logger.WithFields(map[string]any{
			"campaign_id": id,
			"persisted":   persisted,
		}).Info("Updated campaign")
		return updated, true, persisted
	}

	s.metrics.RecordCampaignOp("update", "noop")
	return domain.Campaign{}, false, true
}

// Delete removes the matching record. Unknown ids are a no-op; deletion is
// idempotent. The second flag reports durable-write success.
func (s *CampaignService) Delete(id string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.campaigns {
		if s.campaigns[i].ID != id {
			continue
		}
		s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
		persisted := s.persistLocked()

		s.metrics.RecordCampaignOp("delete", "ok")
		s.metrics.SetCampaignCount(len(s.campaigns))
		s.logger.WithFields(map[string]any{
			"campaign_id": id,
			"persisted":   persisted,
		}).Info("Deleted campaign")
		return true, persisted
	}

	s.metrics.RecordCampaignOp("delete", "noop")
	return false, true
}

// GetByID returns the matching record or domain.ErrCampaignNotFound.
func (s *CampaignService) GetByID(id string) (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.findLocked(id); ok {
		return c, nil
	}
	return domain.Campaign{}, domain.ErrCampaignNotFound
}

// List returns the full canonical list, newest-first.
func (s *CampaignService) List() []domain.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Campaign(nil), s.campaigns...)
}

// Summary recomputes the derived rollup metrics from the current list on
// every call. The list is small and mutation infrequent, so nothing is
// cached.
func (s *CampaignService) Summary() domain.CampaignSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Summarize(s.campaigns)
}

func (s *CampaignService) findLocked(id string) (domain.Campaign, bool) {
	for _, c := range s.campaigns {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Campaign{}, false
}

// sortLocked makes newest-first ordering explicit: created date descending,
// then the time-derived id, so persistence round-trips preserve order.
func (s *CampaignService) sortLocked() {
	sort.SliceStable(s.campaigns, func(i, j int) bool {
		return domain.SortKey(s.campaigns[i], s.campaigns[j])
	})
}

// persistLocked serializes the whole list to the slot. Must hold s.mu.
func (s *CampaignService) persistLocked() bool {
	payload, err := json.Marshal(s.campaigns)
	if err != nil {
		s.logger.WithError(err).Error("Failed to serialize campaigns")
		s.metrics.RecordPersistenceFailure("write")
		return false
	}
	if err := s.slot.Set(string(payload)); err != nil {
		s.logger.WithError(err).Warn("Failed to persist campaigns, continuing in memory")
		s.metrics.RecordPersistenceFailure("write")
		return false
	}
	return true
}
