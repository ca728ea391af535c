package usecase

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"adsniper/internal/domain"
)

func testClock() fixedClock {
	return fixedClock{now: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)}
}

func newTestService(slot domain.SlotStore) *CampaignService {
	return NewCampaignService(slot, testClock(), newFakeIDSource(), testLogger(), testMetrics)
}

func validInput() domain.CreateCampaignInput {
	return domain.CreateCampaignInput{
		Name:             "Foo",
		BudgetMajorUnits: 50,
		Geofences: []domain.GeofenceDraft{
			{
				ID:   "g1",
				Name: "Geofence 1",
				Boundary: domain.GeometryFromVertices([]domain.Point{
					{Lat: 37.78, Lng: -122.41},
					{Lat: 37.79, Lng: -122.40},
					{Lat: 37.77, Lng: -122.40},
				}),
			},
		},
	}
}

func TestServiceSeedsOnEmptySlot(t *testing.T) {
	svc := newTestService(&fakeSlot{})

	campaigns := svc.List()
	if len(campaigns) != 3 {
		t.Fatalf("expected 3 seed campaigns, got %d", len(campaigns))
	}

	names := map[string]bool{}
	for _, c := range campaigns {
		names[c.Name] = true
	}
	for _, want := range []string{"Downtown Coffee Shop", "Tech Conference Promo", "Retail Store Launch"} {
		if !names[want] {
			t.Errorf("expected seed campaign %q", want)
		}
	}
}

func TestServiceSeedsOnCorruptSlot(t *testing.T) {
	svc := newTestService(&fakeSlot{value: "{not json]", set: true})

	if got := len(svc.List()); got != 3 {
		t.Fatalf("expected seed fallback of 3 campaigns on corrupt slot, got %d", got)
	}
}

func TestServiceSeedsOnReadError(t *testing.T) {
	svc := newTestService(&fakeSlot{getErr: errSlotFull})

	if got := len(svc.List()); got != 3 {
		t.Fatalf("expected seed fallback of 3 campaigns on read error, got %d", got)
	}
}

func TestServiceRehydratesFromSlot(t *testing.T) {
	stored := []domain.Campaign{{
		ID:          "1706000000000",
		Name:        "Stored Campaign",
		Status:      domain.StatusActive,
		CreatedDate: "2024-01-23",
	}}
	payload, err := json.Marshal(stored)
	if err != nil {
		t.Fatal(err)
	}

	svc := newTestService(&fakeSlot{value: string(payload), set: true})

	campaigns := svc.List()
	if len(campaigns) != 1 || campaigns[0].Name != "Stored Campaign" {
		t.Fatalf("expected the stored campaign back, got %v", campaigns)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateCampaignInput
	}{
		{"empty name", domain.CreateCampaignInput{Name: "", BudgetMajorUnits: 100, Geofences: validInput().Geofences}},
		{"zero budget", domain.CreateCampaignInput{Name: "Foo", BudgetMajorUnits: 0, Geofences: validInput().Geofences}},
		{"no geofences", domain.CreateCampaignInput{Name: "Foo", BudgetMajorUnits: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := &fakeSlot{}
			svc := newTestService(slot)
			before := svc.List()
			setCalls := slot.setCall

			_, _, err := svc.Create(tt.input)
			if !domain.IsValidationError(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !reflect.DeepEqual(svc.List(), before) {
				t.Fatal("expected list unchanged after rejected create")
			}
			if slot.setCall != setCalls {
				t.Fatal("expected no persistence on rejected create")
			}
		})
	}
}

func TestServiceCreate(t *testing.T) {
	slot := &fakeSlot{}
	svc := newTestService(slot)

	created, persisted, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !persisted {
		t.Fatal("expected durable write to succeed")
	}

	if created.Status != domain.StatusPending {
		t.Errorf("expected status PENDING, got %s", created.Status)
	}
	if created.SpentMajorUnits != 0 || created.Conversions != 0 || created.ClickThroughRatePercent != 0 {
		t.Errorf("expected zeroed metrics, got %+v", created)
	}
	if created.CreatedDate != "2024-02-01" {
		t.Errorf("expected created date 2024-02-01, got %s", created.CreatedDate)
	}
	if created.ID == "" {
		t.Error("expected an assigned id")
	}
	if len(created.GeofenceConfigs) != 1 {
		t.Fatalf("expected one geofence config, got %d", len(created.GeofenceConfigs))
	}
	cfg := created.GeofenceConfigs[0]
	if cfg.PriorityWeight != 0 || cfg.BudgetCapMinorUnits != 0 || cfg.ClickQuorum != 0 {
		t.Errorf("expected defaulted per-zone settings, got %+v", cfg)
	}

	// newest-first: the fresh campaign leads the list
	list := svc.List()
	if len(list) != 4 {
		t.Fatalf("expected 4 campaigns, got %d", len(list))
	}
	if list[0].ID != created.ID {
		t.Fatalf("expected new campaign first, got %s", list[0].ID)
	}
}

func TestServiceCreateTrimsName(t *testing.T) {
	svc := newTestService(&fakeSlot{})

	input := validInput()
	input.Name = "  Foo  "
	created, _, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Foo" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestServiceCreatePersistenceSurvival(t *testing.T) {
	slot := &fakeSlot{}
	svc := newTestService(slot)

	created, _, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A fresh service instance on the same slot sees the record.
	reloaded := newTestService(slot)
	got, err := reloaded.GetByID(created.ID)
	if err != nil {
		t.Fatalf("expected created campaign after reload: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("expected identical field values after reload:\n got %+v\nwant %+v", got, created)
	}
	if !reflect.DeepEqual(reloaded.List(), svc.List()) {
		t.Fatal("expected identical list order after reload")
	}
}

func TestServiceCreateDegradesOnWriteFailure(t *testing.T) {
	slot := &fakeSlot{setErr: errSlotFull}
	svc := newTestService(slot)

	created, persisted, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if persisted {
		t.Fatal("expected persisted=false on write failure")
	}

	// The session continues with in-memory state.
	if _, err := svc.GetByID(created.ID); err != nil {
		t.Fatalf("expected campaign available in memory: %v", err)
	}
}

func TestServiceUpdate(t *testing.T) {
	slot := &fakeSlot{}
	svc := newTestService(slot)
	created, _, _ := svc.Create(validInput())

	status := domain.StatusActive
	spent := 12.34
	updated, found, persisted := svc.Update(created.ID, domain.CampaignPatch{
		Status:          &status,
		SpentMajorUnits: &spent,
	})

	if !found || !persisted {
		t.Fatalf("expected found and persisted, got %v/%v", found, persisted)
	}
	if updated.Status != domain.StatusActive || updated.SpentMajorUnits != 12.34 {
		t.Fatalf("expected patch applied, got %+v", updated)
	}
	if updated.Name != created.Name || updated.BudgetMajorUnits != created.BudgetMajorUnits {
		t.Fatalf("expected untouched fields preserved, got %+v", updated)
	}
}

func TestServiceUpdateUnknownIDIsNoop(t *testing.T) {
	slot := &fakeSlot{}
	svc := newTestService(slot)
	before := svc.List()
	setCalls := slot.setCall

	status := domain.StatusActive
	_, found, _ := svc.Update("no-such-id", domain.CampaignPatch{Status: &status})

	if found {
		t.Fatal("expected found=false for unknown id")
	}
	if !reflect.DeepEqual(svc.List(), before) {
		t.Fatal("expected list unchanged")
	}
	if slot.setCall != setCalls {
		t.Fatal("expected no persistence for a no-op update")
	}
}

func TestServiceDeleteIdempotent(t *testing.T) {
	slot := &fakeSlot{}
	svc := newTestService(slot)
	created, _, _ := svc.Create(validInput())

	removed, _ := svc.Delete(created.ID)
	if !removed {
		t.Fatal("expected delete to remove the campaign")
	}

	before, err := json.Marshal(svc.List())
	if err != nil {
		t.Fatal(err)
	}
	setCalls := slot.setCall

	removed, _ = svc.Delete(created.ID)
	if removed {
		t.Fatal("expected second delete to be a no-op")
	}
	after, err := json.Marshal(svc.List())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatal("expected list byte-for-byte unchanged after idempotent delete")
	}
	if slot.setCall != setCalls {
		t.Fatal("expected no persistence for a no-op delete")
	}
}

func TestServiceGetByID(t *testing.T) {
	svc := newTestService(&fakeSlot{})

	if _, err := svc.GetByID("1"); err != nil {
		t.Fatalf("expected seed campaign 1: %v", err)
	}
	if _, err := svc.GetByID("missing"); err != domain.ErrCampaignNotFound {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestServiceListNewestFirst(t *testing.T) {
	svc := newTestService(&fakeSlot{})

	list := svc.List()
	for i := 1; i < len(list); i++ {
		if list[i].CreatedDate > list[i-1].CreatedDate {
			t.Fatalf("expected newest-first order, got %s before %s",
				list[i-1].CreatedDate, list[i].CreatedDate)
		}
	}
}

func TestServiceSummaryOverSeed(t *testing.T) {
	svc := newTestService(&fakeSlot{})

	s := svc.Summary()
	if s.Campaigns != 3 || s.ActiveCampaigns != 1 {
		t.Errorf("expected 3 campaigns / 1 active, got %d/%d", s.Campaigns, s.ActiveCampaigns)
	}
	if s.TotalSpend != 6200 {
		t.Errorf("expected total spend 6200, got %v", s.TotalSpend)
	}
	if s.TotalConversions != 123 {
		t.Errorf("expected 123 conversions, got %d", s.TotalConversions)
	}
}

func TestServiceListReturnsCopy(t *testing.T) {
	svc := newTestService(&fakeSlot{})

	list := svc.List()
	list[0].Name = "mutated"

	if svc.List()[0].Name == "mutated" {
		t.Fatal("expected List() to return a defensive copy")
	}
}
