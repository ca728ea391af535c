package usecase

import "adsniper/internal/domain"

// SeedCampaigns returns the fixed fallback dataset the store degrades to
// when the durable slot is absent or unreadable: three sample campaigns
// with representative San Francisco geofences.
func SeedCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			ID:                      "1",
			Name:                    "Downtown Coffee Shop",
			Status:                  domain.StatusActive,
			BudgetMajorUnits:        5000,
			SpentMajorUnits:         3200,
			Conversions:             45,
			ClickThroughRatePercent: 3.2,
			CreatedDate:             "2024-01-15",
			GeofenceConfigs: []domain.GeofenceConfig{
				{
					ID:                  "1",
					Name:                "Downtown District",
					PriorityWeight:      10,
					BudgetCapMinorUnits: 200000,
					Boundary: domain.GeometryFromVertices([]domain.Point{
						{Lat: 37.7849, Lng: -122.4194},
						{Lat: 37.7849, Lng: -122.4094},
						{Lat: 37.7749, Lng: -122.4094},
						{Lat: 37.7749, Lng: -122.4194},
					}),
				},
			},
		},
		{
			ID:               "2",
			Name:             "Tech Conference Promo",
			Status:           domain.StatusPending,
			BudgetMajorUnits: 8000,
			CreatedDate:      "2024-01-20",
			GeofenceConfigs: []domain.GeofenceConfig{
				{
					ID:                  "2",
					Name:                "Tech Hub Area",
					PriorityWeight:      8,
					BudgetCapMinorUnits: 300000,
					Boundary: domain.GeometryFromVertices([]domain.Point{
						{Lat: 37.7949, Lng: -122.4294},
						{Lat: 37.7949, Lng: -122.4194},
						{Lat: 37.7849, Lng: -122.4194},
						{Lat: 37.7849, Lng: -122.4294},
					}),
				},
			},
		},
		{
			ID:                      "3",
			Name:                    "Retail Store Launch",
			Status:                  domain.StatusDone,
			BudgetMajorUnits:        3000,
			SpentMajorUnits:         3000,
			Conversions:             78,
			ClickThroughRatePercent: 4.1,
			CreatedDate:             "2024-01-10",
			GeofenceConfigs: []domain.GeofenceConfig{
				{
					ID:                  "3",
					Name:                "Shopping Mall",
					PriorityWeight:      5,
					BudgetCapMinorUnits: 150000,
					Boundary: domain.GeometryFromVertices([]domain.Point{
						{Lat: 37.7649, Lng: -122.4194},
						{Lat: 37.7649, Lng: -122.4094},
						{Lat: 37.7549, Lng: -122.4094},
						{Lat: 37.7549, Lng: -122.4194},
					}),
				},
			},
		},
	}
}
