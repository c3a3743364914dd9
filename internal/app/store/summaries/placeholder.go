package summarystore

import "github.com/dalemusser/driverdash/internal/domain/models"

// PlaceholderDataset returns the sample records the dashboard ships with.
// It is used when no database is configured and to seed an empty one.
func PlaceholderDataset() Dataset {
	return Dataset{
		Drivers: []models.DriverSummary{
			{Name: "Driver A", Deliveries: 52},
			{Name: "Driver B", Deliveries: 47},
			{Name: "Driver C", Deliveries: 39},
			{Name: "Driver D", Deliveries: 33},
			{Name: "Driver E", Deliveries: 28},
			{Name: "Driver F", Deliveries: 22},
		},
		Partners: []models.PartnerSummary{
			{Name: "Partner X", Orders: 130},
			{Name: "Partner Y", Orders: 120},
			{Name: "Partner Z", Orders: 112},
			{Name: "Clinic A", Orders: 105},
			{Name: "Pharmacy B", Orders: 95},
			{Name: "Pharmacy C", Orders: 89},
		},
		Alerts: []models.LowInventoryAlert{
			{Partner: "Pharmacy 1", Item: "Insulin", Stock: 3},
			{Partner: "Clinic A", Item: "Antibiotics", Stock: 5},
			{Partner: "Partner X", Item: "Vitamins", Stock: 2},
			{Partner: "Pharmacy 2", Item: "Painkillers", Stock: 4},
		},
		Overview: models.DeliveryOverview{
			TotalDeliveries:                122,
			InProgressDeliveries:           14,
			DeliveredToday:                 27,
			OverdueDeliveries:              5,
			AverageETAMinutes:              35.7,
			AverageDeliveryDurationMinutes: 32.4,
			TopDrivers: []models.TopDriver{
				{Name: "Amanuel Berhane", TotalDeliveries: 42, OnTimePercentage: 90.5, AverageDeliveryTime: 28.3},
				{Name: "Sofia Tesfaye", TotalDeliveries: 35, OnTimePercentage: 94.2, AverageDeliveryTime: 26.1},
				{Name: "Henok Dawit", TotalDeliveries: 28, OnTimePercentage: 89.7, AverageDeliveryTime: 31.6},
			},
		},
	}
}

// NewPlaceholder returns a Static provider over PlaceholderDataset.
func NewPlaceholder() *Static {
	return NewStatic(PlaceholderDataset())
}
