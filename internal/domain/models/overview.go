package models

import "strconv"

// TopDriver is a driver ranked on the analytics page.
type TopDriver struct {
	Name                string  `bson:"name" json:"name" yaml:"name"`
	TotalDeliveries     int64   `bson:"total_deliveries" json:"total_deliveries" yaml:"total_deliveries"`
	OnTimePercentage    float64 `bson:"on_time_percentage" json:"on_time_percentage" yaml:"on_time_percentage"`
	AverageDeliveryTime float64 `bson:"average_delivery_time" json:"average_delivery_time" yaml:"average_delivery_time"` // minutes
}

// Cells returns Name, Deliveries, On Time %, Avg Delivery Time.
func (t TopDriver) Cells() []string {
	return []string{
		t.Name,
		strconv.FormatInt(t.TotalDeliveries, 10),
		FormatDecimal(t.OnTimePercentage),
		FormatDecimal(t.AverageDeliveryTime),
	}
}

// DeliveryOverview holds the headline delivery metrics shown on the
// dashboard and analytics pages.
type DeliveryOverview struct {
	TotalDeliveries                int64   `bson:"total_deliveries" json:"total_deliveries" yaml:"total_deliveries"`
	InProgressDeliveries           int64   `bson:"in_progress_deliveries" json:"in_progress_deliveries" yaml:"in_progress_deliveries"`
	DeliveredToday                 int64   `bson:"delivered_today" json:"delivered_today" yaml:"delivered_today"`
	OverdueDeliveries              int64   `bson:"overdue_deliveries" json:"overdue_deliveries" yaml:"overdue_deliveries"`
	AverageETAMinutes              float64 `bson:"average_eta_minutes" json:"average_eta_minutes" yaml:"average_eta_minutes"`
	AverageDeliveryDurationMinutes float64 `bson:"average_delivery_duration_minutes" json:"average_delivery_duration_minutes" yaml:"average_delivery_duration_minutes"`

	TopDrivers []TopDriver `bson:"top_drivers" json:"top_drivers" yaml:"top_drivers"`
}

// Metric is a labelled value from the overview, already formatted.
type Metric struct {
	Label string
	Value string
}

// Cells returns Label, Value.
func (m Metric) Cells() []string {
	return []string{m.Label, m.Value}
}

// Metrics returns the overview figures in display order.
func (o DeliveryOverview) Metrics() []Metric {
	return []Metric{
		{Label: "Total Deliveries", Value: strconv.FormatInt(o.TotalDeliveries, 10)},
		{Label: "In Progress", Value: strconv.FormatInt(o.InProgressDeliveries, 10)},
		{Label: "Delivered Today", Value: strconv.FormatInt(o.DeliveredToday, 10)},
		{Label: "Overdue", Value: strconv.FormatInt(o.OverdueDeliveries, 10)},
		{Label: "Average ETA (min)", Value: FormatDecimal(o.AverageETAMinutes)},
		{Label: "Average Delivery Duration (min)", Value: FormatDecimal(o.AverageDeliveryDurationMinutes)},
	}
}

// FormatDecimal renders v with one digit after the decimal point.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
