// internal/app/features/dashboard/cards.go
package dashboard

import (
	"fmt"

	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/app/system/navigation"
	"github.com/dalemusser/driverdash/internal/app/system/ui"
	"github.com/dalemusser/driverdash/internal/domain/models"
)

// card is one summary panel on the admin dashboard.
type card struct {
	Title    string
	Headline string
	Detail   string
	Href     string
	LinkText string
}

// buildCards derives the six dashboard panels from a data snapshot. The
// order is fixed: partner summary, driver summary, delivery analytics,
// partner analytics, driver analytics, low inventory alerts.
func buildCards(ds summarystore.Dataset) []card {
	return []card{
		partnerSummaryCard(ds.Partners),
		driverSummaryCard(ds.Drivers),
		deliveryAnalyticsCard(ds.Overview),
		partnerAnalyticsCard(ds.Partners),
		driverAnalyticsCard(ds.Overview),
		lowInventoryCard(ds.Alerts),
	}
}

func partnerSummaryCard(partners []models.PartnerSummary) card {
	c := card{
		Title:    "Partner Summary",
		Headline: ui.CountLabel(len(partners), "partner", "partners"),
		Detail:   "No partners yet.",
		Href:     navigation.PartnersPath,
		LinkText: "View all partners",
	}
	if len(partners) > 0 {
		top := partners[0]
		for _, p := range partners[1:] {
			if p.Orders > top.Orders {
				top = p
			}
		}
		c.Detail = fmt.Sprintf("Top partner: %s (%s)", top.Name, ui.CountLabel(top.Orders, "order", "orders"))
	}
	return c
}

func driverSummaryCard(drivers []models.DriverSummary) card {
	c := card{
		Title:    "Driver Summary",
		Headline: ui.CountLabel(len(drivers), "driver", "drivers"),
		Detail:   "No drivers yet.",
		Href:     navigation.DriversPath,
		LinkText: "View all drivers",
	}
	if len(drivers) > 0 {
		top := drivers[0]
		for _, d := range drivers[1:] {
			if d.Deliveries > top.Deliveries {
				top = d
			}
		}
		c.Detail = fmt.Sprintf("Most deliveries: %s (%d)", top.Name, top.Deliveries)
	}
	return c
}

func deliveryAnalyticsCard(o models.DeliveryOverview) card {
	return card{
		Title:    "Delivery Analytics",
		Headline: ui.CountLabel(int(o.TotalDeliveries), "delivery", "deliveries"),
		Detail: fmt.Sprintf("%d in progress, %d delivered today, %d overdue",
			o.InProgressDeliveries, o.DeliveredToday, o.OverdueDeliveries),
		Href:     navigation.AnalyticsPath,
		LinkText: "View analytics",
	}
}

func partnerAnalyticsCard(partners []models.PartnerSummary) card {
	total := 0
	for _, p := range partners {
		total += p.Orders
	}
	c := card{
		Title:    "Partner Analytics",
		Headline: ui.CountLabel(total, "order", "orders"),
		Detail:   "No partner orders yet.",
		Href:     navigation.PartnersPath,
		LinkText: "View partners",
	}
	if len(partners) > 0 {
		avg := float64(total) / float64(len(partners))
		c.Detail = "Average per partner: " + models.FormatDecimal(avg)
	}
	return c
}

func driverAnalyticsCard(o models.DeliveryOverview) card {
	c := card{
		Title:    "Driver Analytics",
		Headline: "Average delivery time: " + models.FormatDecimal(o.AverageDeliveryDurationMinutes) + " min",
		Detail:   "No top drivers yet.",
		Href:     navigation.AnalyticsPath,
		LinkText: "View top drivers",
	}
	if len(o.TopDrivers) > 0 {
		top := o.TopDrivers[0]
		c.Detail = fmt.Sprintf("Top driver: %s, %s%% on time", top.Name, models.FormatDecimal(top.OnTimePercentage))
	}
	return c
}

func lowInventoryCard(alerts []models.LowInventoryAlert) card {
	c := card{
		Title:    "Low Inventory Alerts",
		Headline: ui.CountLabel(len(alerts), "alert", "alerts"),
		Detail:   "All partners are stocked.",
		Href:     navigation.AlertsPath,
		LinkText: "View alerts",
	}
	if len(alerts) > 0 {
		low := alerts[0]
		for _, a := range alerts[1:] {
			if a.Stock < low.Stock {
				low = a
			}
		}
		c.Detail = fmt.Sprintf("Lowest: %s at %s (%d left)", low.Item, low.Partner, low.Stock)
	}
	return c
}
