// Package output - Human-readable text report
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"tripcost/core/types"
)

// TextFormatter renders a CLI report
type TextFormatter struct {
	// ShowBreakdown includes the fare breakdown per trip
	ShowBreakdown bool
}

// Format returns the format type
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render writes the report
func (f *TextFormatter) Render(w io.Writer, report *Report) error {
	for i, trip := range report.Trips {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := f.renderTrip(w, report.Currency, trip); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) renderTrip(w io.Writer, currency types.Currency, trip TripEstimate) error {
	p := trip.Params
	fmt.Fprintf(w, "Trip: %s\n", trip.Name)
	fmt.Fprintf(w, "  %s -> %s, %s, %d passenger(s), %s to %s (%d days)\n",
		p.OriginCity, p.DestinationCity, p.Mode, p.Passengers,
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"),
		trip.Budget.Days)

	if transport := trip.Budget.Medium.Transport; transport != nil {
		note := ""
		if transport.DistanceEstimated {
			note = " (generic distance)"
		}
		season := "low season"
		if transport.IsHighSeason {
			season = "high season"
		}
		fmt.Fprintf(w, "  Transport: %.0f km%s, %s, %s %s total (%s %s/person)\n",
			transport.DistanceKm, note, season,
			currency, transport.TotalCost.StringFixed(2),
			currency, transport.CostPerPerson.StringFixed(2))

		if f.ShowBreakdown {
			b := transport.Breakdown
			fmt.Fprintf(w, "    base %s, class x%s, seasonal +%s\n",
				b.BaseCost.StringFixed(2), b.ClassMultiplier.String(), b.SeasonalAdjustment.StringFixed(2))
		}
	}

	fmt.Fprintf(w, "  Accommodation source: %s\n", trip.Budget.AccommodationSource)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  TIER\tDAILY STAY\tDAILY FOOD\tLOCAL\tACTIVITIES\tTOTAL\n")
	for _, tier := range []types.BudgetTier{trip.Budget.Economy, trip.Budget.Medium, trip.Budget.Comfort} {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s %s\n",
			tier.Level,
			tier.DailyAccommodation.StringFixed(2),
			tier.DailyFood.StringFixed(2),
			tier.DailyLocalTransport.StringFixed(2),
			tier.DailyActivities.StringFixed(2),
			currency, tier.TotalEstimate.StringFixed(2))
	}
	return tw.Flush()
}
