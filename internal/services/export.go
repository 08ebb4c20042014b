package services

import (
	"fmt"
	"net/url"
	"strings"

	"trip-scheduler-service/internal/domain"
)

// GoogleMapsURL builds a Google Maps directions link for the resolved
// waypoints, in travel order. Markers must contain at least start and end.
func GoogleMapsURL(markers []domain.Coordinates) string {
	if len(markers) < 2 {
		return ""
	}

	s := markers[0]
	e := markers[len(markers)-1]
	u := fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%g,%g&destination=%g,%g",
		s.Lat, s.Lon, e.Lat, e.Lon,
	)

	if len(markers) > 2 {
		via := make([]string, 0, len(markers)-2)
		for _, m := range markers[1 : len(markers)-1] {
			via = append(via, fmt.Sprintf("%g,%g", m.Lat, m.Lon))
		}
		u += "&waypoints=" + url.QueryEscape(strings.Join(via, "|"))
	}

	return u
}

// RenderText renders schedule rows as plain text, one block per row,
// suitable for clipboard export. Depends on rows only.
func RenderText(rows []domain.ScheduleRow) string {
	var b strings.Builder
	b.WriteString("TRIP SCHEDULE\n\n")

	for _, row := range rows {
		if row.Arrival != nil {
			b.WriteString(fmt.Sprintf("Arrive %s - %s", row.Label, row.Arrival.Format("15:04")))
			if row.LegKm != "" {
				b.WriteString(fmt.Sprintf(" (%s)", row.LegKm))
			}
			b.WriteString("\n")
		}
		if row.Departure != nil {
			b.WriteString(fmt.Sprintf("Depart %s - %s\n", row.Label, row.Departure.Format("15:04")))
		}
		b.WriteString(fmt.Sprintf("Total distance: %s\n\n", row.CumulativeKm))
	}

	return b.String()
}
