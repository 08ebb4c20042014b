package services

import (
	"fmt"

	"trip-scheduler-service/internal/domain"
)

func formatKm(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

// PresentSchedule reduces the raw event timeline to one row per physical
// location: start (departure only), each stop (arrival + departure), end
// (arrival only). Stop arrive/depart pairs are correlated by the events'
// explicit stop index, not by slice position, so the reduction holds even
// when a consumer has filtered or reordered the serialized events.
func PresentSchedule(it *domain.Itinerary, events []domain.ScheduleEvent) []domain.ScheduleRow {
	type stopPair struct {
		arrive *domain.ScheduleEvent
		depart *domain.ScheduleEvent
	}

	var startDepart, endArrive *domain.ScheduleEvent
	pairs := make(map[int]*stopPair, len(it.Stops))

	for i := range events {
		ev := &events[i]
		switch ev.Location {
		case domain.LocationStart:
			if ev.Kind == domain.EventDepart {
				startDepart = ev
			}
		case domain.LocationEnd:
			if ev.Kind == domain.EventArrive {
				endArrive = ev
			}
		case domain.LocationStop:
			p := pairs[ev.StopIndex]
			if p == nil {
				p = &stopPair{}
				pairs[ev.StopIndex] = p
			}
			if ev.Kind == domain.EventArrive {
				p.arrive = ev
			} else {
				p.depart = ev
			}
		}
	}

	rows := make([]domain.ScheduleRow, 0, len(it.Stops)+2)

	if startDepart != nil {
		t := startDepart.Time
		rows = append(rows, domain.ScheduleRow{
			Location:     domain.LocationStart,
			StopIndex:    -1,
			Label:        fmt.Sprintf("Start (%s)", it.Start.Address),
			Departure:    &t,
			CumulativeKm: "0 km",
		})
	}

	for i := range it.Stops {
		p := pairs[i]
		if p == nil || p.arrive == nil {
			continue
		}

		row := domain.ScheduleRow{
			Location:     domain.LocationStop,
			StopIndex:    i,
			Label:        fmt.Sprintf("Stop %d (%s)", i+1, it.Stops[i].Address),
			CumulativeKm: formatKm(p.arrive.CumulativeDistanceMeters),
			Fixed:        p.arrive.Fixed,
		}

		at := p.arrive.Time
		row.Arrival = &at
		if p.arrive.LegDistanceMeters != nil {
			row.LegKm = formatKm(*p.arrive.LegDistanceMeters)
		}
		if p.depart != nil {
			dt := p.depart.Time
			row.Departure = &dt
		}

		rows = append(rows, row)
	}

	if endArrive != nil {
		t := endArrive.Time
		row := domain.ScheduleRow{
			Location:     domain.LocationEnd,
			StopIndex:    -1,
			Label:        fmt.Sprintf("End (%s)", it.End.Address),
			Arrival:      &t,
			CumulativeKm: formatKm(endArrive.CumulativeDistanceMeters),
		}
		if endArrive.LegDistanceMeters != nil {
			row.LegKm = formatKm(*endArrive.LegDistanceMeters)
		}
		rows = append(rows, row)
	}

	return rows
}
