package response

import (
	"sort"
	"time"

	"fieldflow/internal/domain/entities"
)

const calendarDayLayout = "2006-01-02"

type CalendarDayResponse struct {
	Date   string              `json:"date"`
	Orders []WorkOrderResponse `json:"orders"`
}

func FromCalendarDay(day time.Time, orders []entities.WorkOrder) CalendarDayResponse {
	return CalendarDayResponse{
		Date:   day.UTC().Format(calendarDayLayout),
		Orders: FromWorkOrderList(orders),
	}
}

// EventDaysResponse lists the distinct days having at least one deadline, for
// calendar-marker rendering. Sorted for stable output; consumers treat it as
// a set.
type EventDaysResponse struct {
	Days []string `json:"days"`
}

func FromEventDays(days []time.Time) EventDaysResponse {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.UTC().Format(calendarDayLayout))
	}
	sort.Strings(out)
	return EventDaysResponse{Days: out}
}
