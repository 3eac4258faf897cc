package domain

// Period is the half of a day a cycle falls in
type Period string

const (
	PeriodDay   Period = "day"
	PeriodNight Period = "night"
)

// CyclesPerDay converts between days and cycles (one day = day period + night period)
const CyclesPerDay = 2

// GameCycle tracks simulated time. One tick flips the period; two ticks make a day.
type GameCycle struct {
	Day         int    `json:"day"`
	Period      Period `json:"period"`
	TotalCycles int    `json:"totalCycles"`
}

// Tick returns the cycle advanced by one period. Day increments on the
// night-to-day transition only.
func (c GameCycle) Tick() GameCycle {
	next := GameCycle{TotalCycles: c.TotalCycles + 1}
	if c.Period == PeriodDay {
		next.Period = PeriodNight
		next.Day = c.Day
	} else {
		next.Period = PeriodDay
		next.Day = c.Day + 1
	}
	return next
}
