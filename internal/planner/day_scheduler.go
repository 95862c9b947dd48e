package planner

import "time"

// ScheduleOptions holds the daily time window and break lengths.
type ScheduleOptions struct {
	DayStartHour         int
	DayEndHour           int
	LunchHour            int
	LunchMinutes         int
	TransitBufferMinutes int
}

func DefaultScheduleOptions() ScheduleOptions {
	return ScheduleOptions{
		DayStartHour:         9,
		DayEndHour:           18,
		LunchHour:            13,
		LunchMinutes:         60,
		TransitBufferMinutes: 20,
	}
}

// Decision is the verdict on the candidate under the cursor.
type Decision int

const (
	// Schedule books the candidate and advances the cursor.
	Schedule Decision = iota
	// SkipPermanently discards the candidate for the rest of the trip.
	SkipPermanently
	// DeferToNextDay ends the day; the candidate is offered again tomorrow.
	DeferToNextDay
	// StopDay ends the day because the daily window is used up.
	StopDay
)

func (d Decision) String() string {
	switch d {
	case Schedule:
		return "schedule"
	case SkipPermanently:
		return "skip"
	case DeferToNextDay:
		return "defer"
	case StopDay:
		return "stop"
	default:
		return "unknown"
	}
}

// Cursor tracks progress through the ordered candidate sequence across days,
// together with every place already booked (lunch stops included).
type Cursor struct {
	next int
	used map[string]struct{}
}

func NewCursor() Cursor {
	return Cursor{used: map[string]struct{}{}}
}

// Position is the number of candidates consumed so far.
func (c Cursor) Position() int { return c.next }

// Booked reports whether the place has been put in a slot already.
func (c Cursor) Booked(placeID string) bool {
	_, ok := c.used[placeID]
	return ok
}

func (c Cursor) clone() Cursor {
	used := make(map[string]struct{}, len(c.used))
	for id := range c.used {
		used[id] = struct{}{}
	}
	return Cursor{next: c.next, used: used}
}

func (c *Cursor) book(placeID string) { c.used[placeID] = struct{}{} }

func (c *Cursor) advance() { c.next++ }

type DayInput struct {
	Day    int
	Date   time.Time
	Places []Place // ordered visiting sequence, shared by all days
	Dining []Place // lunch options
}

// ScheduleDay fills one day starting at the cursor and returns the day with
// the cursor moved past everything consumed. The input cursor is not modified.
func ScheduleDay(in DayInput, cur Cursor, opts ScheduleOptions) (DayItinerary, Cursor) {
	s := newDayState(in, cur, opts)

	for s.cursor.next < len(in.Places) {
		candidate := in.Places[s.cursor.next]

		if s.windowOpen() && s.lunchDue(candidate) && s.takeLunch(candidate) {
			continue
		}

		decision, slot := s.evaluate(candidate)
		switch decision {
		case Schedule:
			s.book(slot)
			s.cursor.advance()
		case SkipPermanently:
			s.cursor.advance()
		default:
			return s.finish(), s.cursor
		}
	}

	return s.finish(), s.cursor
}

type dayState struct {
	opts    ScheduleOptions
	in      DayInput
	now     time.Time
	end     time.Time
	slots   []TimeSlot
	cost    float64
	lunched bool
	cursor  Cursor
}

func newDayState(in DayInput, cur Cursor, opts ScheduleOptions) *dayState {
	y, m, d := in.Date.Date()
	loc := in.Date.Location()
	if cur.used == nil {
		cur.used = map[string]struct{}{}
	}
	return &dayState{
		opts:   opts,
		in:     in,
		now:    time.Date(y, m, d, opts.DayStartHour, 0, 0, 0, loc),
		end:    time.Date(y, m, d, opts.DayEndHour, 0, 0, 0, loc),
		slots:  []TimeSlot{},
		cursor: cur.clone(),
	}
}

func (s *dayState) windowOpen() bool { return s.now.Before(s.end) }

func (s *dayState) lunchDue(candidate Place) bool {
	return !s.lunched &&
		s.now.Hour() >= s.opts.LunchHour &&
		candidate.Category != CategoryDining
}

// takeLunch books the nearest unused dining option that is open now, looking
// from the last stop or from the candidate when nothing is booked yet today.
func (s *dayState) takeLunch(candidate Place) bool {
	anchor := candidate
	if last, ok := s.lastPlace(); ok {
		anchor = last
	}
	hour := s.now.Hour()
	spot, ok := NearestDining(s.in.Dining, anchor, func(p Place) bool {
		return !s.cursor.Booked(p.ID) && IsOpen(p, s.in.Date, hour)
	})
	if !ok {
		return false
	}

	end := s.now.Add(minutes(s.opts.LunchMinutes))
	s.book(TimeSlot{
		Place:     spot,
		StartTime: s.now,
		EndTime:   end,
		Type:      SlotDining,
	})
	s.lunched = true
	return true
}

func (s *dayState) evaluate(p Place) (Decision, TimeSlot) {
	if !s.windowOpen() {
		return StopDay, TimeSlot{}
	}
	if s.cursor.Booked(p.ID) {
		return SkipPermanently, TimeSlot{}
	}
	if !IsOpen(p, s.in.Date, s.now.Hour()) {
		return SkipPermanently, TimeSlot{}
	}

	start := s.now
	travel := 0
	if prev, ok := s.lastPlace(); ok {
		travel = TravelMinutes(distanceBetween(prev, p)) + s.opts.TransitBufferMinutes
		start = start.Add(minutes(travel))
		if !start.Before(s.end) {
			return DeferToNextDay, TimeSlot{}
		}
	}

	end := start.Add(minutes(p.SuggestedDuration))
	if !end.Before(s.end) {
		return DeferToNextDay, TimeSlot{}
	}

	// the transit may carry the arrival past closing time
	if !IsOpen(p, s.in.Date, start.Hour()) {
		return SkipPermanently, TimeSlot{}
	}

	slot := TimeSlot{
		Place:     p,
		StartTime: start,
		EndTime:   end,
		Type:      slotTypeFor(p),
	}
	if travel > 0 {
		slot.TravelTime = &travel
	}
	return Schedule, slot
}

func (s *dayState) book(slot TimeSlot) {
	s.slots = append(s.slots, slot)
	s.cost += slot.Place.AvgPrice
	s.now = slot.EndTime
	s.cursor.book(slot.Place.ID)
}

func (s *dayState) lastPlace() (Place, bool) {
	if len(s.slots) == 0 {
		return Place{}, false
	}
	return s.slots[len(s.slots)-1].Place, true
}

func (s *dayState) finish() DayItinerary {
	y, m, d := s.in.Date.Date()
	return DayItinerary{
		Day:       s.in.Day,
		Date:      time.Date(y, m, d, 0, 0, 0, 0, s.in.Date.Location()),
		Slots:     s.slots,
		TotalCost: s.cost,
	}
}

func slotTypeFor(p Place) SlotType {
	if p.Category == CategoryDining {
		return SlotDining
	}
	return SlotAttraction
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
