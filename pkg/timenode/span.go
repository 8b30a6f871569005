package timenode

import (
	"fmt"
	"time"
)

// Span is a closed time interval from start to end.
type Span struct {
	start time.Time
	end   time.Time
}

func SpanFrom(start, end time.Time) Span {
	return Span{
		start: start,
		end:   end,
	}
}

// Start returns the lower bound of s.
func (s Span) Start() time.Time { return s.start }

// End returns the upper bound of s.
func (s Span) End() time.Time { return s.end }

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.start.Format(time.RFC3339Nano), s.end.Format(time.RFC3339Nano))
}

func (s Span) IsValid() bool {
	return !s.end.Before(s.start)
}

func (s Span) IsZero() bool {
	return s.start.IsZero() && s.end.IsZero()
}

// Compare orders spans by start, then by end. Only the instants are
// compared, location and monotonic readings are ignored.
func (s Span) Compare(other Span) int {
	if cmp := s.start.Compare(other.start); cmp != 0 {
		return cmp
	}
	return s.end.Compare(other.end)
}

func (s Span) Less(other Span) bool { return s.Compare(other) < 0 }

func (s Span) Equal(other Span) bool { return s.Compare(other) == 0 }

// EntirelyBefore returns whether s ends at or before the start of other.
//
//	  s       other
//	f----t  f------t
func (s Span) EntirelyBefore(other Span) bool {
	return !other.start.Before(s.end)
}

// Touches returns whether other starts exactly where s ends.
//
//	  s    other
//	f----tf------t
func (s Span) Touches(other Span) bool {
	return other.start.Equal(s.end)
}

// Overlaps returns whether s and other share more than a boundary instant.
func (s Span) Overlaps(other Span) bool {
	return s.start.Before(other.end) && other.start.Before(s.end)
}

// CoveredBy returns whether s is entirely contained within other.
func (s Span) CoveredBy(other Span) bool {
	return !s.start.Before(other.start) && !other.end.Before(s.end)
}
