package timenode

import (
	"testing"
	"time"

	"github.com/tj/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, time.March, 1, hour, min, 0, 0, time.UTC)
}

func TestSpanRelations(t *testing.T) {
	cases := map[string]struct {
		a              Span
		b              Span
		entirelyBefore bool
		touches        bool
		overlaps       bool
		coveredBy      bool
	}{
		"Contiguous": {
			a:              SpanFrom(at(10, 0), at(10, 30)),
			b:              SpanFrom(at(10, 30), at(11, 0)),
			entirelyBefore: true,
			touches:        true,
		},
		"Gap": {
			a:              SpanFrom(at(10, 0), at(10, 30)),
			b:              SpanFrom(at(11, 0), at(11, 30)),
			entirelyBefore: true,
		},
		"Overlap": {
			a:        SpanFrom(at(10, 0), at(10, 45)),
			b:        SpanFrom(at(10, 30), at(11, 0)),
			overlaps: true,
		},
		"Inside": {
			a:         SpanFrom(at(10, 15), at(10, 30)),
			b:         SpanFrom(at(10, 0), at(11, 0)),
			overlaps:  true,
			coveredBy: true,
		},
		"Same": {
			a:         SpanFrom(at(10, 0), at(11, 0)),
			b:         SpanFrom(at(10, 0), at(11, 0)),
			overlaps:  true,
			coveredBy: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.entirelyBefore, tc.a.EntirelyBefore(tc.b))
			assert.Equal(t, tc.touches, tc.a.Touches(tc.b))
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.coveredBy, tc.a.CoveredBy(tc.b))
		})
	}
}

func TestSpanCompare(t *testing.T) {
	cases := map[string]struct {
		a    Span
		b    Span
		want int
	}{
		"StartFirst":   {a: SpanFrom(at(9, 0), at(12, 0)), b: SpanFrom(at(10, 0), at(11, 0)), want: -1},
		"EndBreaksTie": {a: SpanFrom(at(10, 0), at(11, 0)), b: SpanFrom(at(10, 0), at(10, 30)), want: 1},
		"Equal":        {a: SpanFrom(at(10, 0), at(11, 0)), b: SpanFrom(at(10, 0), at(11, 0)), want: 0},
		"OtherZone": {
			a:    SpanFrom(at(10, 0), at(11, 0)),
			b:    SpanFrom(at(10, 0).In(time.FixedZone("CET", 3600)), at(11, 0).In(time.FixedZone("CET", 3600))),
			want: 0,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, tc.want < 0, tc.a.Less(tc.b))
			assert.Equal(t, tc.want == 0, tc.a.Equal(tc.b))
		})
	}
}

func TestSpanValidity(t *testing.T) {
	assert.True(t, SpanFrom(at(10, 0), at(10, 0)).IsValid())
	assert.True(t, SpanFrom(at(10, 0), at(11, 0)).IsValid())
	assert.False(t, SpanFrom(at(11, 0), at(10, 0)).IsValid())
	assert.True(t, Span{}.IsZero())
	assert.False(t, SpanFrom(at(10, 0), at(11, 0)).IsZero())
	assert.Equal(t, "2024-03-01T10:00:00Z-2024-03-01T11:00:00Z", SpanFrom(at(10, 0), at(11, 0)).String())
}
