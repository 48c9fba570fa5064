package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/nakai/internal/model"
)

func TestDecimalHoursToClock(t *testing.T) {
	tests := []struct {
		in     float64
		clock  string
		period string
	}{
		{4.9, "04:54", "AM"},
		{12.25, "12:15", "PM"},
		{12.0, "12:00", "PM"},
		{0.5, "12:30", "AM"},
		{15.5, "03:30", "PM"},
		{18.3, "06:18", "PM"},
		{11.9999, "12:00", "PM"},
		{23.9999, "12:00", "AM"},
	}
	for _, tt := range tests {
		clock, period := DecimalHoursToClock(tt.in)
		assert.Equal(t, tt.clock, clock, "%v", tt.in)
		assert.Equal(t, tt.period, period, "%v", tt.in)
	}
}

func TestLookup(t *testing.T) {
	records := map[string]model.NakaiPrayer{
		"14 Feb 2026": {NakaiNameEn: "Hiyaviha", NakaiDay: 6, Fajr: 4.88},
	}

	rec, ok := Lookup(records, time.Date(2026, time.February, 14, 18, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "Hiyaviha", rec.NakaiNameEn)

	_, ok = Lookup(records, time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	assert.Equal(t, "01 Jan 2026", Key(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPrayersDisplayOrder(t *testing.T) {
	rec := model.NakaiPrayer{Fajr: 4.9, Sunrise: 6.2, Dhuhr: 12.25, Asr: 15.5, Maghrib: 18.3, Isha: 19.5}
	prayers := Prayers(rec)
	require.Len(t, prayers, 6)

	names := make([]string, len(prayers))
	for i, p := range prayers {
		names[i] = p.Name
		assert.NotEmpty(t, p.Icon)
	}
	assert.Equal(t, []string{"Fajr", "Sun Rise", "Dhuhr", "Asr", "Maghrib", "Isha"}, names)
	assert.Equal(t, "07:30", prayers[5].Time)
	assert.Equal(t, "PM", prayers[5].Period)
}

func TestNakaiOf(t *testing.T) {
	n := NakaiOf(model.NakaiPrayer{NakaiNameEn: "Dhinasha", NakaiNameMv: "ދިނަސާ", NakaiDay: 7})
	assert.Equal(t, 7, n.Day)
	assert.Equal(t, "North-easterly winds, moderate seas, plenty of sunshine", n.Description)

	assert.Empty(t, NakaiDescription("Unknown"))
}
