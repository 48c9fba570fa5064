package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/model"
	"github.com/Nixie-Tech-LLC/nakai/internal/view"
)

type message struct {
	topic   string
	payload []byte
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []message
	err  error
}

func (f *fakePublisher) Publish(topic string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, message{topic, payload})
	return nil
}

func (f *fakePublisher) Close() {}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	hs, bad := calendar.ParseHolidays([]model.HolidayRecord{
		{Name: "Mid-Term Break", StartDate: "2026-02-15", DateRange: strPtr("2026-02-15 - 2026-02-19"), Type: "Term Holidays"},
		{Name: "Beginning of Ramadan", StartDate: "2026-02-18", Type: "Public Holiday"},
	})
	require.Empty(t, bad)
	return catalog.NewStaticRegistry(&catalog.Catalog{
		Holidays: hs,
		Prayers: map[string]model.NakaiPrayer{
			"18 Feb 2026": {NakaiNameEn: "Hiyaviha", NakaiDay: 10, Fajr: 4.87, Sunrise: 6.15, Dhuhr: 12.27, Asr: 15.45, Maghrib: 18.37, Isha: 19.57},
		},
	})
}

func strPtr(s string) *string { return &s }

func TestPublishNow(t *testing.T) {
	pub := &fakePublisher{}
	clk := &clock{now: time.Date(2026, time.February, 18, 7, 0, 0, 0, time.UTC)}
	b := NewBroadcaster(pub, "calendar/today", testRegistry(t), clk.Now, view.Options{Locale: calendar.LocaleEnglish})

	card, err := b.PublishNow()
	require.NoError(t, err)
	assert.Equal(t, "2026-02-18", card.Date)
	assert.Equal(t, "Wednesday", card.Weekday)
	assert.Equal(t, "1 Ramadan 1447", card.Hijri)
	require.NotNil(t, card.Holiday)
	assert.Equal(t, "Beginning of Ramadan", card.Holiday.Name)
	require.NotNil(t, card.Nakai)
	assert.Len(t, card.Prayers, 6)

	require.Equal(t, 1, pub.count())
	assert.Equal(t, "calendar/today", pub.sent[0].topic)

	var decoded Card
	require.NoError(t, json.Unmarshal(pub.sent[0].payload, &decoded))
	assert.Equal(t, card, decoded)
}

func TestBuildCardCarriesHolidayRange(t *testing.T) {
	cat := testRegistry(t).Current()
	card := BuildCard(cat, view.Options{Now: time.Date(2026, time.February, 16, 9, 0, 0, 0, time.UTC)})

	require.NotNil(t, card.Holiday)
	assert.Equal(t, view.NewHolidayItem(cat.Holidays[0]), *card.Holiday)
	assert.Equal(t, "2026-02-19", card.Holiday.EndDate)
	assert.Equal(t, "term-holidays", card.Holiday.TypeClass)
}

func TestTickPublishesOnDateChange(t *testing.T) {
	pub := &fakePublisher{}
	clk := &clock{now: time.Date(2026, time.February, 17, 23, 58, 0, 0, time.UTC)}
	b := NewBroadcaster(pub, "calendar/today", testRegistry(t), clk.Now, view.Options{})

	b.tick()
	b.tick()
	assert.Equal(t, 1, pub.count())

	clk.Set(time.Date(2026, time.February, 17, 23, 59, 0, 0, time.UTC))
	b.tick()
	assert.Equal(t, 1, pub.count())

	clk.Set(time.Date(2026, time.February, 18, 0, 1, 0, 0, time.UTC))
	b.tick()
	assert.Equal(t, 2, pub.count())
}

func TestTickRetriesAfterPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	clk := &clock{now: time.Date(2026, time.February, 17, 12, 0, 0, 0, time.UTC)}
	b := NewBroadcaster(pub, "calendar/today", testRegistry(t), clk.Now, view.Options{})

	b.tick()
	assert.Equal(t, 0, pub.count())

	pub.mu.Lock()
	pub.err = nil
	pub.mu.Unlock()
	b.tick()
	assert.Equal(t, 1, pub.count())
}

func TestPublishNowWithoutCatalog(t *testing.T) {
	b := NewBroadcaster(&fakePublisher{}, "t", catalog.NewStaticRegistry(nil), time.Now, view.Options{})
	_, err := b.PublishNow()
	assert.ErrorIs(t, err, ErrNoCatalog)
}

func TestRunStopsWithContext(t *testing.T) {
	pub := &fakePublisher{}
	clk := &clock{now: time.Date(2026, time.February, 17, 12, 0, 0, 0, time.UTC)}
	b := NewBroadcaster(pub, "t", testRegistry(t), clk.Now, view.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return pub.count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 1, pub.count())
}

func TestRunToleratesNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		pub := &fakePublisher{}
		clk := &clock{now: time.Date(2026, time.February, 17, 12, 0, 0, 0, time.UTC)}
		b := NewBroadcaster(pub, "t", testRegistry(t), clk.Now, view.Options{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.NotPanics(t, func() { b.Run(ctx, interval) })
		assert.Equal(t, 1, pub.count())
	}
}

func TestFanoutReportsEveryFailure(t *testing.T) {
	ok := &fakePublisher{}
	bad := &fakePublisher{err: errors.New("broker down")}

	err := Fanout{bad, ok}.Publish("t", []byte("x"))
	assert.ErrorContains(t, err, "broker down")
	assert.Equal(t, 1, ok.count())

	assert.NoError(t, Fanout{ok}.Publish("t", []byte("y")))
	assert.Equal(t, 2, ok.count())
}
