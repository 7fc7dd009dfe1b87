package refresh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mawaqit-display/internal/mawaqit"
	"github.com/llehouerou/mawaqit-display/internal/prayer"
	"github.com/llehouerou/mawaqit-display/internal/state"
)

type fakeSource struct {
	schedule prayer.Schedule
	err      error
	calls    chan mawaqit.Selection
}

func (f *fakeSource) Fetch(_ context.Context, sel mawaqit.Selection) (prayer.Schedule, error) {
	if f.calls != nil {
		f.calls <- sel
	}
	return f.schedule, f.err
}

var fixedNow = time.Date(2026, 3, 1, 0, 1, 0, 0, time.UTC)

func testSchedule() prayer.Schedule {
	return prayer.NewSchedule([prayer.Count]string{"05:00", "06:30", "12:30", "15:45", "18:20", "19:50"}, "Moschee")
}

func TestRun_DeliversAndCaches(t *testing.T) {
	src := &fakeSource{schedule: testSchedule()}
	cache := state.NewMock()
	var delivered []prayer.Schedule

	r, err := New(src, Options{
		Mosque:  func() mawaqit.Selection { return mawaqit.Selection{ID: "a", Name: "Moschee"} },
		Deliver: func(s prayer.Schedule) { delivered = append(delivered, s) },
		Cache:   cache,
		Now:     func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	require.NoError(t, r.Run(context.Background()))
	require.Len(t, delivered, 1)
	assert.Equal(t, "2026-03-01", delivered[0].Date)

	cached, err := cache.GetSchedule()
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, delivered[0].Times, cached.Schedule.Times)
	assert.Equal(t, fixedNow, cached.FetchedAt)
}

func TestRun_FailureKeepsPrevious(t *testing.T) {
	fetchErr := errors.New("offline")
	src := &fakeSource{err: fetchErr}
	cache := state.NewMock()
	delivered := 0
	var failed error

	r, err := New(src, Options{
		Deliver: func(prayer.Schedule) { delivered++ },
		Failed:  func(err error) { failed = err },
		Cache:   cache,
	})
	require.NoError(t, err)

	require.ErrorIs(t, r.Run(context.Background()), fetchErr)
	assert.Zero(t, delivered)
	assert.ErrorIs(t, failed, fetchErr)

	cached, _ := cache.GetSchedule()
	assert.Nil(t, cached)
}

func TestNew_RejectsBadSpec(t *testing.T) {
	_, err := New(&fakeSource{}, Options{Specs: []string{"every hour"}})
	require.Error(t, err)

	_, err = New(&fakeSource{}, Options{Specs: []string{"@every 1h", "1 0 * * *"}})
	require.NoError(t, err)
}

func TestStart_FetchesImmediately(t *testing.T) {
	src := &fakeSource{schedule: testSchedule(), calls: make(chan mawaqit.Selection, 1)}
	r, err := New(src, Options{
		Mosque: func() mawaqit.Selection { return mawaqit.Selection{Name: "Moschee"} },
		Specs:  []string{"@every 1h"},
	})
	require.NoError(t, err)

	r.Start()
	defer r.Stop()

	select {
	case sel := <-src.calls:
		assert.Equal(t, "Moschee", sel.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("no fetch after Start")
	}
}
