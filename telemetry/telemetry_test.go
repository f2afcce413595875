package telemetry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestNoOpCollector(t *testing.T) {
	collector := noOpCollector{}

	timer := collector.Start("test")
	timer.Child("child").End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, "", buf.String())
}

func TestFromContext(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, ok := FromContext(context.Background()).(noOpCollector)
		assert.True(t, ok)
	})

	t.Run("Present", func(t *testing.T) {
		collector := NewTimingCollector()
		ctx := WithCollector(context.Background(), collector)
		got, ok := FromContext(ctx).(*TimingCollector)
		assert.True(t, ok)
		assert.True(t, got == collector)
	})
}

func TestStartNestsUnderRunningTimer(t *testing.T) {
	collector := NewTimingCollector()
	collector.now = fakeClock(time.Millisecond)

	load := collector.Start("load")
	decode := collector.Start("decode")
	decode.End()
	transform := collector.Start("transform")
	transform.End()
	load.End()
	collector.Start("report").End()

	assert.Equal(t, []Entry{
		{Name: "load", Depth: 0, Duration: 5 * time.Millisecond},
		{Name: "decode", Depth: 1, Duration: time.Millisecond},
		{Name: "transform", Depth: 1, Duration: time.Millisecond},
		{Name: "report", Depth: 0, Duration: time.Millisecond},
	}, collector.Entries())
}

func TestStartTimer(t *testing.T) {
	collector := NewTimingCollector()
	collector.now = fakeClock(time.Millisecond)
	ctx := WithCollector(context.Background(), collector)

	root := collector.Start("transform doc.yaml")
	ctx = WithRootTimer(ctx, root)
	StartTimer(ctx, "read source").End()
	StartTimer(ctx, "decode cst").End()
	root.End()

	var names []string
	for _, e := range collector.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"transform doc.yaml", "read source", "decode cst"}, names)
	assert.Equal(t, 1, collector.Entries()[2].Depth)

	t.Run("WithoutRoot", func(t *testing.T) {
		timer := StartTimer(context.Background(), "ignored")
		_, ok := timer.(noOpTimer)
		assert.True(t, ok)
	})
}

func TestEndTwice(t *testing.T) {
	collector := NewTimingCollector()
	collector.now = fakeClock(time.Millisecond)

	timer := collector.Start("once")
	timer.End()
	timer.End()
	assert.Equal(t, time.Millisecond, collector.Entries()[0].Duration)
}

func TestReport(t *testing.T) {
	collector := NewTimingCollector()
	collector.now = fakeClock(2 * time.Millisecond)

	root := collector.Start("transform")
	root.Child("decode cst").End()
	parse := root.Child("attach")
	parse.Child("comments").End()
	parse.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, ""+
		"transform       14ms\n"+
		"├─ decode cst   2ms\n"+
		"└─ attach       6ms\n"+
		"   └─ comments  2ms\n", buf.String())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{1500 * time.Microsecond, "2ms"},
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.50s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}
