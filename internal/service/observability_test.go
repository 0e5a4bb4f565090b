package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "generate-timeline",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"schedule": "Lu_AFGO", "blocks": 3},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=generate-timeline")
	assert.Contains(t, out, "duration_ms=12")
	assert.Less(t, strings.Index(out, "blocks=3"), strings.Index(out, "schedule=Lu_AFGO"))
}

func TestLogUseCaseObserver_Error(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "export-schedule",
		Err:  errors.New("disk full"),
	})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `error="disk full"`)
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}

func TestUseCaseObserverOrNoop_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := useCaseObserverOrNoop([]UseCaseObserver{a, nil, b})

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "export-schedule"})
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
	assert.Same(t, a, useCaseObserverOrNoop([]UseCaseObserver{nil, a}))
}
