package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "Error", want: LevelError},
		{in: "loud", want: LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitForCLI_WritesSubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("Tabs", errors.New("boom"), "switch to %s failed", "cv")

	out := buf.String()
	assert.Contains(t, out, "switch to cv failed")
	assert.Contains(t, out, "subsystem=Tabs")
	assert.Contains(t, out, "error=boom")
}

func TestInitForCLI_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Info("Tabs", "not shown")
	Warn("Tabs", "shown")

	assert.NotContains(t, buf.String(), "not shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitForTUI_DeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("Tabs", "filtered")
	Info("Tabs", "hello %d", 1)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelInfo, entry.Level)
		assert.Equal(t, "Tabs", entry.Subsystem)
		assert.Equal(t, "hello 1", entry.Message)
		assert.Contains(t, entry.String(), "[INFO] Tabs: hello 1")
	default:
		require.Fail(t, "expected an entry on the TUI channel")
	}

	select {
	case entry := <-ch:
		t.Fatalf("unexpected extra entry: %+v", entry)
	default:
	}
}

func TestInitForTUI_DropsWhenFull(t *testing.T) {
	_ = InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	for i := 0; i < tuiChannelBufferSize+5; i++ {
		Debug("Flood", "line %d", i)
	}
	assert.Equal(t, int64(5), Dropped())
}
