package mlsp

import (
	"testing"
	"time"
)

func TestResolveOptionsDefaults(t *testing.T) {
	o := resolveOptions(nil)
	if o.logger == nil {
		t.Error("default logger must not be nil")
	}
	if o.onEvent == nil {
		t.Error("default event observer must not be nil")
	}
}

func TestLoggerOptionOverridesDefault(t *testing.T) {
	mock := &mockLogger{}
	o := resolveOptions([]Option{LoggerOption(mock)})
	if o.logger != mock {
		t.Error("LoggerOption did not install the custom logger")
	}
}

func TestOnEventOptionOverridesDefault(t *testing.T) {
	var got Event
	called := false
	cb := func(ev Event) { called = true; got = ev }

	o := resolveOptions([]Option{OnEventOption(cb)})
	o.onEvent(Event{Kind: EventFrameComplete, Framenumber: 9})

	if !called {
		t.Fatal("custom event observer was not invoked")
	}
	if got.Framenumber != 9 || got.Kind != EventFrameComplete {
		t.Errorf("observer received %+v", got)
	}
}

func TestOnEventOptionDefaultsToLoggerForwarding(t *testing.T) {
	mock := &mockLogger{}
	o := resolveOptions([]Option{LoggerOption(mock)})

	o.onEvent(Event{Kind: EventDuplicatePacket, Framenumber: 1, Subframe: 0, Packet: 2})

	if !mock.debugCalled {
		t.Error("default observer should forward duplicate-packet events to Logger.Debug")
	}
}

func TestConfigReceiveTimeoutZeroMeansBlocking(t *testing.T) {
	if got := (Config{}).receiveTimeout(); got != 0 {
		t.Errorf("receiveTimeout() = %v, want 0", got)
	}
	if got := (Config{TimeoutMS: -5}).receiveTimeout(); got != 0 {
		t.Errorf("receiveTimeout() with negative TimeoutMS = %v, want 0", got)
	}
}

func TestConfigReceiveTimeoutConverts(t *testing.T) {
	got := (Config{TimeoutMS: 250}).receiveTimeout()
	if got != 250*time.Millisecond {
		t.Errorf("receiveTimeout() = %v, want 250ms", got)
	}
}

func TestConfigSubframeCountDefaultsToOne(t *testing.T) {
	if got := (Config{}).subframeCount(); got != 1 {
		t.Errorf("subframeCount() = %d, want 1", got)
	}
	if got := (Config{Subframes: -1}).subframeCount(); got != 1 {
		t.Errorf("subframeCount() with negative = %d, want 1", got)
	}
}

func TestConfigSubframeCountPassesThrough(t *testing.T) {
	if got := (Config{Subframes: 3}).subframeCount(); got != 3 {
		t.Errorf("subframeCount() = %d, want 3", got)
	}
}
