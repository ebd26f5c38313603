package mlsp

import "testing"

func TestCollectedSubframePrepareGrowsOnce(t *testing.T) {
	var s collectedSubframe
	s.prepare(2)
	cap1 := len(s.buf)
	if cap1 != 2*PacketMaxPayload+SubframeBufferPadding {
		t.Fatalf("buf len = %d, want %d", cap1, 2*PacketMaxPayload+SubframeBufferPadding)
	}

	// A smaller next frame must not shrink the reserved buffer.
	s.prepare(1)
	if len(s.buf) != cap1 {
		t.Errorf("buf len after smaller prepare = %d, want unchanged %d", len(s.buf), cap1)
	}

	// A larger frame must grow it.
	s.prepare(4)
	if len(s.buf) != 4*PacketMaxPayload+SubframeBufferPadding {
		t.Errorf("buf len after larger prepare = %d, want %d", len(s.buf), 4*PacketMaxPayload+SubframeBufferPadding)
	}
}

func TestCollectedSubframeDepositAndComplete(t *testing.T) {
	var s collectedSubframe
	s.prepare(2)

	if s.complete() {
		t.Fatal("complete() before any deposit")
	}

	if out := s.deposit(0, []byte("HELLO")); out != depositAccepted {
		t.Fatalf("deposit(0) = %v, want accepted", out)
	}
	if s.complete() {
		t.Fatal("complete() after only 1 of 2 packets")
	}

	if out := s.deposit(1, []byte("WORLD")); out != depositAccepted {
		t.Fatalf("deposit(1) = %v, want accepted", out)
	}
	if !s.complete() {
		t.Fatal("complete() should be true after all packets deposited")
	}
	if s.actualSize != 10 {
		t.Errorf("actualSize = %d, want 10", s.actualSize)
	}
	if got := string(s.buf[0:5]) + string(s.buf[PacketMaxPayload:PacketMaxPayload+5]); got != "HELLOWORLD" {
		t.Errorf("buffer contents = %q, want HELLOWORLD", got)
	}
}

func TestCollectedSubframeDuplicateDropped(t *testing.T) {
	var s collectedSubframe
	s.prepare(2)

	s.deposit(0, []byte("A"))
	if out := s.deposit(0, []byte("B")); out != depositDuplicate {
		t.Fatalf("second deposit(0) = %v, want depositDuplicate", out)
	}
	if s.collectedPackets != 1 {
		t.Errorf("collectedPackets = %d, want 1 (duplicate must not be double-counted)", s.collectedPackets)
	}
	if s.buf[0] != 'A' {
		t.Error("duplicate deposit must not overwrite the original payload")
	}
}

func TestCollectedSubframeOutOfBoundsDropped(t *testing.T) {
	var s collectedSubframe
	s.prepare(1)

	if out := s.deposit(5, []byte("x")); out != depositOutOfBounds {
		t.Fatalf("deposit(5) on a 1-packet slot = %v, want depositOutOfBounds", out)
	}
	if out := s.deposit(-1, []byte("x")); out != depositOutOfBounds {
		t.Fatalf("deposit(-1) = %v, want depositOutOfBounds", out)
	}
}

func TestCollectedSubframeZeroLengthPacket(t *testing.T) {
	var s collectedSubframe
	s.prepare(1)

	if out := s.deposit(0, nil); out != depositAccepted {
		t.Fatalf("deposit(0, nil) = %v, want accepted", out)
	}
	if !s.complete() {
		t.Fatal("a single zero-length packet should complete a 1-packet subframe")
	}
	if s.actualSize != 0 {
		t.Errorf("actualSize = %d, want 0", s.actualSize)
	}
}

func TestCollectedSubframeResetProgressKeepsBuffer(t *testing.T) {
	var s collectedSubframe
	s.prepare(2)
	s.deposit(0, []byte("A"))
	buf := s.buf

	s.resetProgress()

	if s.collectedPackets != 0 || s.actualSize != 0 || s.packets != 0 {
		t.Errorf("resetProgress left state: packets=%d collected=%d actualSize=%d", s.packets, s.collectedPackets, s.actualSize)
	}
	if &s.buf[0] != &buf[0] {
		t.Error("resetProgress must retain the buffer, not release it")
	}
	for i, f := range s.flags {
		if f {
			t.Errorf("flag %d still set after resetProgress", i)
		}
	}
}
