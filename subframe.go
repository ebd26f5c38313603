package mlsp

// collectedSubframe is a receiver-internal reassembly slot: one growable
// payload buffer plus a parallel received-flags slice, reused across
// frames. Buffers only grow — prepare never shrinks reservedPackets; if
// the next frame needs a smaller buffer, the existing one is kept and
// just partially reused.
type collectedSubframe struct {
	buf    []byte // len == reservedPackets*PacketMaxPayload + SubframeBufferPadding
	flags  []bool // len == reservedPackets

	reservedPackets  int
	packets          int // packets advertised for the frame currently being assembled
	collectedPackets int
	actualSize       int
}

// prepare readies the slot to receive packets for a (frame, subframe) pair
// advertising the given packets count. If the existing buffer is too small
// it is released and a larger one allocated; otherwise it is reused in
// place. Progress counters are always reset.
func (s *collectedSubframe) prepare(packets int) {
	needed := packets * PacketMaxPayload
	if s.reservedPackets*PacketMaxPayload < needed {
		s.buf = make([]byte, needed+SubframeBufferPadding)
		s.reservedPackets = packets
	}
	if len(s.flags) < packets {
		s.flags = make([]bool, packets)
	} else {
		for i := range s.flags {
			s.flags[i] = false
		}
	}

	s.packets = packets
	s.collectedPackets = 0
	s.actualSize = 0
}

// resetProgress clears progress counters and flags without releasing or
// resizing the buffer. Used when a frame switch discards a subframe that
// was never fully reassembled.
func (s *collectedSubframe) resetProgress() {
	for i := range s.flags {
		s.flags[i] = false
	}
	s.packets = 0
	s.collectedPackets = 0
	s.actualSize = 0
}

// depositOutcome distinguishes why a deposit was rejected, purely for
// diagnostics — the state machine's behavior (drop and continue) is the
// same in every rejection case.
type depositOutcome int

const (
	depositAccepted depositOutcome = iota
	depositDuplicate
	depositOutOfBounds
)

// deposit copies bytes into the slot at packetIndex's offset. Duplicate
// packets (flag already set) and packets that would write past the
// reserved capacity are dropped; the caller decides how to log these.
func (s *collectedSubframe) deposit(packetIndex int, bytes []byte) depositOutcome {
	if packetIndex < 0 || packetIndex >= len(s.flags) {
		return depositOutOfBounds
	}
	if s.flags[packetIndex] {
		return depositDuplicate
	}

	offset := packetIndex * PacketMaxPayload
	if offset+len(bytes) > len(s.buf) {
		return depositOutOfBounds // disagrees with the packets count that sized the buffer
	}

	copy(s.buf[offset:offset+len(bytes)], bytes)
	s.flags[packetIndex] = true
	s.collectedPackets++
	s.actualSize += len(bytes)
	return depositAccepted
}

// complete reports whether every packet advertised for the in-progress
// (frame, subframe) has been deposited.
func (s *collectedSubframe) complete() bool {
	return s.packets > 0 && s.collectedPackets == s.packets
}
