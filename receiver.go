package mlsp

import (
	"errors"
	"net"
	"time"
)

// receiverState holds the receiver-role-only fields of an Endpoint: the
// single receive scratch buffer, the frame currently under assembly, and
// one reassembly slot per subframe index.
type receiverState struct {
	scratch [scratchSize]byte

	receiveTimeout time.Duration // 0 means block indefinitely

	framenumber       uint16
	haveFrame         bool // false before the first packet of the stream
	receivedSubframes [MaxSubframes]bool
	slots             [MaxSubframes]collectedSubframe

	emitted LogicalFrame // reused across calls; borrowed by the caller until the next Receive/Reset
}

// Receive blocks until a complete logical frame has been reassembled, the
// receive timeout fires, or a fatal socket error occurs. The returned
// LogicalFrame borrows the endpoint's internal buffers and is invalidated
// by the next call to Receive or Reset.
func (e *Endpoint) Receive() (LogicalFrame, error) {
	if e.closed.Load() {
		return LogicalFrame{}, ErrClosed
	}
	if e.role != roleReceiver {
		return LogicalFrame{}, wrapf(ErrSocket, "Receive called on a sender endpoint")
	}

	for {
		if e.rx.receiveTimeout > 0 {
			if err := e.conn.SetReadDeadline(time.Now().Add(e.rx.receiveTimeout)); err != nil {
				return LogicalFrame{}, wrapf(ErrSocket, "set read deadline: %v", err)
			}
		}

		n, err := e.conn.Read(e.rx.scratch[:])
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				return LogicalFrame{}, ErrTimeout
			}
			if errors.Is(err, net.ErrClosed) {
				return LogicalFrame{}, ErrClosed
			}
			return LogicalFrame{}, wrapf(ErrSocket, "recvfrom: %v", err)
		}

		frame, ready := e.acceptPacket(e.rx.scratch[:n])
		if ready {
			return frame, nil
		}
	}
}

// acceptPacket runs the ordered per-packet logic of steps 2-8 of the
// receiver state machine against one already-read datagram. Every
// rejection path returns ready=false so the caller loops back to reading
// the next datagram without surfacing anything.
func (e *Endpoint) acceptPacket(datagram []byte) (LogicalFrame, bool) {
	h, payload, err := decodeHeader(datagram)
	if err != nil {
		e.opts.onEvent(Event{Kind: EventMalformedPacket, Err: err})
		return LogicalFrame{}, false
	}

	if e.rx.haveFrame && h.framenumber < e.rx.framenumber {
		e.opts.onEvent(Event{Kind: EventStalePacket, Framenumber: h.framenumber})
		return LogicalFrame{}, false
	}

	if !e.rx.haveFrame || h.framenumber > e.rx.framenumber {
		e.switchFrame(h.framenumber)
	}

	slot := &e.rx.slots[h.subframe]
	if slot.packets != int(h.packets) {
		slot.prepare(int(h.packets))
	}

	switch slot.deposit(int(h.packet), payload) {
	case depositDuplicate:
		e.opts.onEvent(Event{Kind: EventDuplicatePacket, Framenumber: h.framenumber, Subframe: int(h.subframe), Packet: int(h.packet)})
		return LogicalFrame{}, false
	case depositOutOfBounds:
		e.opts.onEvent(Event{Kind: EventBoundsViolation, Framenumber: h.framenumber, Subframe: int(h.subframe), Packet: int(h.packet)})
		return LogicalFrame{}, false
	}

	if slot.complete() {
		e.rx.receivedSubframes[h.subframe] = true
		e.opts.onEvent(Event{Kind: EventSubframeComplete, Framenumber: h.framenumber, Subframe: int(h.subframe)})
	}

	if e.countReceivedSubframes() == int(h.subframes) {
		e.opts.onEvent(Event{Kind: EventFrameComplete, Framenumber: h.framenumber})
		return e.buildEmittedFrame(h.framenumber, int(h.subframes)), true
	}

	return LogicalFrame{}, false
}

// switchFrame advances assembly to a strictly greater framenumber,
// unconditionally discarding any partial progress on the previous one. At
// most one frame is under assembly at any time.
func (e *Endpoint) switchFrame(framenumber uint16) {
	if e.rx.haveFrame {
		for i := range e.rx.slots {
			if e.rx.slots[i].packets > 0 && !e.rx.slots[i].complete() {
				e.opts.onEvent(Event{Kind: EventFrameSwitch, Framenumber: e.rx.framenumber, Subframe: i})
			}
		}
	}

	e.rx.framenumber = framenumber
	e.rx.haveFrame = true
	e.rx.receivedSubframes = [MaxSubframes]bool{}
	for i := range e.rx.slots {
		e.rx.slots[i].resetProgress()
	}
}

func (e *Endpoint) countReceivedSubframes() int {
	n := 0
	for _, b := range e.rx.receivedSubframes {
		if b {
			n++
		}
	}
	return n
}

// buildEmittedFrame assembles the LogicalFrame handed back to the caller,
// pointing data[i] directly at the owned reassembly buffer for i <
// subframes and nil/0 beyond it.
func (e *Endpoint) buildEmittedFrame(framenumber uint16, subframes int) LogicalFrame {
	e.rx.emitted = LogicalFrame{Framenumber: framenumber, subframes: subframes}
	for i := 0; i < subframes; i++ {
		e.rx.emitted.data[i] = e.rx.slots[i].buf
		e.rx.emitted.sizes[i] = e.rx.slots[i].actualSize
	}
	return e.rx.emitted
}

// Reset returns the receiver to its pre-first-packet state: any
// subsequent packet is accepted as the start of a new stream regardless
// of its framenumber. Reassembly buffers are retained. Reset is idempotent.
func (e *Endpoint) Reset() {
	if e.role != roleReceiver {
		return
	}
	e.rx.haveFrame = false
	e.rx.framenumber = 0
	e.rx.receivedSubframes = [MaxSubframes]bool{}
	for i := range e.rx.slots {
		e.rx.slots[i].resetProgress()
	}
}
