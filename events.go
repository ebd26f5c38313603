package mlsp

import "fmt"

// EventKind identifies the structured diagnostic events a receiver may
// emit. These are purely observational — per spec, they never alter the
// state machine's control flow. The default observer forwards each event
// to the configured Logger at Debug or Warn level.
type EventKind int

const (
	EventMalformedPacket EventKind = iota
	EventDuplicatePacket
	EventStalePacket
	EventBoundsViolation
	EventFrameSwitch
	EventSubframeComplete
	EventFrameComplete
)

func (k EventKind) String() string {
	switch k {
	case EventMalformedPacket:
		return "malformed_packet"
	case EventDuplicatePacket:
		return "duplicate_packet"
	case EventStalePacket:
		return "stale_packet"
	case EventBoundsViolation:
		return "bounds_violation"
	case EventFrameSwitch:
		return "frame_switch"
	case EventSubframeComplete:
		return "subframe_complete"
	case EventFrameComplete:
		return "frame_complete"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one structured diagnostic emitted by a receiver endpoint.
type Event struct {
	Kind        EventKind
	Framenumber uint16
	Subframe    int
	Packet      int
	Err         error // set only for EventMalformedPacket
}

// EventObserver receives Events as they occur. It must not block for long
// and must not retain the Event's Err beyond the call.
type EventObserver func(Event)

func defaultEventObserver(logger Logger) EventObserver {
	return func(ev Event) {
		switch ev.Kind {
		case EventMalformedPacket:
			logger.Debug("dropped malformed packet", "error", ev.Err)
		case EventDuplicatePacket:
			logger.Debug("dropped duplicate packet", "framenumber", ev.Framenumber, "subframe", ev.Subframe, "packet", ev.Packet)
		case EventStalePacket:
			logger.Debug("dropped stale packet", "framenumber", ev.Framenumber)
		case EventBoundsViolation:
			logger.Warn("dropped out-of-bounds packet", "framenumber", ev.Framenumber, "subframe", ev.Subframe, "packet", ev.Packet)
		case EventFrameSwitch:
			logger.Debug("frame switch, discarding partial progress", "framenumber", ev.Framenumber)
		case EventSubframeComplete:
			logger.Debug("subframe complete", "framenumber", ev.Framenumber, "subframe", ev.Subframe)
		case EventFrameComplete:
			logger.Debug("frame complete", "framenumber", ev.Framenumber)
		}
	}
}
