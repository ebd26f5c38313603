package mlsp

// LogicalFrame is the user-visible unit exchanged by Send and Receive. It
// is identified by a 16-bit framenumber and carries up to MaxSubframes
// subframes; the meaning of each subframe index is application-defined,
// the protocol only preserves position.
//
// A LogicalFrame returned by Receive borrows its subframe payloads from
// the endpoint's internal reassembly buffers. Those buffers are only valid
// until the next call to Receive or Reset — copy out any bytes the caller
// needs to retain past that point.
type LogicalFrame struct {
	Framenumber uint16
	subframes   int
	data        [MaxSubframes][]byte
	sizes       [MaxSubframes]int
}

// Subframes returns the number of subframes this frame carries.
func (f LogicalFrame) Subframes() int {
	return f.subframes
}

// Data returns the payload of subframe i. It is a borrowed view into the
// owning endpoint's internal buffer and is invalidated by the endpoint's
// next mutating call. Data returns nil for i >= f.Subframes().
func (f LogicalFrame) Data(i int) []byte {
	if i < 0 || i >= f.subframes {
		return nil
	}
	return f.data[i][:f.sizes[i]]
}

// Size returns the byte length of subframe i, or 0 if i >= f.Subframes().
func (f LogicalFrame) Size(i int) int {
	if i < 0 || i >= f.subframes {
		return 0
	}
	return f.sizes[i]
}

// OutgoingSubframe is one subframe supplied to Send. Applications do not
// need to preassemble subframes into a contiguous buffer; each is
// fragmented and transmitted independently in order.
type OutgoingSubframe struct {
	Data []byte
}

// OutgoingFrame is the argument to Send: a framenumber plus, in order, the
// subframes to transmit under it.
type OutgoingFrame struct {
	Framenumber uint16
	Subframes   []OutgoingSubframe
}
