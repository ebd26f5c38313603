// Package mlsp implements the packetization and reassembly engine for a
// minimal-latency datagram streaming protocol: fragmenting a logical frame
// of up to three subframes into fixed-size UDP packets on the sender side,
// and reassembling them — tolerant of reordering, duplication, and partial
// frames — on the receiver side. There is no retransmission, no
// acknowledgement, and no flow control; a frame that never completes is
// silently discarded when the next one begins.
package mlsp

// Protocol-wide limits. PacketMaxPayload keeps a single wire packet inside
// a typical IPv4 MTU without fragmentation at the IP layer.
const (
	HeaderSize       = 8
	MaxSubframes     = 3
	PacketMaxPayload = 1400

	// SubframeBufferPadding is reserved past the end of every reassembly
	// buffer so a downstream decoder may overread by a bounded amount
	// without copying.
	SubframeBufferPadding = 32
)
