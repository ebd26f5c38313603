package mlsp

import "encoding/binary"

// header is the 8-byte, little-endian wire header that precedes every
// packet's payload.
//
//	offset size field        meaning
//	0      2    framenumber  id of the enclosing logical frame
//	2      1    subframes    total subframes this frame carries (1..3)
//	3      1    subframe     0-based index of the subframe in-flight
//	4      2    packets      total packets in this (frame, subframe)
//	6      2    packet       0-based index of this packet
type header struct {
	framenumber uint16
	subframes   uint8
	subframe    uint8
	packets     uint16
	packet      uint16
}

// encodeHeader writes h into the first HeaderSize bytes of buf. buf must
// be at least HeaderSize bytes long.
func encodeHeader(buf []byte, h header) {
	binary.LittleEndian.PutUint16(buf[0:2], h.framenumber)
	buf[2] = h.subframes
	buf[3] = h.subframe
	binary.LittleEndian.PutUint16(buf[4:6], h.packets)
	binary.LittleEndian.PutUint16(buf[6:8], h.packet)
}

// decodeHeader parses the header from a received datagram and returns the
// payload slice (datagram[HeaderSize:]). It fails with ErrMalformedPacket
// when the datagram is too short to hold a header, when the declared
// payload length exceeds PacketMaxPayload, or when the header's own fields
// are mutually inconsistent (subframe >= subframes, packet >= packets,
// subframes > MaxSubframes). No failure here should ever abort a receive
// loop — the caller drops the packet and awaits the next datagram.
func decodeHeader(datagram []byte) (header, []byte, error) {
	if len(datagram) < HeaderSize {
		return header{}, nil, wrapf(ErrMalformedPacket, "datagram length %d below header size", len(datagram))
	}

	h := header{
		framenumber: binary.LittleEndian.Uint16(datagram[0:2]),
		subframes:   datagram[2],
		subframe:    datagram[3],
		packets:     binary.LittleEndian.Uint16(datagram[4:6]),
		packet:      binary.LittleEndian.Uint16(datagram[6:8]),
	}

	payload := datagram[HeaderSize:]

	switch {
	case len(payload) > PacketMaxPayload:
		return header{}, nil, wrapf(ErrMalformedPacket, "payload length %d exceeds max %d", len(payload), PacketMaxPayload)
	case h.subframes > MaxSubframes:
		return header{}, nil, wrapf(ErrMalformedPacket, "subframes %d exceeds max %d", h.subframes, MaxSubframes)
	case h.subframe >= h.subframes:
		return header{}, nil, wrapf(ErrMalformedPacket, "subframe %d >= subframes %d", h.subframe, h.subframes)
	case h.packet >= h.packets:
		return header{}, nil, wrapf(ErrMalformedPacket, "packet %d >= packets %d", h.packet, h.packets)
	}

	return h, payload, nil
}

// fragmentCounts returns the number of packets a subframe of size bytes is
// split into, and the size of the final (possibly only) packet. A
// zero-length subframe still yields one empty packet so its existence
// registers at the receiver.
func fragmentCounts(size int) (packets int, lastPacketSize int) {
	if size == 0 {
		return 1, 0
	}
	packets = (size + PacketMaxPayload - 1) / PacketMaxPayload
	lastPacketSize = size - (packets-1)*PacketMaxPayload
	return packets, lastPacketSize
}

// packetPayloadSize returns how many payload bytes packet index p of
// packets total (for a subframe of size bytes) carries.
func packetPayloadSize(size, packets, p int) int {
	if p < packets-1 {
		return PacketMaxPayload
	}
	return size - (packets-1)*PacketMaxPayload
}
