package mlsp

// scratchSize is the size of the sender's single reused datagram buffer:
// header plus the largest possible payload.
const scratchSize = HeaderSize + PacketMaxPayload

// senderState holds the sender-role-only fields of an Endpoint.
type senderState struct {
	scratch [scratchSize]byte
}

// Send transmits frame as a sequence of UDP datagrams: for each subframe
// in order, the fragmented packet sequence sharing frame.Framenumber. It
// returns an error immediately on the first send failure; packets already
// written are not rolled back — the receiver silently discards the
// resulting incomplete frame once a later one begins.
func (e *Endpoint) Send(frame OutgoingFrame) error {
	if e.closed.Load() {
		return ErrClosed
	}
	if e.role != roleSender {
		return wrapf(ErrSocket, "Send called on a receiver endpoint")
	}

	subframes := len(frame.Subframes)
	if subframes == 0 || subframes > MaxSubframes {
		return wrapf(ErrTooManySubframes, "frame declares %d subframes", subframes)
	}

	for i, sf := range frame.Subframes {
		if err := e.sendSubframe(frame.Framenumber, uint8(subframes), uint8(i), sf.Data); err != nil {
			return err
		}
	}
	return nil
}

// sendSubframe fragments and transmits one subframe's packet sequence.
func (e *Endpoint) sendSubframe(framenumber uint16, subframes, subframe uint8, data []byte) error {
	packets, _ := fragmentCounts(len(data))

	for p := 0; p < packets; p++ {
		payloadSize := packetPayloadSize(len(data), packets, p)
		offset := p * PacketMaxPayload

		encodeHeader(e.tx.scratch[:HeaderSize], header{
			framenumber: framenumber,
			subframes:   subframes,
			subframe:    subframe,
			packets:     uint16(packets),
			packet:      uint16(p),
		})
		copy(e.tx.scratch[HeaderSize:HeaderSize+payloadSize], data[offset:offset+payloadSize])

		if err := e.writeDatagram(e.tx.scratch[:HeaderSize+payloadSize]); err != nil {
			return wrapf(ErrSocket, "sendto frame=%d subframe=%d packet=%d: %v", framenumber, subframe, p, err)
		}
	}
	return nil
}

// writeDatagram loops until the full datagram is drained. A partial write
// of a UDP datagram should not occur in practice but is tolerated anyway.
func (e *Endpoint) writeDatagram(b []byte) error {
	written := 0
	for written < len(b) {
		n, err := e.conn.Write(b[written:])
		if err != nil {
			return err
		}
		written += n
	}
	return nil
}
