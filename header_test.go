package mlsp

import (
	"errors"
	"testing"
)

func TestEncodeDecodeHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, HeaderSize+5)
	encodeHeader(buf, header{framenumber: 7, subframes: 2, subframe: 1, packets: 3, packet: 2})
	copy(buf[HeaderSize:], []byte("HELLO"))

	h, payload, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if h.framenumber != 7 || h.subframes != 2 || h.subframe != 1 || h.packets != 3 || h.packet != 2 {
		t.Errorf("decoded header mismatch: %+v", h)
	}
	if string(payload) != "HELLO" {
		t.Errorf("payload = %q, want HELLO", payload)
	}
}

func TestDecodeHeaderShortDatagram(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		_, _, err := decodeHeader(make([]byte, n))
		if !errors.Is(err, ErrMalformedPacket) {
			t.Errorf("len=%d: err = %v, want ErrMalformedPacket", n, err)
		}
	}
}

func TestDecodeHeaderPayloadTooLarge(t *testing.T) {
	buf := make([]byte, HeaderSize+PacketMaxPayload+1)
	encodeHeader(buf, header{framenumber: 1, subframes: 1, subframe: 0, packets: 1, packet: 0})

	_, _, err := decodeHeader(buf)
	if !errors.Is(err, ErrMalformedPacket) {
		t.Errorf("err = %v, want ErrMalformedPacket", err)
	}
}

func TestDecodeHeaderSubframesOverMax(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encodeHeader(buf, header{framenumber: 1, subframes: MaxSubframes + 1, subframe: 0, packets: 1, packet: 0})

	_, _, err := decodeHeader(buf)
	if !errors.Is(err, ErrMalformedPacket) {
		t.Errorf("err = %v, want ErrMalformedPacket", err)
	}
}

func TestDecodeHeaderSubframeIndexOutOfRange(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encodeHeader(buf, header{framenumber: 1, subframes: 2, subframe: 2, packets: 1, packet: 0})

	_, _, err := decodeHeader(buf)
	if !errors.Is(err, ErrMalformedPacket) {
		t.Errorf("err = %v, want ErrMalformedPacket", err)
	}
}

func TestDecodeHeaderPacketIndexOutOfRange(t *testing.T) {
	buf := make([]byte, HeaderSize)
	encodeHeader(buf, header{framenumber: 1, subframes: 1, subframe: 0, packets: 2, packet: 2})

	_, _, err := decodeHeader(buf)
	if !errors.Is(err, ErrMalformedPacket) {
		t.Errorf("err = %v, want ErrMalformedPacket", err)
	}
}

func TestFragmentCountsZeroSize(t *testing.T) {
	packets, last := fragmentCounts(0)
	if packets != 1 || last != 0 {
		t.Errorf("fragmentCounts(0) = (%d, %d), want (1, 0)", packets, last)
	}
}

func TestFragmentCountsExactMultiple(t *testing.T) {
	packets, last := fragmentCounts(3 * PacketMaxPayload)
	if packets != 3 {
		t.Fatalf("packets = %d, want 3", packets)
	}
	if last != PacketMaxPayload {
		t.Errorf("last packet size = %d, want %d (terminal packet must not be empty)", last, PacketMaxPayload)
	}
}

func TestFragmentCountsOneByte(t *testing.T) {
	packets, last := fragmentCounts(1)
	if packets != 1 || last != 1 {
		t.Errorf("fragmentCounts(1) = (%d, %d), want (1, 1)", packets, last)
	}
}

func TestFragmentCountsRemainder(t *testing.T) {
	packets, last := fragmentCounts(3500)
	if packets != 3 {
		t.Fatalf("packets = %d, want 3", packets)
	}
	if last != 700 {
		t.Errorf("last packet size = %d, want 700", last)
	}
}

func TestPacketPayloadSize(t *testing.T) {
	size, packets := 3500, 3
	got := []int{
		packetPayloadSize(size, packets, 0),
		packetPayloadSize(size, packets, 1),
		packetPayloadSize(size, packets, 2),
	}
	want := []int{1400, 1400, 700}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("packetPayloadSize(packet=%d) = %d, want %d", i, got[i], want[i])
		}
	}
}
