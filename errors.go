package mlsp

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Configuration errors, returned by NewSender/NewReceiver. No endpoint is
// constructed; the caller retries or aborts.
var (
	ErrMissingAddress   = errors.New("mlsp: sender requires a non-empty remote address")
	ErrTooManySubframes = errors.New("mlsp: subframes exceeds MaxSubframes")
	ErrSocket           = errors.New("mlsp: socket construction failed")
)

// ErrMalformedPacket is returned internally by header decoding for any of
// the five conditions in the wire codec's decode contract. It is never
// surfaced to a Receive caller — malformed packets are logged and dropped.
var ErrMalformedPacket = errors.New("mlsp: malformed packet")

// ErrTimeout is returned by Receive when no datagram arrived within the
// configured timeout. It is not a fault; the caller should consider
// calling Reset.
var ErrTimeout = errors.New("mlsp: receive timed out")

// ErrClosed is returned by Send/Receive once the endpoint has been closed.
var ErrClosed = errors.New("mlsp: endpoint closed")

// wrapf attaches a stack trace via github.com/pkg/errors while still
// letting callers errors.Is against the sentinel, by joining rather than
// replacing the underlying error.
func wrapf(sentinel error, format string, args ...any) error {
	return pkgerrors.WithStack(fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...))
}
