package mlsp

import (
	"net"
	"strconv"
	"sync/atomic"

	pkgerrors "github.com/pkg/errors"
)

// role distinguishes a sender endpoint (knows a remote address) from a
// receiver endpoint (bound to a local address, owns the reassembly state
// machine).
type role int

const (
	roleSender role = iota
	roleReceiver
)

// Endpoint is the single, symmetric object through which a caller sends
// or receives logical frames. Role is fixed at construction. All public
// operations are synchronous and run on the caller's thread — there is no
// internal goroutine and no cross-thread synchronization; an Endpoint
// must not be used concurrently from two goroutines.
type Endpoint struct {
	role role
	conn *net.UDPConn
	opts options

	closed atomic.Bool

	tx senderState
	rx receiverState
}

// NewSender constructs a sender endpoint. cfg.IP and cfg.Port identify the
// remote peer; a missing address is a construction error and no endpoint
// is returned.
func NewSender(cfg Config, opt ...Option) (*Endpoint, error) {
	if cfg.IP == "" {
		return nil, ErrMissingAddress
	}

	raddr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(cfg.IP, strconv.Itoa(int(cfg.Port))))
	if err != nil {
		return nil, pkgerrors.Wrap(ErrSocket, err.Error())
	}

	conn, err := net.DialUDP("udp4", nil, raddr)
	if err != nil {
		return nil, pkgerrors.Wrap(ErrSocket, err.Error())
	}

	return &Endpoint{
		role: roleSender,
		conn: conn,
		opts: resolveOptions(opt),
	}, nil
}

// NewReceiver constructs a receiver endpoint bound to cfg.IP:cfg.Port
// (an empty cfg.IP binds to any local address). If cfg.TimeoutMS > 0, a
// receive timeout is installed that surfaces as ErrTimeout from Receive.
// cfg.Subframes (0 counts as 1) must not exceed MaxSubframes; it is only
// range-checked here. Receive judges frame completion against the subframe
// count carried in each packet's header.
func NewReceiver(cfg Config, opt ...Option) (*Endpoint, error) {
	if cfg.subframeCount() > MaxSubframes {
		return nil, ErrTooManySubframes
	}

	laddr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(cfg.IP, strconv.Itoa(int(cfg.Port))))
	if err != nil {
		return nil, pkgerrors.Wrap(ErrSocket, err.Error())
	}

	conn, err := net.ListenUDP("udp4", laddr)
	if err != nil {
		return nil, pkgerrors.Wrap(ErrSocket, err.Error())
	}

	e := &Endpoint{
		role: roleReceiver,
		conn: conn,
		opts: resolveOptions(opt),
	}
	e.rx.receiveTimeout = cfg.receiveTimeout()
	return e, nil
}

// Close releases the endpoint's socket. Any in-flight Receive unblocks
// with ErrClosed. Safe to call more than once.
func (e *Endpoint) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	return e.conn.Close()
}

// Addr returns the endpoint's local socket address.
func (e *Endpoint) Addr() net.Addr {
	return e.conn.LocalAddr()
}
