package session

import (
	"github.com/go-splp/go-splp-validator/lib/protocol"
)

// Verdict is the result of validating one message. The effect of an invalid
// message is expressed entirely through the session's phase, which collapses
// back to PhaseInit.
type Verdict int

const (
	// VerdictInvalid means the message broke the current phase's grammar or
	// direction requirement and the session was reset.
	VerdictInvalid Verdict = iota
	// VerdictValid means the message was legal and the session advanced.
	VerdictValid
)

// String returns a human-readable representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "VALID"
	case VerdictInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// State is the complete machine state between messages: the current phase
// plus the pending data command while in PhaseWaitingData. The zero value is
// the initial state.
type State struct {
	Phase   Phase
	Pending Command
}

// Session owns the SPLPv1 state for one side of one client/server exchange.
// Independent concurrent sessions must each own their own Session; the type
// itself is not safe for concurrent use. A Session is reusable indefinitely:
// a completed disconnect or any violation returns it to PhaseInit, ready for
// the next CONNECT handshake.
type Session struct {
	cfg   Config
	state State
}

// New creates a Session in PhaseInit with the strict default configuration.
func New() *Session {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Session in PhaseInit with the given configuration.
func NewWithConfig(cfg Config) *Session {
	return &Session{cfg: cfg}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// State returns the current machine state.
func (s *Session) State() State {
	return s.state
}

// Reset returns the session to PhaseInit, discarding all progress.
func (s *Session) Reset() {
	s.state = State{}
}

// Validate judges one message against the current phase and advances the
// session. Any grammar or direction violation returns VerdictInvalid and
// resets the session to PhaseInit; there is no per-message recovery and no
// distinction between violation kinds at this surface.
func (s *Session) Validate(msg protocol.Message) Verdict {
	next, err := Advance(s.state, msg, s.cfg)
	s.state = next
	if err != nil {
		return VerdictInvalid
	}
	return VerdictValid
}

// Advance is the pure transition function over (State, Message). On a
// violation the returned state is the initial state and the error wraps the
// rule that was broken; a violation while already in PhaseInit leaves the
// state at PhaseInit, so the reset is idempotent.
func Advance(st State, msg protocol.Message, cfg Config) (State, error) {
	next, err := advance(st, msg, cfg)
	if err != nil {
		return State{}, protocol.NewViolationError(st.Phase.String(), msg.Direction, err)
	}
	return next, nil
}

func advance(st State, msg protocol.Message, cfg Config) (State, error) {
	switch st.Phase {
	case PhaseInit:
		return advanceInit(msg)
	case PhaseConnecting:
		return advanceConnecting(msg)
	case PhaseConnected:
		return advanceConnected(msg)
	case PhaseWaitingVersion:
		return advanceWaitingVersion(msg, cfg)
	case PhaseWaitingData:
		return advanceWaitingData(st.Pending, msg, cfg)
	case PhaseWaitingBase64:
		return advanceWaitingBase64(msg)
	case PhaseDisconnecting:
		return advanceDisconnecting(msg)
	default:
		return State{}, protocol.ErrUnexpectedMessage
	}
}

func advanceInit(msg protocol.Message) (State, error) {
	if msg.Direction != protocol.DirAToB {
		return State{}, protocol.ErrWrongDirection
	}
	if msg.Text != protocol.CmdConnect {
		return State{}, protocol.ErrUnexpectedMessage
	}
	return State{Phase: PhaseConnecting}, nil
}

func advanceConnecting(msg protocol.Message) (State, error) {
	if msg.Direction != protocol.DirBToA {
		return State{}, protocol.ErrWrongDirection
	}
	if msg.Text != protocol.RespConnectOK {
		return State{}, protocol.ErrUnexpectedMessage
	}
	return State{Phase: PhaseConnected}, nil
}

func advanceConnected(msg protocol.Message) (State, error) {
	if msg.Direction != protocol.DirAToB {
		return State{}, protocol.ErrWrongDirection
	}
	switch msg.Text {
	case protocol.CmdGetVer:
		return State{Phase: PhaseWaitingVersion}, nil
	case protocol.CmdGetData, protocol.CmdGetFile, protocol.CmdGetCommand:
		cmd, _ := CommandForLiteral(msg.Text)
		return State{Phase: PhaseWaitingData, Pending: cmd}, nil
	case protocol.CmdGetB64:
		return State{Phase: PhaseWaitingBase64}, nil
	case protocol.CmdDisconnect:
		return State{Phase: PhaseDisconnecting}, nil
	default:
		return State{}, protocol.ErrUnexpectedMessage
	}
}

func advanceWaitingVersion(msg protocol.Message, cfg Config) (State, error) {
	if !cfg.LenientVersionDirection && msg.Direction != protocol.DirBToA {
		return State{}, protocol.ErrWrongDirection
	}
	if err := protocol.ValidateVersionReply(msg.Text, cfg.AllowEmptyVersion); err != nil {
		return State{}, err
	}
	return State{Phase: PhaseConnected}, nil
}

func advanceWaitingData(pending Command, msg protocol.Message, cfg Config) (State, error) {
	if msg.Direction != protocol.DirBToA {
		return State{}, protocol.ErrWrongDirection
	}
	if pending == CmdNone {
		return State{}, protocol.ErrUnexpectedMessage
	}
	if err := protocol.ValidateDataReply(msg.Text, pending.Literal(), cfg.WideDataAlphabet); err != nil {
		return State{}, err
	}
	return State{Phase: PhaseConnected}, nil
}

func advanceWaitingBase64(msg protocol.Message) (State, error) {
	if msg.Direction != protocol.DirBToA {
		return State{}, protocol.ErrWrongDirection
	}
	if err := protocol.ValidateBase64Reply(msg.Text); err != nil {
		return State{}, err
	}
	return State{Phase: PhaseConnected}, nil
}

func advanceDisconnecting(msg protocol.Message) (State, error) {
	if msg.Direction != protocol.DirBToA {
		return State{}, protocol.ErrWrongDirection
	}
	if msg.Text != protocol.RespDisconnectOK {
		return State{}, protocol.ErrUnexpectedMessage
	}
	return State{Phase: PhaseInit}, nil
}
