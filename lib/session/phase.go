// Package session implements SPLPv1 session state tracking. A Session holds
// one side's view of the protocol phase and judges each exchanged message
// against the grammar and direction that phase requires.
package session

import (
	"github.com/go-splp/go-splp-validator/lib/protocol"
)

// Phase is the session's current position in the SPLPv1 state machine.
type Phase int

const (
	// PhaseInit is the initial phase; only CONNECT is accepted.
	PhaseInit Phase = iota
	// PhaseConnecting means the client awaits connection approval.
	PhaseConnecting
	// PhaseConnected means the handshake completed; the client may issue requests.
	PhaseConnected
	// PhaseWaitingVersion means a GET_VER was issued and a VERSION reply is due.
	PhaseWaitingVersion
	// PhaseWaitingData means a data request was issued and its echo reply is due.
	PhaseWaitingData
	// PhaseWaitingBase64 means a GET_B64 was issued and a B64: reply is due.
	PhaseWaitingBase64
	// PhaseDisconnecting means a DISCONNECT was issued and DISCONNECT_OK is due.
	PhaseDisconnecting
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "INIT"
	case PhaseConnecting:
		return "CONNECTING"
	case PhaseConnected:
		return "CONNECTED"
	case PhaseWaitingVersion:
		return "WAITING_VER"
	case PhaseWaitingData:
		return "WAITING_DATA"
	case PhaseWaitingBase64:
		return "WAITING_B64_DATA"
	case PhaseDisconnecting:
		return "DISCONNECTING"
	default:
		return "UNKNOWN"
	}
}

// Command identifies which data request is pending while the session is in
// PhaseWaitingData. The reply must echo exactly this command on both sides
// of its token.
type Command int

const (
	// CmdNone means no data request is pending.
	CmdNone Command = iota
	// CmdData is a pending GET_DATA request.
	CmdData
	// CmdFile is a pending GET_FILE request.
	CmdFile
	// CmdCommand is a pending GET_COMMAND request.
	CmdCommand
)

// Literal returns the wire literal for the command, or "" for CmdNone.
func (c Command) Literal() string {
	switch c {
	case CmdData:
		return protocol.CmdGetData
	case CmdFile:
		return protocol.CmdGetFile
	case CmdCommand:
		return protocol.CmdGetCommand
	default:
		return ""
	}
}

// String returns the wire literal, or "NONE" for CmdNone.
func (c Command) String() string {
	if c == CmdNone {
		return "NONE"
	}
	return c.Literal()
}

// CommandForLiteral maps a wire literal to its Command.
func CommandForLiteral(text string) (Command, bool) {
	switch text {
	case protocol.CmdGetData:
		return CmdData, true
	case protocol.CmdGetFile:
		return CmdFile, true
	case protocol.CmdGetCommand:
		return CmdCommand, true
	default:
		return CmdNone, false
	}
}
