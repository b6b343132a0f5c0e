// Package protocol implements SPLPv1 message records and per-phase grammar
// validation. SPLPv1 is a line-oriented, case-sensitive ASCII protocol
// between a client ("A") and a server ("B").
package protocol

// SPLPv1 request literals sent by the client (A->B).
const (
	CmdConnect    = "CONNECT"
	CmdGetVer     = "GET_VER"
	CmdGetData    = "GET_DATA"
	CmdGetFile    = "GET_FILE"
	CmdGetCommand = "GET_COMMAND"
	CmdGetB64     = "GET_B64"
	CmdDisconnect = "DISCONNECT"
)

// SPLPv1 reply literals sent by the server (B->A).
const (
	RespConnectOK    = "CONNECT_OK"
	RespVersion      = "VERSION"
	RespB64          = "B64:"
	RespDisconnectOK = "DISCONNECT_OK"
)

// Separator is the only whitespace SPLPv1 tolerates: a single ASCII space.
// No tabs, runs of spaces, or trailing whitespace anywhere the grammar calls
// for a separator.
const Separator = ' '

// Base64 token rules for GET_B64 replies.
const (
	Base64Pad       = '='
	Base64BlockSize = 4
)
