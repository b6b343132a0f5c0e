package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// Direction identifies which endpoint sent a message.
type Direction int

const (
	// DirAToB is client to server.
	DirAToB Direction = iota
	// DirBToA is server to client.
	DirBToA
)

// String returns the transcript notation for the direction.
func (d Direction) String() string {
	switch d {
	case DirAToB:
		return "A->B"
	case DirBToA:
		return "B->A"
	default:
		return "UNKNOWN"
	}
}

// Message is one SPLPv1 message as delivered by the transport: which endpoint
// sent it and the complete message text, already framed and null-free.
// The validator never mutates a Message.
type Message struct {
	Direction Direction
	Text      string
}

// Transcript record parsing errors.
var (
	ErrEmptyRecord      = errors.New("empty record")
	ErrBadDirection     = errors.New("record does not start with A->B or B->A")
	ErrMissingSeparator = errors.New("no space after direction field")
)

// ParseRecord parses one transcript record of the form
//
//	A->B CONNECT
//	B->A VERSION 2
//
// The direction field is followed by exactly one space; everything after that
// space, including any further spaces, is the message text. A trailing \r is
// stripped so CRLF transcripts parse cleanly.
func ParseRecord(line string) (Message, error) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return Message{}, ErrEmptyRecord
	}

	var dir Direction
	switch {
	case strings.HasPrefix(line, "A->B"):
		dir = DirAToB
	case strings.HasPrefix(line, "B->A"):
		dir = DirBToA
	default:
		return Message{}, fmt.Errorf("%w: %q", ErrBadDirection, line)
	}

	rest := line[len("A->B"):]
	if len(rest) == 0 || rest[0] != Separator {
		return Message{}, fmt.Errorf("%w: %q", ErrMissingSeparator, line)
	}

	return Message{Direction: dir, Text: rest[1:]}, nil
}
