package protocol

import (
	"fmt"
)

// Character classes used by the SPLPv1 token grammars.

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isLowerAlpha(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpperAlpha(c byte) bool { return c >= 'A' && c <= 'Z' }

// isDataChar reports whether c may appear in a GET_DATA/GET_FILE/GET_COMMAND
// reply token: lowercase letters, digits and '.'. With wideAlphabet set, ':'
// and ';' are admitted as well for compatibility with a legacy validator
// build whose byte-range check let them through.
func isDataChar(c byte, wideAlphabet bool) bool {
	if isLowerAlpha(c) || isDigit(c) || c == '.' {
		return true
	}
	return wideAlphabet && (c == ':' || c == ';')
}

// isBase64Char reports whether c belongs to the standard base64 alphabet,
// padding excluded.
func isBase64Char(c byte) bool {
	return isUpperAlpha(c) || isLowerAlpha(c) || isDigit(c) || c == '+' || c == '/'
}

// cutLiteral strips a leading literal followed by exactly one space and
// returns the remainder. ok is false if the text does not start with the
// literal or the single mandatory space is missing.
func cutLiteral(text, literal string) (rest string, ok bool) {
	if len(text) <= len(literal) || text[:len(literal)] != literal {
		return "", false
	}
	if text[len(literal)] != Separator {
		return "", false
	}
	return text[len(literal)+1:], true
}

// ValidateVersionReply checks a VERSION reply: the literal VERSION, one
// space, then a non-empty run of ASCII digits to end of text. No sign, no
// embedded spaces. When allowEmpty is set, a bare "VERSION " with nothing
// after the space is accepted for legacy compatibility.
func ValidateVersionReply(text string, allowEmpty bool) error {
	suffix, ok := cutLiteral(text, RespVersion)
	if !ok {
		return fmt.Errorf("%w: want %q, space, digits", ErrBadVersion, RespVersion)
	}
	if suffix == "" && !allowEmpty {
		return fmt.Errorf("%w: empty version number", ErrBadVersion)
	}
	for i := 0; i < len(suffix); i++ {
		if !isDigit(suffix[i]) {
			return fmt.Errorf("%w: non-digit %q in version number", ErrBadVersion, suffix[i])
		}
	}
	return nil
}

// ValidateDataReply checks a data reply against the command that requested
// it: the command literal, one space, a non-empty token of data characters,
// one space, then the same command literal again to end of text. Echoing a
// different command than was requested is a violation.
func ValidateDataReply(text, command string, wideAlphabet bool) error {
	rest, ok := cutLiteral(text, command)
	if !ok {
		return fmt.Errorf("%w: want %q, space, token", ErrBadDataToken, command)
	}

	i := 0
	for i < len(rest) && rest[i] != Separator {
		if !isDataChar(rest[i], wideAlphabet) {
			return fmt.Errorf("%w: bad token character %q", ErrBadDataToken, rest[i])
		}
		i++
	}

	if i == 0 {
		return fmt.Errorf("%w: empty token", ErrBadDataToken)
	}
	if i == len(rest) {
		return fmt.Errorf("%w: missing echoed %q", ErrBadDataToken, command)
	}
	if rest[i+1:] != command {
		return fmt.Errorf("%w: reply must end with echoed %q", ErrBadDataToken, command)
	}
	return nil
}

// ValidateBase64Reply checks a B64: reply: the literal B64:, one space, then
// a base64-shaped token. The token length must be a positive multiple of 4
// and '=' may appear only as the final one or two characters; a '=' in the
// second-to-last position requires one in the last as well. The token is
// validated for shape only, never decoded.
func ValidateBase64Reply(text string) error {
	token, ok := cutLiteral(text, RespB64)
	if !ok {
		return fmt.Errorf("%w: want %q, space, token", ErrBadBase64Token, RespB64)
	}

	n := len(token)
	if n == 0 || n%Base64BlockSize != 0 {
		return fmt.Errorf("%w: token length %d is not a positive multiple of %d",
			ErrBadBase64Token, n, Base64BlockSize)
	}

	for i := 0; i < n-2; i++ {
		if !isBase64Char(token[i]) {
			return fmt.Errorf("%w: bad token character %q", ErrBadBase64Token, token[i])
		}
	}

	switch a, b := token[n-2], token[n-1]; {
	case isBase64Char(a) && isBase64Char(b):
	case isBase64Char(a) && b == Base64Pad:
	case a == Base64Pad && b == Base64Pad:
	default:
		return fmt.Errorf("%w: malformed padding %q", ErrBadBase64Token, token[n-2:])
	}

	return nil
}
