package notation

import (
	"regexp"
	"strings"
)

var (
	squareRe = regexp.MustCompile(`^[a-h][1-8]$`)
	uciRe    = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)
	sanRe    = regexp.MustCompile(`^([KQRBN])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:=?([QRBN]))?$`)
	lanRe    = regexp.MustCompile(`^([KQRBN])?([a-h][1-8])([-x:])([a-h][1-8])(?:=?([QRBN]))?$`)
)

// ValidSquare reports whether text is an algebraic square such as "e4".
func ValidSquare(text string) bool { return squareRe.MatchString(text) }

// ValidUCI reports whether text is syntactically a UCI move.
func ValidUCI(text string) bool { return uciRe.MatchString(text) }

// ValidSAN reports whether text is syntactically SAN, castling included.
func ValidSAN(text string) bool {
	body := stripSuffix(text)
	if isCastle(body) {
		return true
	}
	return sanRe.MatchString(body)
}

// ValidLAN reports whether text is syntactically long algebraic.
func ValidLAN(text string) bool {
	body := stripSuffix(text)
	if isCastle(body) {
		return true
	}
	return lanRe.MatchString(body)
}

// stripSuffix drops check, mate and annotation marks and normalises the
// zero-based castling spelling.
func stripSuffix(text string) string {
	body := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	body = strings.ReplaceAll(body, "0", "O")
	return body
}

func isCastle(body string) bool { return body == "O-O" || body == "O-O-O" }
