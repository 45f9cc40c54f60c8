package token

import "fmt"

// Position locates a point in a source file. Line and Col are 1-based and
// count runes, Offset is the 0-based byte offset from the start of the file.
type Position struct {
	Line   int
	Col    int
	Offset int
}

// Start is the position of the first character of a file.
func Start() Position {
	return Position{Line: 1, Col: 1, Offset: 0}
}

// Advance returns the position immediately after consuming raw.
func (p Position) Advance(raw string) Position {
	for _, r := range raw {
		if r == '\n' {
			p.Line++
			p.Col = 1
		} else {
			p.Col++
		}
	}
	p.Offset += len(raw)
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("[L:%d, P:%d]", p.Line, p.Col)
}

// PositionAt computes the position of the given byte offset within src.
// Any position handed out for src can be reproduced from its offset alone.
func PositionAt(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	return Start().Advance(src[:offset])
}
