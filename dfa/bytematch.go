package dfa

import "github.com/coregx/langcore/internal/bytesimd"

// MatchBytes is Match specialized for byte-symbol DFAs. It behaves
// identically to Match but, whenever the current state self-loops across
// the entire ASCII range, skips the leading ASCII run in one SIMD-checked
// scan (internal/bytesimd) instead of stepping the transition table one
// byte at a time.
func MatchBytes(d *DFA[byte], input []byte) (prefix, rest []byte, ok bool) {
	cur := d.Initial()
	lastAccept := -1
	if d.IsFinal(cur) {
		lastAccept = 0
	}
	loopsOnASCII := make(map[StateID]bool)
	isASCIISelfLoop := func(s StateID) bool {
		if v, cached := loopsOnASCII[s]; cached {
			return v
		}
		v := true
		for b := 0; b < 0x80; b++ {
			next, exists := d.Step(s, byte(b))
			if !exists || next != s {
				v = false
				break
			}
		}
		loopsOnASCII[s] = v
		return v
	}

	i := 0
	n := len(input)
	for i < n {
		if isASCIISelfLoop(cur) {
			run := bytesimd.ASCIIRunLength(input[i:])
			if run > 0 {
				i += run
				if d.IsFinal(cur) {
					lastAccept = i
				}
				continue
			}
		}
		next, exists := d.Step(cur, input[i])
		if !exists {
			break
		}
		cur = next
		i++
		if d.IsFinal(cur) {
			lastAccept = i
		}
	}
	if lastAccept < 0 {
		return nil, nil, false
	}
	return input[:lastAccept], input[lastAccept:], true
}

// ContainsBytes is Contains specialized for byte-symbol DFAs, using the
// same ASCII self-loop acceleration as MatchBytes.
func ContainsBytes(d *DFA[byte], input []byte) bool {
	prefix, rest, ok := MatchBytes(d, input)
	return ok && len(rest) == 0 && len(prefix) == len(input)
}
