package transform

import "github.com/example/jsmin/token"

const (
	firstChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ$_"
	restChars  = firstChars + "0123456789"
)

// nameGen yields short identifiers in a fixed order: every one-character
// name, then every two-character name, and so on. Each scope gets its own
// generator.
type nameGen struct {
	n int
}

func (g *nameGen) next() string {
	for {
		name := shortName(g.n)
		g.n++
		if !token.IsReserved(name) {
			return name
		}
	}
}

// shortName returns the i-th name of the sequence.
func shortName(i int) string {
	if i < len(firstChars) {
		return firstChars[i : i+1]
	}
	i -= len(firstChars)
	tail := 1
	count := len(firstChars) * len(restChars)
	for i >= count {
		i -= count
		tail++
		count *= len(restChars)
	}
	buf := make([]byte, tail+1)
	for k := tail; k > 0; k-- {
		buf[k] = restChars[i%len(restChars)]
		i /= len(restChars)
	}
	buf[0] = firstChars[i]
	return string(buf)
}
