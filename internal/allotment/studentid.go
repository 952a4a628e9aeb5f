package allotment

import (
	"math/big"
	"strings"
)

// NextID increments the trailing digit run of id by one, keeping its
// zero-padded width. ok is false when id has no trailing digits, in which
// case id is returned unchanged.
func NextID(id string) (string, bool) {
	return stepID(id, 1)
}

// PrevID decrements the trailing digit run of id by one, floored at zero.
func PrevID(id string) (string, bool) {
	return stepID(id, -1)
}

func stepID(id string, delta int64) (string, bool) {
	prefix, digits := splitDigits(id)
	if digits == "" {
		return id, false
	}

	// big.Int so long register numbers never overflow.
	n, _ := new(big.Int).SetString(digits, 10)
	n.Add(n, big.NewInt(delta))
	if n.Sign() < 0 {
		n.SetInt64(0)
	}

	s := n.String()
	if pad := len(digits) - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return prefix + s, true
}

// splitDigits splits id into the shortest prefix and the trailing digit run.
func splitDigits(id string) (prefix, digits string) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	return id[:i], id[i:]
}
