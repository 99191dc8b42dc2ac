// SPDX-License-Identifier: MIT

package pit

import (
	"fmt"
	"strings"
)

// Mode selects how the loss callback is interpreted.
type Mode int

const (
	// PairwiseMatrix: the callback returns the full [batch, n_src, n_src]
	// pairwise matrix itself.
	PairwiseMatrix Mode = iota

	// PairwisePointwise: the callback scores one (estimate, reference) pair
	// and returns [batch]; the matrix is built with n_src² calls.
	PairwisePointwise

	// PermutationAverage: the callback scores a whole permuted estimate stack
	// against the references and returns [batch].
	PermutationAverage

	// MixtureInvariant: estimates are summed into equal-size groups, one per
	// reference mixture; the callback scores the mixtures.
	MixtureInvariant

	// MixtureInvariantGeneralized: like MixtureInvariant for exactly two
	// mixtures whose groups may differ in size or be empty.
	MixtureInvariantGeneralized
)

var modeNames = [...]struct{ name, alias string }{
	PairwiseMatrix:              {"pairwise-matrix", "pw_mtx"},
	PairwisePointwise:           {"pairwise-pointwise", "pw_pt"},
	PermutationAverage:          {"permutation-average", "perm_avg"},
	MixtureInvariant:            {"mixture-invariant", "mix_it"},
	MixtureInvariantGeneralized: {"mixture-invariant-generalized", "mix_it_gen"},
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modeNames))
	for i := range out {
		out[i] = Mode(i)
	}

	return out
}

// Valid reports whether m is one of the five modes.
func (m Mode) Valid() bool { return m >= 0 && int(m) < len(modeNames) }

// String returns the long name, e.g. "pairwise-matrix".
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m].name
}

// Alias returns the short name, e.g. "pw_mtx", or "" for an invalid mode.
func (m Mode) Alias() string {
	if !m.Valid() {
		return ""
	}

	return modeNames[m].alias
}

// Pairwise reports whether m searches permutations over a pairwise matrix,
// the only modes a Reduction applies to.
func (m Mode) Pairwise() bool { return m == PairwiseMatrix || m == PairwisePointwise }

// ParseMode resolves a long name or a short alias, ignoring case and
// surrounding spaces.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if key == n.name || key == n.alias {
			return Mode(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
