// SPDX-License-Identifier: MIT

package linsolve_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlekseyKhaleev/Comp-Math/linsolve"
)

// TestConcurrentSolvesShareInputs runs every method in parallel on one A and b;
// run with -race to catch hidden shared state.
func TestConcurrentSolvesShareInputs(t *testing.T) {
	t.Parallel()

	a := mustDense(t, refA)
	want := make(map[linsolve.Method][]float64, len(linsolve.Methods))
	for _, m := range linsolve.Methods {
		res, err := linsolve.Solve(m, a, refB)
		require.NoError(t, err)
		want[m] = res.X
	}

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers*len(linsolve.Methods))
	got := make([][]float64, workers*len(linsolve.Methods))
	for w := 0; w < workers; w++ {
		for k, m := range linsolve.Methods {
			wg.Add(1)
			go func(slot int, m linsolve.Method) {
				defer wg.Done()
				res, err := linsolve.Solve(m, a, refB)
				if err != nil {
					errs <- err

					return
				}
				got[slot] = res.X
			}(w*len(linsolve.Methods)+k, m)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	for slot, x := range got {
		require.Equal(t, want[linsolve.Methods[slot%len(linsolve.Methods)]], x)
	}
}
