package csscolor

import (
	"github.com/kovidgoyal/go-parallel"
)

// FormatAll renders every color with CSSAsPercentage, spreading the work
// over all CPUs. The output is in the same order as colors.
func FormatAll(colors []Rgb) (ans []string, err error) {
	ans = make([]string, len(colors))
	if len(colors) == 0 {
		return
	}
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			ans[i] = colors[i].CSSAsPercentage()
		}
	}
	err = parallel.Run_in_parallel_over_range(0, f, 0, len(colors))
	return
}
