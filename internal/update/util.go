package update

import "github.com/sandeepkv93/tasklite/internal/model"

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}

func filterIndex(f model.Filter) int {
	for i, candidate := range model.Filters {
		if candidate == f {
			return i
		}
	}
	return 0
}
