package pipeline

// Cost estimates the USD cost of a token (or character) count from the
// injected per-1K pricing table. Unknown models fall back to the gpt-4o
// rate.
func Cost(pricing map[string]float64, model string, units int) float64 {
	rate, ok := pricing[model]
	if !ok {
		rate = pricing["gpt-4o"]
	}
	return float64(units) / 1000 * rate
}
