package usecase

import (
	"math"
	"time"

	filtersdomain "dora-metrics-service/internal/filters/core/domain"
	filtersusecase "dora-metrics-service/internal/filters/core/usecase"
)

const defaultLookback = 30 * 24 * time.Hour

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// effectiveRange is the window echoed back to the client: the resolved
// bounds when the caller supplied any, otherwise the span of the rows
// that actually came back, otherwise the default lookback ending at the
// plan instant.
func effectiveRange(resolved filtersusecase.ResolvedDateRange, dates []time.Time, now time.Time) filtersdomain.DateRange {
	if !resolved.Deferred {
		return resolved.Range
	}

	if len(dates) > 0 {
		min, max := dates[0], dates[0]
		for _, d := range dates[1:] {
			if d.Before(min) {
				min = d
			}
			if d.After(max) {
				max = d
			}
		}
		return filtersdomain.DateRange{Start: min, End: max}
	}

	end := now.UTC()
	return filtersdomain.DateRange{Start: end.Add(-defaultLookback), End: end}
}

// weightedMean is the count-weighted mean of per-day medians:
// sum(median_i * count_i) / sum(count_i). Days with a non-positive
// median or weight carry no signal and are excluded from both sides of
// the ratio, so a simple average over the surviving days agrees with the
// weighted figure when all weights are equal. Empty input yields 0.
func weightedMean(medians []float64, weights []int64) float64 {
	var sum float64
	var total int64

	for i, m := range medians {
		w := weights[i]
		if m <= 0 || w <= 0 {
			continue
		}
		sum += m * float64(w)
		total += w
	}

	if total == 0 {
		return 0
	}
	return round2(sum / float64(total))
}

// ratePercent computes failed/total as a percentage, 0 when total is 0.
func ratePercent(failed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(failed) / float64(total) * 100)
}
