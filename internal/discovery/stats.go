package discovery

// strongCutoff splits discovered links into strong and weak bands.
const strongCutoff = 0.5

// Stats summarizes a set of discovered links for reporting.
type Stats struct {
	Total            int
	AverageStrength  float64
	Strong           int
	Weak             int
	StrongPercentage float64
}

// Summarize computes link statistics over a discovered set.
func Summarize(linked []ScoredNote) Stats {
	stats := Stats{Total: len(linked)}
	if stats.Total == 0 {
		return stats
	}

	var sum float64
	for _, l := range linked {
		sum += l.Score
		if l.Score >= strongCutoff {
			stats.Strong++
		} else {
			stats.Weak++
		}
	}

	stats.AverageStrength = sum / float64(stats.Total)
	stats.StrongPercentage = float64(stats.Strong) / float64(stats.Total) * 100
	return stats
}
