package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/CSA2-Thesis/crossword-solver/models"
)

// Tolerance thresholds for leader selection. All three are absolute:
// accuracy as a fraction, execution time in seconds, memory in KB.
const (
	accuracyTolerance = 0.02
	timeTolerance     = 0.1
	memoryTolerance   = 1024.0
)

// Composite score weights for the overall-best pick. The inverse time
// and inverse memory terms are scaled so all three land in a
// comparable range for typical runs (sub-second solves, a few MB).
const (
	accuracyWeight = 0.4
	timeWeight     = 0.3
	memoryWeight   = 3000.0
)

// RankAlgorithms classifies summaries into tolerance-banded leader
// groups for accuracy, speed and memory, plus a composite overall
// winner. Empty input yields nil.
//
// Leader selection seeds the group with the first summary and compares
// every later candidate against the seed's value, not a running best:
// a candidate within tolerance of the seed joins the group, one
// strictly better than the seed replaces the whole group and becomes
// the new seed, anything else is discarded. The chaining is therefore
// order-dependent, and consumers rely on that (a group can legitimately
// hold a value that a later, discarded candidate beat).
func RankAlgorithms(summaries []*models.AlgorithmSummary) *models.Ranking {
	if len(summaries) == 0 {
		return nil
	}

	return &models.Ranking{
		BestAccuracy: selectLeaders(summaries,
			func(s *models.AlgorithmSummary) float64 { return s.AvgAccuracy },
			accuracyTolerance, true),
		Fastest: selectLeaders(summaries,
			func(s *models.AlgorithmSummary) float64 { return s.AvgExecutionTime },
			timeTolerance, false),
		MostEfficient: selectLeaders(summaries,
			func(s *models.AlgorithmSummary) float64 { return s.AvgMemoryUsage },
			memoryTolerance, false),
		OverallBest: pickOverallBest(summaries),
	}
}

// selectLeaders runs the seeded tolerance chain for one metric.
// higherIsBetter flips the strict comparison for accuracy.
//
// The comparison target is always leaders[0], not a running best, and
// a strictly better out-of-tolerance candidate discards the whole
// group. Do not rewrite this as min/max-within-tolerance: the
// order-dependent chaining is intentional and callers depend on it
// (see TestRankAccuracySeedChaining).
func selectLeaders(summaries []*models.AlgorithmSummary, metric func(*models.AlgorithmSummary) float64, tolerance float64, higherIsBetter bool) []*models.AlgorithmSummary {
	leaders := []*models.AlgorithmSummary{summaries[0]}

	for _, candidate := range summaries[1:] {
		seed := metric(leaders[0])
		value := metric(candidate)

		switch {
		case math.Abs(value-seed) <= tolerance:
			leaders = append(leaders, candidate)
		case higherIsBetter && value > seed,
			!higherIsBetter && value < seed:
			leaders = []*models.AlgorithmSummary{candidate}
		}
	}
	return leaders
}

// pickOverallBest scores every summary and returns the first strict
// maximum in input order.
func pickOverallBest(summaries []*models.AlgorithmSummary) *models.AlgorithmSummary {
	best := summaries[0]
	bestScore := overallScore(best)
	for _, s := range summaries[1:] {
		if score := overallScore(s); score > bestScore {
			best = s
			bestScore = score
		}
	}
	return best
}

// overallScore is the weighted composite of accuracy, inverse time and
// inverse memory. Zero denominators contribute nothing.
func overallScore(s *models.AlgorithmSummary) float64 {
	score := s.AvgAccuracy * accuracyWeight
	if s.AvgExecutionTime > 0 {
		score += (1 / s.AvgExecutionTime) * timeWeight
	}
	if s.AvgMemoryUsage > 0 {
		score += (1 / s.AvgMemoryUsage) * memoryWeight
	}
	return score
}

// Insights renders the leader groups as human-readable sentences.
// total is the number of algorithms that were ranked; the phrasing
// distinguishes a single leader, a full tie across all algorithms, and
// a partial tie.
func Insights(r *models.Ranking, total int) []string {
	if r == nil {
		return nil
	}

	insights := []string{
		groupInsight(r.BestAccuracy, total,
			"%s achieved the best accuracy at %s.",
			"All algorithms achieved comparable accuracy around %s.",
			"%s tied for the best accuracy at %s.",
			func(s *models.AlgorithmSummary) string {
				return fmt.Sprintf("%.1f%%", s.AvgAccuracy*100)
			}),
		groupInsight(r.Fastest, total,
			"%s was the fastest at %s.",
			"All algorithms ran in comparable time around %s.",
			"%s tied for the fastest at %s.",
			func(s *models.AlgorithmSummary) string {
				return fmt.Sprintf("%.3fs", s.AvgExecutionTime)
			}),
		groupInsight(r.MostEfficient, total,
			"%s was the most memory-efficient at %s.",
			"All algorithms used comparable memory around %s.",
			"%s tied for the most memory-efficient at %s.",
			func(s *models.AlgorithmSummary) string {
				return fmt.Sprintf("%.0f KB", s.AvgMemoryUsage)
			}),
	}

	if r.OverallBest != nil {
		insights = append(insights, fmt.Sprintf(
			"%s is the best overall choice, balancing accuracy, speed and memory.",
			r.OverallBest.Algorithm))
	}
	return insights
}

// groupInsight picks the phrasing for one leader group: singleton, all
// tied, or a partial tie.
func groupInsight(group []*models.AlgorithmSummary, total int, single, all, partial string, value func(*models.AlgorithmSummary) string) string {
	if len(group) == 0 {
		return ""
	}

	switch {
	case len(group) == 1:
		return fmt.Sprintf(single, group[0].Algorithm, value(group[0]))
	case len(group) >= total:
		return fmt.Sprintf(all, value(group[0]))
	default:
		return fmt.Sprintf(partial, joinAlgorithms(group), value(group[0]))
	}
}

func joinAlgorithms(group []*models.AlgorithmSummary) string {
	names := make([]string, len(group))
	for i, s := range group {
		names[i] = string(s.Algorithm)
	}
	if len(names) <= 2 {
		return strings.Join(names, " and ")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
