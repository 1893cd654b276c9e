package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSA2-Thesis/crossword-solver/models"
)

func summary(algo models.Algorithm, accuracy, execTime, memory float64) *models.AlgorithmSummary {
	return &models.AlgorithmSummary{
		Algorithm:        algo,
		AvgAccuracy:      accuracy,
		AvgWordAccuracy:  accuracy,
		AvgExecutionTime: execTime,
		AvgMemoryUsage:   memory,
		Count:            5,
	}
}

func TestRankAlgorithmsEmpty(t *testing.T) {
	assert.Nil(t, RankAlgorithms(nil))
	assert.Nil(t, RankAlgorithms([]*models.AlgorithmSummary{}))
}

func TestRankAccuracySeedChaining(t *testing.T) {
	// Every candidate is compared against the first leader's value,
	// not a running best. 0.91 joins because it is within 0.02 of the
	// seed 0.92, even though 0.935 is already in the group.
	summaries := []*models.AlgorithmSummary{
		summary(models.AlgorithmDFS, 0.92, 1, 1),
		summary(models.AlgorithmAStar, 0.935, 1, 1),
		summary(models.AlgorithmHybrid, 0.91, 1, 1),
	}

	ranking := RankAlgorithms(summaries)
	require.NotNil(t, ranking)
	require.Len(t, ranking.BestAccuracy, 3)
	assert.Equal(t, models.AlgorithmDFS, ranking.BestAccuracy[0].Algorithm)
	assert.Equal(t, models.AlgorithmHybrid, ranking.BestAccuracy[2].Algorithm)
}

func TestRankAccuracyStrictlyBetterReplacesGroup(t *testing.T) {
	// 0.905 ties with the seed 0.90; 0.95 is outside the tolerance
	// and strictly better, so it replaces the whole group and becomes
	// the new seed.
	summaries := []*models.AlgorithmSummary{
		summary(models.AlgorithmDFS, 0.90, 1, 1),
		summary(models.AlgorithmAStar, 0.905, 1, 1),
		summary(models.AlgorithmHybrid, 0.95, 1, 1),
	}

	ranking := RankAlgorithms(summaries)
	require.Len(t, ranking.BestAccuracy, 1)
	assert.Equal(t, models.AlgorithmHybrid, ranking.BestAccuracy[0].Algorithm)
}

func TestRankAccuracyWorseCandidateDiscarded(t *testing.T) {
	summaries := []*models.AlgorithmSummary{
		summary(models.AlgorithmDFS, 0.95, 1, 1),
		summary(models.AlgorithmAStar, 0.80, 1, 1),
	}

	ranking := RankAlgorithms(summaries)
	require.Len(t, ranking.BestAccuracy, 1)
	assert.Equal(t, models.AlgorithmDFS, ranking.BestAccuracy[0].Algorithm)
}

func TestRankFastestLowerIsBetter(t *testing.T) {
	summaries := []*models.AlgorithmSummary{
		summary(models.AlgorithmDFS, 0.9, 1.50, 1),
		summary(models.AlgorithmAStar, 0.9, 0.30, 1),
		summary(models.AlgorithmHybrid, 0.9, 0.35, 1),
	}

	ranking := RankAlgorithms(summaries)

	// A* replaces the slow seed; HYBRID ties within 0.1s of A*.
	require.Len(t, ranking.Fastest, 2)
	assert.Equal(t, models.AlgorithmAStar, ranking.Fastest[0].Algorithm)
	assert.Equal(t, models.AlgorithmHybrid, ranking.Fastest[1].Algorithm)
}

func TestRankMostEfficientMemoryTolerance(t *testing.T) {
	summaries := []*models.AlgorithmSummary{
		summary(models.AlgorithmDFS, 0.9, 1, 2000),
		summary(models.AlgorithmAStar, 0.9, 1, 2900), // within 1024 KB of seed
		summary(models.AlgorithmHybrid, 0.9, 1, 8000),
	}

	ranking := RankAlgorithms(summaries)
	require.Len(t, ranking.MostEfficient, 2)
	assert.Equal(t, models.AlgorithmDFS, ranking.MostEfficient[0].Algorithm)
	assert.Equal(t, models.AlgorithmAStar, ranking.MostEfficient[1].Algorithm)
}

func TestOverallBestBalancesMetrics(t *testing.T) {
	// DFS wins on accuracy alone, but its speed and memory drag the
	// composite score below A*.
	dfs := summary(models.AlgorithmDFS, 0.95, 2.0, 10000)
	astar := summary(models.AlgorithmAStar, 0.90, 0.5, 3000)

	ranking := RankAlgorithms([]*models.AlgorithmSummary{dfs, astar})
	assert.Equal(t, models.AlgorithmAStar, ranking.OverallBest.Algorithm)
}

func TestOverallBestTieKeepsInputOrder(t *testing.T) {
	first := summary(models.AlgorithmDFS, 0.9, 0.5, 2000)
	second := summary(models.AlgorithmAStar, 0.9, 0.5, 2000)

	ranking := RankAlgorithms([]*models.AlgorithmSummary{first, second})
	assert.Same(t, first, ranking.OverallBest)
}

func TestInsightsPhrasing(t *testing.T) {
	dfs := summary(models.AlgorithmDFS, 0.95, 0.2, 2000)
	astar := summary(models.AlgorithmAStar, 0.90, 0.21, 2100)
	hybrid := summary(models.AlgorithmHybrid, 0.91, 0.9, 2200)

	tests := []struct {
		name    string
		ranking *models.Ranking
		total   int
		index   int
		want    string
	}{
		{
			name:    "singleton leader",
			ranking: &models.Ranking{BestAccuracy: []*models.AlgorithmSummary{dfs}},
			total:   3,
			index:   0,
			want:    "DFS achieved the best accuracy at 95.0%.",
		},
		{
			name: "all tied",
			ranking: &models.Ranking{
				Fastest: []*models.AlgorithmSummary{dfs, astar, hybrid},
			},
			total: 3,
			index: 1,
			want:  "All algorithms ran in comparable time around 0.200s.",
		},
		{
			name: "partial tie",
			ranking: &models.Ranking{
				MostEfficient: []*models.AlgorithmSummary{dfs, astar},
			},
			total: 3,
			index: 2,
			want:  "DFS and A* tied for the most memory-efficient at 2000 KB.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := Insights(tt.ranking, tt.total)
			require.Greater(t, len(insights), tt.index)
			assert.Equal(t, tt.want, insights[tt.index])
		})
	}
}

func TestInsightsNilRanking(t *testing.T) {
	assert.Nil(t, Insights(nil, 0))
}

func TestInsightsIncludesOverallBest(t *testing.T) {
	summaries := []*models.AlgorithmSummary{
		summary(models.AlgorithmDFS, 0.9, 0.5, 2000),
		summary(models.AlgorithmHybrid, 0.92, 0.3, 1500),
	}
	ranking := RankAlgorithms(summaries)

	insights := Insights(ranking, len(summaries))
	require.Len(t, insights, 4)
	assert.Contains(t, insights[3], string(ranking.OverallBest.Algorithm))
	assert.Contains(t, insights[3], "best overall choice")
}
