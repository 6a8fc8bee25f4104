package service

import "league-portal-backend/internal/database/models"

// ScorePair is one submission's claimed result, home/away-relative
type ScorePair struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

// ComparisonResult is the outcome of comparing the two teams' submissions
type ComparisonResult struct {
	Agreed bool
	// Scores holds the agreed result when Agreed is true
	Scores ScorePair
}

// CompareScorePairs compares two independently submitted score pairs for exact
// agreement. Both pairs encode the result home/away-relative, so a reversed
// pair (5-3 vs 3-5) is a disagreement, not an agreement seen from the other
// side.
func CompareScorePairs(a, b ScorePair) ComparisonResult {
	if a.HomeScore == b.HomeScore && a.AwayScore == b.AwayScore {
		return ComparisonResult{Agreed: true, Scores: a}
	}
	return ComparisonResult{Agreed: false}
}

func scorePairOf(s *models.MatchResultSubmission) ScorePair {
	return ScorePair{HomeScore: s.HomeScore, AwayScore: s.AwayScore}
}
