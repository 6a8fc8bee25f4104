package service_test

import (
	"testing"

	"league-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCompareScorePairs(t *testing.T) {
	testCases := []struct {
		name       string
		a          service.ScorePair
		b          service.ScorePair
		wantAgreed bool
	}{
		{
			name:       "identical scores agree",
			a:          service.ScorePair{HomeScore: 2, AwayScore: 1},
			b:          service.ScorePair{HomeScore: 2, AwayScore: 1},
			wantAgreed: true,
		},
		{
			name:       "identical draw agrees",
			a:          service.ScorePair{HomeScore: 0, AwayScore: 0},
			b:          service.ScorePair{HomeScore: 0, AwayScore: 0},
			wantAgreed: true,
		},
		{
			name:       "reversed pair is a disagreement",
			a:          service.ScorePair{HomeScore: 5, AwayScore: 3},
			b:          service.ScorePair{HomeScore: 3, AwayScore: 5},
			wantAgreed: false,
		},
		{
			name:       "different home score disagrees",
			a:          service.ScorePair{HomeScore: 1, AwayScore: 1},
			b:          service.ScorePair{HomeScore: 2, AwayScore: 1},
			wantAgreed: false,
		},
		{
			name:       "different away score disagrees",
			a:          service.ScorePair{HomeScore: 1, AwayScore: 0},
			b:          service.ScorePair{HomeScore: 1, AwayScore: 2},
			wantAgreed: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := service.CompareScorePairs(tc.a, tc.b)

			assert.Equal(t, tc.wantAgreed, result.Agreed)
			if tc.wantAgreed {
				assert.Equal(t, tc.a, result.Scores)
			} else {
				assert.Zero(t, result.Scores)
			}
		})
	}
}
