package plan

import (
	"fmt"
	"math"
	"sort"

	"doxa/internal/domain"
)

// Ranker scores a song; higher scores sort first
type Ranker func(domain.Song) float64

// Ranker names accepted by RankerByName
const (
	RankNone       = "none"
	RankPlayCount  = "play_count"
	RankLastPlayed = "last_played"
	RankStale      = "stale"
)

var rankers = map[string]Ranker{
	RankNone:       nil,
	RankPlayCount:  ByPlayCount,
	RankLastPlayed: ByLastPlayed,
	RankStale:      ByStaleness,
}

// RankerByName resolves a configured ranker. The empty name means no ranking.
func RankerByName(name string) (Ranker, error) {
	if name == "" {
		return nil, nil
	}
	r, ok := rankers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRanker, name)
	}
	return r, nil
}

// RankerNames lists the registered ranker names in sorted order
func RankerNames() []string {
	names := make([]string, 0, len(rankers))
	for name := range rankers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByPlayCount puts the most played songs of the last month first
func ByPlayCount(s domain.Song) float64 {
	return float64(s.TimesPlayedLastMonth)
}

// ByLastPlayed puts the most recently played songs first. Never played songs
// go last.
func ByLastPlayed(s domain.Song) float64 {
	if s.LastPlayed == nil {
		return math.Inf(-1)
	}
	return float64(s.LastPlayed.Unix())
}

// ByStaleness puts songs that have not been played for the longest time
// first. Never played songs come before everything else.
func ByStaleness(s domain.Song) float64 {
	if s.LastPlayed == nil {
		return math.Inf(1)
	}
	return -float64(s.LastPlayed.Unix())
}
