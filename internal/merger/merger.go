// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"math"

	"github.com/MKhiriev/go-study-sync/models"
)

// RulesVersion identifies the merge rules implemented by this package. It is
// sent as merge_version with every push so the backend can tell which rules
// the device applies to merged_back.
const RulesVersion = 1

// xpPerLevelUnit scales the level curve: level n starts at
// xpPerLevelUnit*(n-1)^2 total XP.
const xpPerLevelUnit = 100

// MergeSrsCard merges two scheduling states of the same study item.
func MergeSrsCard(local, remote models.SrsCard) models.SrsCard {
	merged := remote
	merged.Scheduling = mergeScheduling(local.Scheduling, remote.Scheduling)
	return merged
}

// MergeVocabSrsCard merges two scheduling states of the same vocabulary entry.
func MergeVocabSrsCard(local, remote models.VocabSrsCard) models.VocabSrsCard {
	merged := remote
	merged.Scheduling = mergeScheduling(local.Scheduling, remote.Scheduling)
	return merged
}

// mergeScheduling keeps the scheduling state of the further progressed review
// run and unions the cumulative counters.
func mergeScheduling(local, remote models.Scheduling) models.Scheduling {
	merged := remote
	if schedulingAhead(local, remote) {
		merged = local
	}

	merged.TotalReviews = max(local.TotalReviews, remote.TotalReviews)
	merged.CorrectCount = max(local.CorrectCount, remote.CorrectCount)
	merged.NextReview = max(local.NextReview, remote.NextReview)

	return merged
}

// schedulingAhead reports whether a progressed further than b: more
// repetitions, then a longer interval. Remaining ties are broken on ease
// factor and state so the choice never depends on which side is local.
func schedulingAhead(a, b models.Scheduling) bool {
	if a.Repetitions != b.Repetitions {
		return a.Repetitions > b.Repetitions
	}
	if a.Interval != b.Interval {
		return a.Interval > b.Interval
	}
	if a.EaseFactor != b.EaseFactor {
		return a.EaseFactor > b.EaseFactor
	}
	return a.State > b.State
}

// MergeUserProfile merges two profiles. Level is derived from the merged XP
// instead of being merged, and the daily goal is owned by the server.
func MergeUserProfile(local, remote models.UserProfile) models.UserProfile {
	totalXP := max(local.TotalXP, remote.TotalXP)

	return models.UserProfile{
		TotalXP:       totalXP,
		Level:         LevelForXP(totalXP),
		CurrentStreak: max(local.CurrentStreak, remote.CurrentStreak),
		LongestStreak: max(local.LongestStreak, remote.LongestStreak),
		LastStudyDate: max(local.LastStudyDate, remote.LastStudyDate),
		DailyGoal:     remote.DailyGoal,
	}
}

// LevelForXP returns the level reached with totalXP experience points.
// Level 1 starts at 0 XP, level n at 100*(n-1)^2 XP.
func LevelForXP(totalXP int64) int {
	if totalXP <= 0 {
		return 1
	}

	level := int(math.Sqrt(float64(totalXP)/xpPerLevelUnit)) + 1

	// guard against float rounding at exact level boundaries
	for int64(level-1)*int64(level-1)*xpPerLevelUnit > totalXP {
		level--
	}
	for int64(level)*int64(level)*xpPerLevelUnit <= totalXP {
		level++
	}

	return level
}

// MergeDailyStats merges two aggregates of the same day.
func MergeDailyStats(local, remote models.DailyStats) models.DailyStats {
	return models.DailyStats{
		Date:          remote.Date,
		CardsReviewed: max(local.CardsReviewed, remote.CardsReviewed),
		XPEarned:      max(local.XPEarned, remote.XPEarned),
		StudyTimeSec:  max(local.StudyTimeSec, remote.StudyTimeSec),
	}
}

// MergeAchievement merges two progress records of the same achievement. The
// first device to unlock it keeps the recorded unlock time.
func MergeAchievement(local, remote models.Achievement) models.Achievement {
	return models.Achievement{
		ID:         remote.ID,
		Progress:   max(local.Progress, remote.Progress),
		Target:     remote.Target,
		UnlockedAt: earliest(local.UnlockedAt, remote.UnlockedAt),
	}
}

func earliest(a, b *int64) *int64 {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		v := *b
		return &v
	case b == nil:
		v := *a
		return &v
	default:
		v := min(*a, *b)
		return &v
	}
}

// MergeModeStat merges two counter pairs. Counters take the larger value and
// are never added: the same review seen twice must not be counted twice.
func MergeModeStat(local, remote models.ModeStat) models.ModeStat {
	return models.ModeStat{
		ItemID:       remote.ItemID,
		GameMode:     remote.GameMode,
		ReviewCount:  max(local.ReviewCount, remote.ReviewCount),
		CorrectCount: max(local.CorrectCount, remote.CorrectCount),
	}
}

// MergeCollectionItem merges two records of the same collectible.
func MergeCollectionItem(local, remote models.CollectionItem) models.CollectionItem {
	return models.CollectionItem{
		ItemID:       remote.ItemID,
		ItemType:     remote.ItemType,
		Rarity:       higherRarity(local.Rarity, remote.Rarity),
		ItemLevel:    max(local.ItemLevel, remote.ItemLevel),
		ItemXP:       max(local.ItemXP, remote.ItemXP),
		DiscoveredAt: min(local.DiscoveredAt, remote.DiscoveredAt),
		Source:       local.Source,
	}
}

func higherRarity(a, b models.Rarity) models.Rarity {
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra > rb:
		return a
	case rb > ra:
		return b
	default:
		// equal rank: identical known tiers or two unknown values
		return max(a, b)
	}
}
