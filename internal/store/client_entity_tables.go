package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-sync/models"
)

var schedulingColumns = []string{
	"ease_factor", "interval_days", "repetitions", "next_review",
	"state", "total_reviews", "correct_count",
}

func schedulingValues(s models.Scheduling) []any {
	return []any{s.EaseFactor, s.Interval, s.Repetitions, s.NextReview, s.State, s.TotalReviews, s.CorrectCount}
}

func schedulingDest(s *models.Scheduling) []any {
	return []any{&s.EaseFactor, &s.Interval, &s.Repetitions, &s.NextReview, &s.State, &s.TotalReviews, &s.CorrectCount}
}

var srsCardsTable = entityTable[models.SrsCard]{
	name:         "srs_cards",
	keyColumns:   []string{"item_id"},
	valueColumns: schedulingColumns,
	values: func(c models.SrsCard) []any {
		return append([]any{c.ItemID}, schedulingValues(c.Scheduling)...)
	},
	scan: func(row sq.RowScanner) (models.SrsCard, error) {
		var c models.SrsCard
		err := row.Scan(append([]any{&c.ItemID}, schedulingDest(&c.Scheduling)...)...)
		return c, err
	},
}

var vocabSrsCardsTable = entityTable[models.VocabSrsCard]{
	name:         "vocab_srs_cards",
	keyColumns:   []string{"vocab_id"},
	valueColumns: schedulingColumns,
	values: func(c models.VocabSrsCard) []any {
		return append([]any{c.VocabID}, schedulingValues(c.Scheduling)...)
	},
	scan: func(row sq.RowScanner) (models.VocabSrsCard, error) {
		var c models.VocabSrsCard
		err := row.Scan(append([]any{&c.VocabID}, schedulingDest(&c.Scheduling)...)...)
		return c, err
	},
}

// user_profiles has one row per user, so the key is user_id alone.
var userProfilesTable = entityTable[models.UserProfile]{
	name:       "user_profiles",
	keyColumns: nil,
	valueColumns: []string{
		"total_xp", "level", "current_streak", "longest_streak", "last_study_date", "daily_goal",
	},
	values: func(p models.UserProfile) []any {
		return []any{p.TotalXP, p.Level, p.CurrentStreak, p.LongestStreak, p.LastStudyDate, p.DailyGoal}
	},
	scan: func(row sq.RowScanner) (models.UserProfile, error) {
		var p models.UserProfile
		err := row.Scan(&p.TotalXP, &p.Level, &p.CurrentStreak, &p.LongestStreak, &p.LastStudyDate, &p.DailyGoal)
		return p, err
	},
}

var studySessionsTable = entityTable[models.StudySession]{
	name:         "study_sessions",
	keyColumns:   []string{"game_mode", "started_at"},
	valueColumns: []string{"cards_studied", "correct_count", "xp_earned", "duration_sec"},
	values: func(s models.StudySession) []any {
		return []any{s.GameMode, s.StartedAt, s.CardsStudied, s.CorrectCount, s.XPEarned, s.DurationSec}
	},
	scan: func(row sq.RowScanner) (models.StudySession, error) {
		var s models.StudySession
		err := row.Scan(&s.GameMode, &s.StartedAt, &s.CardsStudied, &s.CorrectCount, &s.XPEarned, &s.DurationSec)
		return s, err
	},
}

var dailyStatsTable = entityTable[models.DailyStats]{
	name:         "daily_stats",
	keyColumns:   []string{"date"},
	valueColumns: []string{"cards_reviewed", "xp_earned", "study_time_sec"},
	values: func(d models.DailyStats) []any {
		return []any{d.Date, d.CardsReviewed, d.XPEarned, d.StudyTimeSec}
	},
	scan: func(row sq.RowScanner) (models.DailyStats, error) {
		var d models.DailyStats
		err := row.Scan(&d.Date, &d.CardsReviewed, &d.XPEarned, &d.StudyTimeSec)
		return d, err
	},
}

var achievementsTable = entityTable[models.Achievement]{
	name:         "achievements",
	keyColumns:   []string{"achievement_id"},
	valueColumns: []string{"progress", "target", "unlocked_at"},
	values: func(a models.Achievement) []any {
		var unlockedAt sql.NullInt64
		if a.UnlockedAt != nil {
			unlockedAt = sql.NullInt64{Int64: *a.UnlockedAt, Valid: true}
		}
		return []any{a.ID, a.Progress, a.Target, unlockedAt}
	},
	scan: func(row sq.RowScanner) (models.Achievement, error) {
		var a models.Achievement
		var unlockedAt sql.NullInt64
		if err := row.Scan(&a.ID, &a.Progress, &a.Target, &unlockedAt); err != nil {
			return a, err
		}
		if unlockedAt.Valid {
			a.UnlockedAt = &unlockedAt.Int64
		}
		return a, nil
	},
}

var modeStatsTable = entityTable[models.ModeStat]{
	name:         "mode_stats",
	keyColumns:   []string{"item_id", "game_mode"},
	valueColumns: []string{"review_count", "correct_count"},
	values: func(m models.ModeStat) []any {
		return []any{m.ItemID, m.GameMode, m.ReviewCount, m.CorrectCount}
	},
	scan: func(row sq.RowScanner) (models.ModeStat, error) {
		var m models.ModeStat
		err := row.Scan(&m.ItemID, &m.GameMode, &m.ReviewCount, &m.CorrectCount)
		return m, err
	},
}

var collectionItemsTable = entityTable[models.CollectionItem]{
	name:         "collection_items",
	keyColumns:   []string{"item_id", "item_type"},
	valueColumns: []string{"rarity", "item_level", "item_xp", "discovered_at", "source"},
	values: func(c models.CollectionItem) []any {
		return []any{c.ItemID, c.ItemType, string(c.Rarity), c.ItemLevel, c.ItemXP, c.DiscoveredAt, c.Source}
	},
	scan: func(row sq.RowScanner) (models.CollectionItem, error) {
		var c models.CollectionItem
		err := row.Scan(&c.ItemID, &c.ItemType, &c.Rarity, &c.ItemLevel, &c.ItemXP, &c.DiscoveredAt, &c.Source)
		return c, err
	},
}
