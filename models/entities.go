// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
)

// Scheduling is the spaced-repetition state shared by [SrsCard] and
// [VocabSrsCard].
type Scheduling struct {
	EaseFactor   float64 `json:"easeFactor" validate:"gte=0"`
	Interval     int     `json:"interval" validate:"gte=0"`
	Repetitions  int     `json:"repetitions" validate:"gte=0"`
	NextReview   int64   `json:"nextReview"`
	State        string  `json:"state"`
	TotalReviews int     `json:"totalReviews" validate:"gte=0"`
	CorrectCount int     `json:"correctCount" validate:"gte=0"`
}

// SrsCard is the scheduling state of a single study item.
type SrsCard struct {
	ItemID int `json:"itemId"`
	Scheduling
}

// Key returns the identity of the card.
func (c SrsCard) Key() string {
	return strconv.Itoa(c.ItemID)
}

// VocabSrsCard is the scheduling state of a single vocabulary entry.
type VocabSrsCard struct {
	VocabID int64 `json:"vocabId"`
	Scheduling
}

// Key returns the identity of the vocabulary card.
func (c VocabSrsCard) Key() string {
	return strconv.FormatInt(c.VocabID, 10)
}

// UserProfile is the per-user progression singleton.
type UserProfile struct {
	TotalXP       int64  `json:"totalXp" validate:"gte=0"`
	Level         int    `json:"level"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	LastStudyDate string `json:"lastStudyDate"`
	DailyGoal     int    `json:"dailyGoal" validate:"gte=0"`
}

// ProfileKey is the identity of the only [UserProfile] row of a user.
const ProfileKey = "profile"

// Key returns [ProfileKey].
func (p UserProfile) Key() string {
	return ProfileKey
}

// StudySession is an append-only record of one finished session.
// Sessions are identified by (GameMode, StartedAt) and never merged.
type StudySession struct {
	GameMode     string `json:"gameMode" validate:"required,max=64"`
	StartedAt    int64  `json:"startedAt"`
	CardsStudied int    `json:"cardsStudied"`
	CorrectCount int    `json:"correctCount"`
	XPEarned     int    `json:"xpEarned"`
	DurationSec  int    `json:"durationSec"`
}

// Key returns "gameMode|startedAt".
func (s StudySession) Key() string {
	return s.GameMode + "|" + strconv.FormatInt(s.StartedAt, 10)
}

// DailyStats aggregates activity of one calendar day (YYYY-MM-DD).
type DailyStats struct {
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	CardsReviewed int    `json:"cardsReviewed"`
	XPEarned      int    `json:"xpEarned"`
	StudyTimeSec  int    `json:"studyTimeSec"`
}

// Key returns the date.
func (d DailyStats) Key() string {
	return d.Date
}

// Achievement tracks progress towards a single achievement.
// UnlockedAt is nil while the achievement is locked.
type Achievement struct {
	ID         string `json:"id" validate:"required,max=128"`
	Progress   int    `json:"progress" validate:"gte=0"`
	Target     int    `json:"target"`
	UnlockedAt *int64 `json:"unlockedAt"`
}

// Key returns the achievement id.
func (a Achievement) Key() string {
	return a.ID
}

// ModeStat holds per item, per game mode review counters.
type ModeStat struct {
	ItemID       int    `json:"itemId"`
	GameMode     string `json:"gameMode" validate:"required,max=64"`
	ReviewCount  int    `json:"reviewCount"`
	CorrectCount int    `json:"correctCount"`
}

// Key returns "itemId|gameMode".
func (m ModeStat) Key() string {
	return strconv.Itoa(m.ItemID) + "|" + m.GameMode
}

// CollectionItem is a collectible discovered by the user.
type CollectionItem struct {
	ItemID       int    `json:"itemId"`
	ItemType     string `json:"itemType" validate:"required,max=64"`
	Rarity       Rarity `json:"rarity"`
	ItemLevel    int    `json:"itemLevel"`
	ItemXP       int    `json:"itemXp"`
	DiscoveredAt int64  `json:"discoveredAt"`
	Source       string `json:"source"`
}

// Key returns "itemId|itemType".
func (c CollectionItem) Key() string {
	return strconv.Itoa(c.ItemID) + "|" + c.ItemType
}
