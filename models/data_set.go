// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangedDataSet bundles entities of every synchronized kind. It is the
// payload of a push, the merged_back part of a push response and the body of
// a pull response. Arrays may be empty or absent.
type ChangedDataSet struct {
	SrsCards        []SrsCard        `json:"srs_cards,omitempty" validate:"omitempty,dive"`
	VocabSrsCards   []VocabSrsCard   `json:"vocab_srs_cards,omitempty" validate:"omitempty,dive"`
	UserProfile     []UserProfile    `json:"user_profile,omitempty" validate:"omitempty,max=1,dive"`
	StudySessions   []StudySession   `json:"study_sessions,omitempty" validate:"omitempty,dive"`
	DailyStats      []DailyStats     `json:"daily_stats,omitempty" validate:"omitempty,dive"`
	Achievements    []Achievement    `json:"achievements,omitempty" validate:"omitempty,dive"`
	ModeStats       []ModeStat       `json:"mode_stats,omitempty" validate:"omitempty,dive"`
	CollectionItems []CollectionItem `json:"collection_items,omitempty" validate:"omitempty,dive"`
}

// Len returns the total number of entities across all kinds.
func (d *ChangedDataSet) Len() int {
	if d == nil {
		return 0
	}

	return len(d.SrsCards) +
		len(d.VocabSrsCards) +
		len(d.UserProfile) +
		len(d.StudySessions) +
		len(d.DailyStats) +
		len(d.Achievements) +
		len(d.ModeStats) +
		len(d.CollectionItems)
}

// IsEmpty reports whether the set holds no entities.
func (d *ChangedDataSet) IsEmpty() bool {
	return d.Len() == 0
}

// PullDelta is the result of a pull or full pull: every entity changed after
// the requested version and the server version the delta brings the device to.
type PullDelta struct {
	Data          ChangedDataSet
	ServerVersion int64
}

// PushRequest carries the full local state of a device to the server.
type PushRequest struct {
	UserID        int64
	DeviceID      string
	ClientVersion int64
	MergeVersion  int
	Data          ChangedDataSet
}

// PushResult is the server reply to a push. MergedBack holds the entities the
// server merged differently from what the device sent.
type PushResult struct {
	NewVersion int64
	MergedBack ChangedDataSet
}
