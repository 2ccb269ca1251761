package models

// EntityKind names one of the synchronized entity collections. The values are
// the array names used on the wire and the kind column of the backend store.
type EntityKind string

const (
	KindSrsCard        EntityKind = "srs_cards"
	KindVocabSrsCard   EntityKind = "vocab_srs_cards"
	KindUserProfile    EntityKind = "user_profile"
	KindStudySession   EntityKind = "study_sessions"
	KindDailyStats     EntityKind = "daily_stats"
	KindAchievement    EntityKind = "achievements"
	KindModeStat       EntityKind = "mode_stats"
	KindCollectionItem EntityKind = "collection_items"
)

// EntityKinds lists every kind in the order they are pushed and applied.
var EntityKinds = []EntityKind{
	KindSrsCard,
	KindVocabSrsCard,
	KindUserProfile,
	KindStudySession,
	KindDailyStats,
	KindAchievement,
	KindModeStat,
	KindCollectionItem,
}

// Valid reports whether k is a known kind.
func (k EntityKind) Valid() bool {
	for _, kind := range EntityKinds {
		if kind == k {
			return true
		}
	}
	return false
}
