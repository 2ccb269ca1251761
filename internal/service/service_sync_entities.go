package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/models"
)

// mergePushed merges the pushed items of one kind with their stored values.
// It returns the entities to commit and the merged values to send back.
// Repeated keys in one push are folded into each other in order.
func mergePushed[T any](
	ctx context.Context,
	repository store.SyncRepository,
	userID int64,
	kind models.EntityKind,
	pushed []T,
	key func(T) string,
	merge func(local, remote T) T,
) ([]models.StoredEntity, []T, error) {
	if len(pushed) == 0 {
		return nil, nil, nil
	}

	keys := make([]string, 0, len(pushed))
	for _, item := range pushed {
		keys = append(keys, key(item))
	}

	rows, err := repository.GetEntities(ctx, userID, kind, keys)
	if err != nil {
		return nil, nil, fmt.Errorf("get stored %s: %w", kind, err)
	}

	stored := make(map[string]T, len(rows))
	for k, row := range rows {
		var value T
		if err = json.Unmarshal(row.Payload, &value); err != nil {
			return nil, nil, fmt.Errorf("decode stored %s %q: %w", kind, k, err)
		}
		stored[k] = value
	}

	var (
		order    []string
		merged   = make(map[string]T, len(pushed))
		received = make(map[string]T, len(pushed))
	)
	for _, item := range pushed {
		k := key(item)
		current, seen := merged[k]
		if !seen {
			order = append(order, k)
			current, seen = stored[k]
		}

		value := item
		if seen {
			value = merge(item, current)
		}
		merged[k] = value
		received[k] = item
	}

	var (
		changed    []models.StoredEntity
		mergedBack []T
	)
	for _, k := range order {
		value := merged[k]
		payload, err := json.Marshal(value)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s %q: %w", kind, k, err)
		}

		if previous, ok := stored[k]; !ok || !sameJSON(payload, previous) {
			changed = append(changed, models.StoredEntity{Kind: kind, Key: k, Payload: payload})
		}
		if !sameJSON(payload, received[k]) {
			mergedBack = append(mergedBack, value)
		}
	}

	return changed, mergedBack, nil
}

// keepStored resolves study sessions: a session is immutable once stored.
func keepStored[T any](_, remote T) T {
	return remote
}

func sameJSON(payload []byte, value any) bool {
	other, err := json.Marshal(value)
	if err != nil {
		return false
	}

	return bytes.Equal(payload, other)
}

// decodeEntities groups stored rows into a data set by kind.
func decodeEntities(entities []models.StoredEntity) (models.ChangedDataSet, error) {
	var (
		data models.ChangedDataSet
		err  error
	)

	for _, e := range entities {
		switch e.Kind {
		case models.KindSrsCard:
			err = appendDecoded(&data.SrsCards, e.Payload)
		case models.KindVocabSrsCard:
			err = appendDecoded(&data.VocabSrsCards, e.Payload)
		case models.KindUserProfile:
			err = appendDecoded(&data.UserProfile, e.Payload)
		case models.KindStudySession:
			err = appendDecoded(&data.StudySessions, e.Payload)
		case models.KindDailyStats:
			err = appendDecoded(&data.DailyStats, e.Payload)
		case models.KindAchievement:
			err = appendDecoded(&data.Achievements, e.Payload)
		case models.KindModeStat:
			err = appendDecoded(&data.ModeStats, e.Payload)
		case models.KindCollectionItem:
			err = appendDecoded(&data.CollectionItems, e.Payload)
		default:
			err = store.ErrUnknownEntityKind
		}
		if err != nil {
			return models.ChangedDataSet{}, fmt.Errorf("decode %s %q: %w", e.Kind, e.Key, err)
		}
	}

	return data, nil
}

func appendDecoded[T any](dst *[]T, payload []byte) error {
	var value T
	if err := json.Unmarshal(payload, &value); err != nil {
		return err
	}

	*dst = append(*dst, value)
	return nil
}
