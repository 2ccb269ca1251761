// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveDevice = `
		INSERT INTO sync_devices (device_id, user_id, name, platform, app_version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	getEntitiesByKeys = `
		SELECT entity_key, payload, version
		FROM sync_entities
		WHERE user_id = $1 AND kind = $2 AND entity_key = ANY($3);`

	ensureServerVersion = `
		INSERT INTO sync_versions (user_id, server_version)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING;`

	lockServerVersion = `
		SELECT server_version
		FROM sync_versions
		WHERE user_id = $1
		FOR UPDATE;`

	upsertStoredEntity = `
		INSERT INTO sync_entities (user_id, kind, entity_key, payload, version)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, kind, entity_key)
		DO UPDATE SET payload = excluded.payload, version = excluded.version;`

	setServerVersion = `
		UPDATE sync_versions
		SET server_version = $2
		WHERE user_id = $1;`

	getServerVersion = `
		SELECT COALESCE(MAX(server_version), 0)
		FROM sync_versions
		WHERE user_id = $1;`

	getEntitiesSince = `
		SELECT kind, entity_key, payload, version
		FROM sync_entities
		WHERE user_id = $1 AND version > $2
		ORDER BY version, kind, entity_key;`
)
