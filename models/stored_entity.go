package models

import "encoding/json"

// StoredEntity is the backend representation of a synchronized entity: the
// JSON payload under its kind and key, stamped with the server version of the
// push that last changed it.
type StoredEntity struct {
	Kind    EntityKind
	Key     string
	Payload json.RawMessage
	Version int64
}
