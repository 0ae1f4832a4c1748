package draft

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
)

const (
	draftKey = "resume-draft"
	syncKey  = "resume-draft.sync"

	// schemaVersion is the envelope version this binary writes. Loads
	// accept anything up to and including it.
	schemaVersion = 1
)

//go:embed schema.json
var draftSchemaJSON string

var draftSchema = gojsonschema.NewStringLoader(draftSchemaJSON)

// envelope wraps the persisted draft with a version so later binaries can
// migrate older payloads. Version 0 is the legacy bare-draft format.
type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Draft         json.RawMessage `json:"draft"`
}

// SyncState is the sidecar record of where the draft last went remotely.
type SyncState struct {
	RemoteID int64 `json:"remoteId,omitempty"`
	SyncedAt int64 `json:"syncedAt,omitempty"`
}

// Store owns the single local draft slot. Reads never fail from the
// caller's perspective: anything unreadable degrades to the default draft.
type Store struct {
	Backend Backend

	// Now stamps lastUpdated on save. Left nil, wall-clock time is used.
	Now func() time.Time
}

// NewStore creates a store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{Backend: backend}
}

// Load reads the stored draft, falling back to defaults for anything
// missing. A read, parse, version or schema failure is logged and treated
// as "no stored draft".
func (s *Store) Load() model.Draft {
	raw, err := s.Backend.Read(draftKey)
	if errors.Is(err, ErrNoValue) {
		return model.NewDraft()
	}
	if err != nil {
		telemetry.Warn("draft.load.read_failed", map[string]any{"error": err.Error()})
		return model.NewDraft()
	}

	body, err := unwrap(raw)
	if err != nil {
		telemetry.Warn("draft.load.unreadable", map[string]any{"error": err.Error()})
		return model.NewDraft()
	}

	if err := validateDraft(body); err != nil {
		telemetry.Warn("draft.load.schema_mismatch", map[string]any{"error": err.Error()})
		return model.NewDraft()
	}

	var stored storedDraft
	if err := json.Unmarshal(body, &stored); err != nil {
		telemetry.Warn("draft.load.parse_failed", map[string]any{"error": err.Error()})
		return model.NewDraft()
	}

	loaded := model.Merge(model.NewDraft(), stored.DraftPatch)
	loaded.LastUpdated = stored.LastUpdated
	return loaded
}

// Save merges the patch into the stored draft, stamps lastUpdated and
// writes the full merged draft back. The merged draft is returned even
// when the write fails, the caller still holds the latest state.
func (s *Store) Save(patch model.DraftPatch) (model.Draft, error) {
	merged := model.Merge(s.Load(), patch)
	merged.LastUpdated = s.now().UnixMilli()

	body, err := json.Marshal(merged)
	if err != nil {
		return merged, fmt.Errorf("encode draft: %w", err)
	}
	data, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Draft: body})
	if err != nil {
		return merged, fmt.Errorf("encode draft envelope: %w", err)
	}

	if err := s.Backend.Write(draftKey, data); err != nil {
		return merged, fmt.Errorf("persist draft: %w", err)
	}
	return merged, nil
}

// Clear removes the stored draft and its sync sidecar.
func (s *Store) Clear() error {
	if err := s.Backend.Delete(draftKey); err != nil {
		return err
	}
	return s.Backend.Delete(syncKey)
}

// Sync reads the sidecar state. Anything unreadable degrades to the zero
// state, same policy as Load.
func (s *Store) Sync() SyncState {
	raw, err := s.Backend.Read(syncKey)
	if errors.Is(err, ErrNoValue) {
		return SyncState{}
	}
	if err != nil {
		telemetry.Warn("draft.sync.read_failed", map[string]any{"error": err.Error()})
		return SyncState{}
	}

	var state SyncState
	if err := json.Unmarshal(raw, &state); err != nil {
		telemetry.Warn("draft.sync.parse_failed", map[string]any{"error": err.Error()})
		return SyncState{}
	}
	return state
}

// SetSync records the sidecar state after a successful remote save.
func (s *Store) SetSync(state SyncState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode sync state: %w", err)
	}
	if err := s.Backend.Write(syncKey, data); err != nil {
		return fmt.Errorf("persist sync state: %w", err)
	}
	return nil
}

// storedDraft decodes a persisted draft body: the patch fields plus the
// stamped timestamp.
type storedDraft struct {
	model.DraftPatch
	LastUpdated int64 `json:"lastUpdated"`
}

// unwrap returns the draft body inside the stored value. Legacy values
// written before envelopes are the draft itself. Envelopes newer than this
// binary are unreadable.
func unwrap(raw []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	if env.SchemaVersion == 0 && env.Draft == nil {
		return raw, nil
	}
	if env.SchemaVersion > schemaVersion {
		return nil, fmt.Errorf("draft written by a newer version (%d)", env.SchemaVersion)
	}
	if env.Draft == nil {
		return nil, fmt.Errorf("draft envelope (version %d) has no body", env.SchemaVersion)
	}
	return env.Draft, nil
}

func validateDraft(body []byte) error {
	result, err := gojsonschema.Validate(draftSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	first := result.Errors()[0]
	return fmt.Errorf("%s: %s", first.Field(), first.Description())
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
