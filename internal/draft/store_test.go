package draft

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func strPtr(s string) *string { return &s }

func TestLoadNeverWrittenReturnsDefaults(t *testing.T) {
	store := NewStore(NewMemoryBackend())

	require.Equal(t, model.NewDraft(), store.Load())
}

func TestSaveSequenceMergesOverDefaults(t *testing.T) {
	store := NewStore(NewMemoryBackend())

	d1 := model.DraftPatch{
		PersonalInfo: &model.PersonalInfoPatch{
			FirstName: strPtr("Ana"),
			Email:     strPtr("ana@example.com"),
		},
		Skills: &[]string{"Go", "SQL"},
	}
	d2 := model.DraftPatch{
		PersonalInfo:  &model.PersonalInfoPatch{LastName: strPtr("Reyes")},
		TemplateStyle: strPtr(model.TemplateCreative),
	}

	_, err := store.Save(d1)
	require.NoError(t, err)
	_, err = store.Save(d2)
	require.NoError(t, err)

	got := store.Load()
	want := model.Merge(model.Merge(model.NewDraft(), d1), d2)
	want.LastUpdated = got.LastUpdated
	require.Equal(t, want, got)

	// D2 wins where it speaks, D1 survives where it does not.
	require.Equal(t, "Ana", got.PersonalInfo.FirstName)
	require.Equal(t, "Reyes", got.PersonalInfo.LastName)
	require.Equal(t, []string{"Go", "SQL"}, got.Skills)
	require.Equal(t, model.TemplateCreative, got.TemplateStyle)
}

func TestSaveStampsLastUpdated(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(NewMemoryBackend())
	store.Now = func() time.Time { return fixed }

	saved, err := store.Save(model.DraftPatch{TargetRole: strPtr("Nurse")})
	require.NoError(t, err)
	require.Equal(t, fixed.UnixMilli(), saved.LastUpdated)
	require.Equal(t, fixed.UnixMilli(), store.Load().LastUpdated)
}

func TestLoadCorruptedValueReturnsDefaults(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Write(draftKey, []byte("{not json")))
	store := NewStore(backend)

	require.Equal(t, model.NewDraft(), store.Load())

	// The next save starts clean and round-trips.
	_, err := store.Save(model.DraftPatch{TargetRole: strPtr("Nurse")})
	require.NoError(t, err)
	require.Equal(t, "Nurse", store.Load().TargetRole)
}

func TestLoadSchemaMismatchReturnsDefaults(t *testing.T) {
	backend := NewMemoryBackend()
	// skills must be an array of strings.
	require.NoError(t, backend.Write(draftKey, []byte(`{"schemaVersion":1,"draft":{"skills":"Go, SQL"}}`)))
	store := NewStore(backend)

	require.Equal(t, model.NewDraft(), store.Load())
}

func TestLoadLegacyBareDraftMigrates(t *testing.T) {
	backend := NewMemoryBackend()
	legacy := `{"personalInfo":{"firstName":"Ana"},"skills":["Go"],"lastUpdated":1700000000000}`
	require.NoError(t, backend.Write(draftKey, []byte(legacy)))
	store := NewStore(backend)

	got := store.Load()
	require.Equal(t, "Ana", got.PersonalInfo.FirstName)
	require.Equal(t, []string{"Go"}, got.Skills)
	require.Equal(t, int64(1700000000000), got.LastUpdated)
	// Untouched fields come from defaults.
	require.Equal(t, model.DefaultTemplateStyle, got.TemplateStyle)

	// The next save rewrites the slot in the current envelope format.
	_, err := store.Save(model.DraftPatch{})
	require.NoError(t, err)
	raw, err := backend.Read(draftKey)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	require.Equal(t, schemaVersion, env.SchemaVersion)
}

func TestLoadNewerEnvelopeVersionReturnsDefaults(t *testing.T) {
	backend := NewMemoryBackend()
	future := `{"schemaVersion":99,"draft":{"personalInfo":{"firstName":"Ana"}}}`
	require.NoError(t, backend.Write(draftKey, []byte(future)))
	store := NewStore(backend)

	require.Equal(t, model.NewDraft(), store.Load())
}

func TestSavePersistsFullMergedDraft(t *testing.T) {
	backend := NewMemoryBackend()
	store := NewStore(backend)

	_, err := store.Save(model.DraftPatch{
		PersonalInfo: &model.PersonalInfoPatch{FirstName: strPtr("Ana")},
	})
	require.NoError(t, err)

	raw, err := backend.Read(draftKey)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))

	// The stored body is the whole draft, not the patch.
	body := string(env.Draft)
	require.Contains(t, body, `"templateStyle"`)
	require.Contains(t, body, `"skills"`)
	require.Contains(t, body, `"Ana"`)
}

func TestClearRemovesDraftAndSync(t *testing.T) {
	store := NewStore(NewMemoryBackend())

	_, err := store.Save(model.DraftPatch{TargetRole: strPtr("Nurse")})
	require.NoError(t, err)
	require.NoError(t, store.SetSync(SyncState{RemoteID: 7}))

	require.NoError(t, store.Clear())
	require.Equal(t, model.NewDraft(), store.Load())
	require.Equal(t, SyncState{}, store.Sync())
}

func TestSyncStateRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryBackend())

	require.Equal(t, SyncState{}, store.Sync())
	require.NoError(t, store.SetSync(SyncState{RemoteID: 12, SyncedAt: 1700000000000}))
	require.Equal(t, SyncState{RemoteID: 12, SyncedAt: 1700000000000}, store.Sync())
}

func TestSyncStateCorruptSidecarDegrades(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Write(syncKey, []byte("][")))
	store := NewStore(backend)

	require.Equal(t, SyncState{}, store.Sync())
}

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(dir)

	_, err := backend.Read(draftKey)
	require.ErrorIs(t, err, ErrNoValue)

	require.NoError(t, backend.Write(draftKey, []byte(`{"a":1}`)))
	got, err := backend.Read(draftKey)
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(got))

	// No temp files survive a completed write.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		require.False(t, strings.HasPrefix(entry.Name(), "."), "leftover temp file %s", entry.Name())
	}

	require.NoError(t, backend.Delete(draftKey))
	_, err = backend.Read(draftKey)
	require.ErrorIs(t, err, ErrNoValue)
	require.NoError(t, backend.Delete(draftKey), "delete is idempotent")
}

func TestFileBackendStoreEndToEnd(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(NewFileBackend(dir))

	_, err := store.Save(model.DraftPatch{
		PersonalInfo: &model.PersonalInfoPatch{FirstName: strPtr("Ana")},
	})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, draftKey+".json"))
	require.NoError(t, statErr)

	reopened := NewStore(NewFileBackend(dir))
	require.Equal(t, "Ana", reopened.Load().PersonalInfo.FirstName)
}
