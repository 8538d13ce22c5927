package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moap_dashboard/internal/adapter/persistence/repository"
	"moap_dashboard/internal/adapter/persistence/snapshot"
	"moap_dashboard/internal/bootstrap"
	"moap_dashboard/internal/config"
)

// testApp wires a seeded App backed by an in-memory key-value store.
func testApp(t *testing.T) (*App, *repository.MemoryKV) {
	t.Helper()
	ctx := context.Background()
	kv := repository.NewMemoryKV()
	cfg := config.Config{
		PersistenceDriver: config.DriverMemory,
		PersistenceKey:    "moap_data",
		SessionKey:        "moap_user",
		SeedOnStart:       true,
		AdminUsername:     "admin",
		AdminPassword:     "admin",
		PriceSyncMock:     true,
	}
	app, err := bootstrap.New(ctx, cfg, bootstrap.Options{KV: kv})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(ctx) })

	return &App{Snapshot: app.Snapshot, Dashboard: app.Dashboard, Budgets: app.Budgets}, kv
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSummaryCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := execute(t, app, "summary")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, float64(4), body["obras"])
	assert.Equal(t, float64(2), body["budgets"])
}

func TestSnapshotExportImportRoundTrip(t *testing.T) {
	app, kv := testApp(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	_, err := execute(t, app, "snapshot", "export", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	snap, err := snapshot.Decode(data)
	require.NoError(t, err)
	assert.Len(t, snap.Materials, 10)

	out, err := execute(t, app, "snapshot", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported")

	_, ok, err := kv.Get(context.Background(), "moap_data")
	require.NoError(t, err)
	assert.True(t, ok, "import should persist the state")
}

func TestSnapshotImportErrors(t *testing.T) {
	app, _ := testApp(t)
	dir := t.TempDir()

	_, err := execute(t, app, "snapshot", "import", filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o644))
	_, err = execute(t, app, "snapshot", "import", broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "importing snapshot")

	_, err = execute(t, app, "snapshot", "import")
	require.Error(t, err)
}

func TestSnapshotResetCmd(t *testing.T) {
	app, kv := testApp(t)

	out, err := execute(t, app, "snapshot", "reset")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "State reset"))

	_, ok, err := kv.Get(context.Background(), "moap_data")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBudgetExportCmd(t *testing.T) {
	app, _ := testApp(t)
	path := filepath.Join(t.TempDir(), "budget.xlsx")

	out, err := execute(t, app, "budget", "export", "1", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx files are zip archives")

	_, err = execute(t, app, "budget", "export", "999", "--out", path)
	require.Error(t, err)
}
