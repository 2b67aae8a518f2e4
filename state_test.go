package gridview_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gridview"
)

func TestMapStateStore(t *testing.T) {
	store := gridview.MapStateStore{}
	id := gridview.HashID("table")

	_, ok := store.Get(id)
	assert.False(t, ok)

	state := gridview.PersistentState{ColumnWidths: []float32{10, 20}}
	store.Set(id, state)
	got, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, state, got)

	store.Delete(id)
	_, ok = store.Get(id)
	assert.False(t, ok)
}

func TestStateTOMLRoundTrip(t *testing.T) {
	store := gridview.MapStateStore{
		gridview.HashID("people"): {ColumnWidths: []float32{60, 80.5, 120}, RowHeights: []float32{18, 18, 36}},
		gridview.HashID("orders"): {ColumnWidths: []float32{40}},
	}

	var buf bytes.Buffer
	require.NoError(t, store.EncodeTOML(&buf))
	assert.Contains(t, buf.String(), "column_widths")

	decoded, err := gridview.DecodeStateTOML(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, store[gridview.HashID("people")], decoded[gridview.HashID("people")])
	assert.Equal(t, []float32{40}, decoded[gridview.HashID("orders")].ColumnWidths)
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tables.toml")

	missing, err := gridview.LoadStateFile(path)
	require.NoError(t, err, "a missing file is an empty store")
	assert.Empty(t, missing)

	// Persist through a table, then restore into a fresh one
	ui, input := setupTableTest()
	source := &gridSource{rows: 4, columns: 3}
	table := newTestTable(gridview.WithStateStore(missing))
	showFrame(ui, input, table, source, &recordingRenderer{})
	require.NoError(t, missing.SaveStateFile(path))

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := gridview.LoadStateFile(path)
	require.NoError(t, err)
	restored := newTestTable(gridview.WithStateStore(loaded))
	showFrame(ui, input, restored, source, &recordingRenderer{})
	assert.Equal(t, table.ColumnWidths(), restored.ColumnWidths())
	assert.Equal(t, table.RowHeights(), restored.RowHeights())
}

func TestDecodeStateTOMLErrors(t *testing.T) {
	_, err := gridview.DecodeStateTOML(strings.NewReader("tables = ["))
	assert.ErrorContains(t, err, "decode table state")

	_, err = gridview.DecodeStateTOML(strings.NewReader("[tables.nothex]\ncolumn_widths = [1.0]\n"))
	assert.ErrorContains(t, err, `table "nothex"`)
}

func TestTableRestore(t *testing.T) {
	table := gridview.NewTable("restore")
	table.Restore(gridview.PersistentState{ColumnWidths: []float32{1, 2}, RowHeights: []float32{3}})

	assert.Equal(t, []float32{1, 2}, table.ColumnWidths())
	assert.Equal(t, []float32{3}, table.RowHeights())
	assert.Equal(t, table.State(), gridview.PersistentState{ColumnWidths: []float32{1, 2}, RowHeights: []float32{3}})
}
