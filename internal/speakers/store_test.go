package speakers

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/speakerdir/pkg/errors"
)

func openTestStore(t *testing.T, fixtures ...Fixture) *Store {
	t.Helper()
	store, err := Open(context.Background(), NewTestDB(t, fixtures...))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func ids(speakers []Speaker) []int64 {
	out := make([]int64, 0, len(speakers))
	for _, s := range speakers {
		out = append(out, s.ID)
	}
	return out
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.True(t, errors.IsQueryError(err))
}

func TestReadOnlyDSN(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	dsn, err := readOnlyDSN("/srv/a?b#c%d/prelegenci.db")
	require.NoError(t, err)
	assert.Equal(t, "file:///srv/a%3Fb%23c%25d/prelegenci.db?mode=ro", dsn)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	dsn, err = readOnlyDSN("prelegenci.db")
	require.NoError(t, err)
	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "file", u.Scheme)
	assert.Equal(t, filepath.Join(cwd, "prelegenci.db"), u.Path)
	assert.Equal(t, "mode=ro", u.RawQuery)
}

func TestOpenPathWithURIMetacharacters(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("'?' is not allowed in Windows file names")
	}

	dir := filepath.Join(t.TempDir(), "odd?dir#1%20")
	require.NoError(t, os.Mkdir(dir, 0o755))
	path := filepath.Join(dir, "prelegenci.db")
	require.NoError(t, os.Rename(NewTestDB(t, SampleFixtures()...), path))

	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()

	all, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStoreAllOrderedByName(t *testing.T) {
	store := openTestStore(t, SampleFixtures()...)

	all, err := store.All(context.Background())
	require.NoError(t, err)

	// Binary collation: "Ł" sorts after ASCII letters.
	assert.Equal(t, []int64{2, 5, 4, 1, 3}, ids(all))
	for _, s := range all {
		assert.NotEmpty(t, s.Company)
		assert.NotEmpty(t, s.Opportunities)
		assert.LessOrEqual(t, len(s.Opportunities), 5)
	}
}

func TestStoreAllEmptyTable(t *testing.T) {
	store := openTestStore(t)

	all, err := store.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestStoreSearch(t *testing.T) {
	store := openTestStore(t, SampleFixtures()...)

	tests := []struct {
		name    string
		query   string
		filters []string
		want    []int64
	}{
		{"empty matches list-all", "", nil, []int64{2, 5, 4, 1, 3}},
		{"blank filters ignored", "", []string{" ", ""}, []int64{2, 5, 4, 1, 3}},
		{"substring of topic, any case", "secur", nil, []int64{1}},
		{"upper-case query", "SECUR", nil, []int64{1}},
		{"non-ascii name", "ŁUCJA", nil, []int64{3}},
		{"non-ascii hook", "żubrówka", nil, []int64{5}},
		{"company text", "globex", nil, []int64{3}},
		{"exact company filter", "", []string{"Acme"}, []int64{4, 1}},
		{"filter values are trimmed", "", []string{"  Acme  "}, []int64{4, 1}},
		{"filter is not a substring match", "", []string{"Acm"}, []int64{}},
		{"query and filter combine", "platform", []string{"Acme", "Globex"}, []int64{4}},
		{"no match", "kubernetes", nil, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Search(context.Background(), NewCriteria(tt.query, tt.filters))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestStoreSearchExcludesNullCompany(t *testing.T) {
	store := openTestStore(t, SampleFixtures()...)

	got, err := store.Search(context.Background(), NewCriteria("", []string{"Independent expert"}))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreSearchShapesRows(t *testing.T) {
	store := openTestStore(t, SampleFixtures()...)

	got, err := store.Search(context.Background(), NewCriteria("data mesh", nil))
	require.NoError(t, err)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "Adam Kowalski", s.Name)
	assert.Equal(t, "Independent expert", s.Company)
	assert.Equal(t, "Expert in the field: Data Mesh", s.Description)
	assert.Len(t, s.Opportunities, 3)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t, SampleFixtures()...)

	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 5, WithHook: 2}, st)
	assert.Equal(t, "40.0%", st.Percentage())
}

func TestStoreHookSamples(t *testing.T) {
	long := make([]rune, 150)
	for i := range long {
		long[i] = 'ą'
	}
	fixtures := append(SampleFixtures(), Fixture{
		ID: 6, Name: "Ewa Long", Topic: "Hooks", Hook: Ptr(string(long)),
	})
	store := openTestStore(t, fixtures...)

	samples, err := store.HookSamples(context.Background(), 3, 100)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	byID := map[int64]HookSample{}
	for _, s := range samples {
		byID[s.ID] = s
	}
	assert.ElementsMatch(t, []int64{1, 5, 6}, []int64{samples[0].ID, samples[1].ID, samples[2].ID})
	require.NotNil(t, byID[1].Company)
	assert.Equal(t, "Acme", *byID[1].Company)
	assert.Nil(t, byID[6].Company)
	assert.Equal(t, string(long[:100])+"...", byID[6].HookShort)
}

func TestStoreRow(t *testing.T) {
	store := openTestStore(t, SampleFixtures()...)

	t.Run("found", func(t *testing.T) {
		row, err := store.Row(context.Background(), 3)
		require.NoError(t, err)

		assert.Len(t, row.Columns, 7)
		name, ok := row.Get("prelegent")
		assert.True(t, ok)
		assert.Equal(t, "Łucja Wiśniewska", name)
	})

	t.Run("null hook", func(t *testing.T) {
		row, err := store.Row(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, HookInfo{}, DescribeHook(row))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := store.Row(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, "no record with id=99", err.Error())
	})
}

func TestStoreColumnsAndSampleKeys(t *testing.T) {
	want := []string{
		"id", "prelegent", "firma_instytucja", "temat_prezentacji",
		"problemy_wyzwania", "mozliwosci_it_sprzedaz", "zaczepka",
	}

	t.Run("populated", func(t *testing.T) {
		store := openTestStore(t, SampleFixtures()...)

		columns, err := store.Columns(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, columns)

		keys, err := store.SampleKeys(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, keys)
	})

	t.Run("empty table", func(t *testing.T) {
		store := openTestStore(t)

		keys, err := store.SampleKeys(context.Background())
		require.NoError(t, err)
		assert.Nil(t, keys)
	})
}
