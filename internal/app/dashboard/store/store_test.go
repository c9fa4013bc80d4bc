package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/pkg/regions"
)

const datasetHeader = "Observation URI,refArea,refPeriod,Number of cases\n"

func writeStoreDataset(t *testing.T, path, rows string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(datasetHeader+rows), 0o644))
}

func TestStoreLoadsLazilyAndCaches(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cases.csv")
	writeStoreDataset(t, path, "o,http://x/Beirut,http://x/01-2019,2\n")

	s := New(path, regions.Default(), zaptest.NewLogger(t))

	first, err := s.Records(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Unchanged file: the same slice is served back.
	second, err := s.Records(ctx)
	require.NoError(t, err)
	require.Same(t, &first[0], &second[0])
}

func TestStoreReloadsOnFileChange(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cases.csv")
	writeStoreDataset(t, path, "o,http://x/Beirut,http://x/01-2019,2\n")

	s := New(path, regions.Default(), zaptest.NewLogger(t))

	records, err := s.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	writeStoreDataset(t, path,
		"o,http://x/Beirut,http://x/01-2019,2\n"+
			"o,http://x/Akkar,http://x/02-2019,3\n")
	// Coarse mtime resolution on some filesystems; force a distinct stamp.
	require.NoError(t, os.Chtimes(path, time.Now(), time.Now().Add(2*time.Second)))

	records, err = s.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestStoreRefresh(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cases.csv")
	writeStoreDataset(t, path, "o,http://x/Beirut,http://x/01-2019,2\n")

	s := New(path, regions.Default(), zaptest.NewLogger(t))

	_, err := s.Records(ctx)
	require.NoError(t, err)

	writeStoreDataset(t, path, "o,http://x/Akkar,http://x/02-2020,9\n")
	require.NoError(t, s.Refresh(ctx))

	records, err := s.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Akkar", records[0].Region)
}

func TestStoreKeepsLastGoodDatasetOnBadReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cases.csv")
	writeStoreDataset(t, path, "o,http://x/Beirut,http://x/01-2019,2\n")

	s := New(path, regions.Default(), zaptest.NewLogger(t))

	good, err := s.Records(ctx)
	require.NoError(t, err)
	require.Len(t, good, 1)

	writeStoreDataset(t, path, "o,http://x/Beirut,http://x/garbage,2\n")
	require.NoError(t, os.Chtimes(path, time.Now(), time.Now().Add(2*time.Second)))

	// Explicit refresh reports the failure.
	err = s.Refresh(ctx)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)

	// Implicit access still serves the previous good dataset.
	records, err := s.Records(ctx)
	require.NoError(t, err)
	require.Equal(t, good, records)
}

func TestStoreFirstLoadFailureIsFatal(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent.csv"), regions.Default(), zaptest.NewLogger(t))

	_, err := s.Records(context.Background())
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestStoreHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New("irrelevant.csv", regions.Default(), zaptest.NewLogger(t))
	_, err := s.Records(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, s.Refresh(ctx), context.Canceled)
}
