package academics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeClassStatistics(t *testing.T) {
	fs := newFakeStore()
	fs.seedReport("s1", "t1", "c1", 90, 4)
	fs.seedReport("s2", "t1", "c1", 80, 4)
	fs.seedReport("s3", "t1", "c1", 70, 4)
	fs.seedReport("s4", "t1", "c1", 0, 0) // excluded from the distribution

	e := newTestEngine(fs)
	got, err := e.ComputeClassStatistics("c1", "t1")
	require.NoError(t, err)

	require.Equal(t, 4, got.Reports)
	require.Equal(t, 3, got.Graded)
	require.Equal(t, 80.0, got.Mean)
	require.Equal(t, 80.0, got.Median)
	require.Equal(t, 70.0, got.Min)
	require.Equal(t, 90.0, got.Max)
	require.InDelta(t, 8.16, got.StdDev, 0.01)
}

func TestComputeClassStatisticsEmptyClass(t *testing.T) {
	fs := newFakeStore()

	e := newTestEngine(fs)
	got, err := e.ComputeClassStatistics("c1", "t1")
	require.NoError(t, err)
	require.Equal(t, 0, got.Reports)
	require.Equal(t, 0, got.Graded)
	require.Equal(t, 0.0, got.Mean)
}
