package course

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeadlandCount(t *testing.T) {
	tests := []struct {
		requested, vehicles, want int
	}{
		{requested: 3, vehicles: 2, want: 4},
		{requested: 1, vehicles: 3, want: 3},
		{requested: 0, vehicles: 3, want: 3},
		{requested: 6, vehicles: 3, want: 6},
		{requested: 7, vehicles: 3, want: 9},
		{requested: 0, vehicles: 1, want: 1},
		{requested: 5, vehicles: 1, want: 5},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d_for_%d", tc.requested, tc.vehicles), func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeHeadlandCount(tc.requested, tc.vehicles))
		})
	}
}

func TestNormalizeHeadlandCount_AlwaysAMultiple(t *testing.T) {
	for vehicles := 1; vehicles <= 8; vehicles++ {
		for requested := 0; requested <= 30; requested++ {
			got := NormalizeHeadlandCount(requested, vehicles)
			require.Zero(t, got%vehicles, "requested=%d vehicles=%d", requested, vehicles)
			require.GreaterOrEqual(t, got, vehicles, "requested=%d vehicles=%d", requested, vehicles)
			require.GreaterOrEqual(t, got, requested, "requested=%d vehicles=%d", requested, vehicles)
			if requested >= vehicles {
				require.Less(t, got-requested, vehicles, "requested=%d vehicles=%d", requested, vehicles)
			} else {
				require.Equal(t, vehicles, got, "requested=%d vehicles=%d", requested, vehicles)
			}
		}
	}
}

func TestPartition_RoundRobin(t *testing.T) {
	rings := []int{1, 2, 3, 4}

	got := Partition(rings, 2)

	assert.Equal(t, [][]int{{1, 3}, {2, 4}}, got)
}

func TestPartition_OneRingEach(t *testing.T) {
	got := Partition([]int{1, 2, 3}, 3)

	assert.Equal(t, [][]int{{1}, {2}, {3}}, got)
}

func TestPartition_ExhaustiveAndDisjoint(t *testing.T) {
	for vehicles := 1; vehicles <= 6; vehicles++ {
		for requested := 0; requested <= 20; requested++ {
			n := NormalizeHeadlandCount(requested, vehicles)
			rings := make([]int, n)
			for i := range rings {
				rings[i] = i + 1
			}

			parts := Partition(rings, vehicles)
			require.Len(t, parts, vehicles)

			seen := make(map[int]int)
			for v, part := range parts {
				require.Len(t, part, n/vehicles, "every vehicle gets the same number of rings")
				for k, ring := range part {
					seen[ring]++
					assert.Equal(t, v+1+k*vehicles, ring, "vehicle %d ring %d", v+1, k)
				}
			}
			for ring := 1; ring <= n; ring++ {
				require.Equal(t, 1, seen[ring], "ring %d of %d for %d vehicles", ring, n, vehicles)
			}
			require.Len(t, seen, n)
		}
	}
}
