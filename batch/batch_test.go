package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/condax/entity"
	"github.com/teranos/condax/errors"
)

func TestGenerate_SeedsInOrder(t *testing.T) {
	entities, err := Generate(100, 10)
	require.NoError(t, err)
	require.Len(t, entities, 10)
	for i, e := range entities {
		assert.Equal(t, int64(100+i), e.Seed)
	}

	single, err := entity.Generate(105)
	require.NoError(t, err)
	assert.Equal(t, single.Prompt(), entities[5].Prompt())
}

func TestGenerate_NegativeCount(t *testing.T) {
	_, err := Generate(0, -1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestGenerate_Empty(t *testing.T) {
	entities, err := Generate(0, 0)
	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestStream_MatchesGenerate(t *testing.T) {
	want, err := Generate(0, 25)
	require.NoError(t, err)

	var got []entity.Entity
	for e, err := range Stream(context.Background(), 0, 25) {
		require.NoError(t, err)
		got = append(got, e)
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Prompt(), got[i].Prompt())
	}
}

func TestStream_EarlyBreak(t *testing.T) {
	n := 0
	for _, err := range Stream(context.Background(), 0, 1000) {
		require.NoError(t, err)
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestStream_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var errs []error
	for _, err := range Stream(ctx, 0, 10) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
}

func TestParallel_EqualsSequential(t *testing.T) {
	want, err := Generate(500, 137)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 8, 200} {
		got, err := Parallel(context.Background(), 500, 137, workers)
		require.NoError(t, err)
		require.Len(t, got, len(want), "workers=%d", workers)
		for i := range want {
			assert.Equal(t, want[i].Seed, got[i].Seed)
			assert.True(t, want[i].Character.Equal(got[i].Character), "workers=%d seed=%d", workers, want[i].Seed)
			assert.True(t, want[i].Occupation.Equal(got[i].Occupation), "workers=%d seed=%d", workers, want[i].Seed)
		}
	}
}

func TestParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parallel(ctx, 0, 100, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []Range{{0, 4}, {4, 7}, {7, 10}}, Split(10, 3))
	assert.Equal(t, []Range{{0, 1}, {1, 2}}, Split(2, 5))
	assert.Nil(t, Split(0, 4))
	assert.Nil(t, Split(4, 0))

	total := 0
	for _, r := range Split(1001, 7) {
		total += r.To - r.From
	}
	assert.Equal(t, 1001, total)
}

func TestFilter(t *testing.T) {
	entities, err := Generate(0, 100)
	require.NoError(t, err)

	poor := Filter(entities, func(e entity.Entity) bool {
		return e.Character.Value("wealth") == "poor"
	})
	assert.NotEmpty(t, poor)
	assert.Less(t, len(poor), len(entities))
	for _, e := range poor {
		assert.Equal(t, "poor", e.Character.Value("wealth"))
	}
}

func TestNewRun(t *testing.T) {
	a := NewRun(10, 5)
	b := NewRun(10, 5)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
	assert.Equal(t, "condax", a.Generator)
	assert.Equal(t, int64(10), a.StartSeed)
	assert.Equal(t, 5, a.Count)
	assert.NotEmpty(t, a.Version)
	assert.False(t, a.CreatedAt.IsZero())
}
