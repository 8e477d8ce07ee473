package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("source.path", "claims.json"))
	require.NoError(t, store.Set("source.path", "export.db"))

	val, ok := store.Get("source.path")
	assert.True(t, ok)
	assert.Equal(t, "export.db", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("fields.hts", "HTSCode")
	_ = store.Set("results.page_size", 25)

	assert.Equal(t, "HTSCode", store.GetString("fields.hts"))
	assert.Equal(t, "", store.GetString("results.page_size"))
	assert.Equal(t, "", store.GetString("nonexistent"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "int", value: 42, want: 42},
		{name: "int64", value: int64(123), want: 123},
		{name: "float64", value: float64(123.7), want: 123},
		{name: "string", value: "not_a_number", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore()
			_ = store.Set("results.page_size", tt.value)
			assert.Equal(t, tt.want, store.GetInt("results.page_size"))
		})
	}

	assert.Equal(t, 0, NewConfigStore().GetInt("nonexistent"))
}

func TestConfigStore_Load_NoOp(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Load())

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_Path(t *testing.T) {
	assert.Equal(t, ":memory:", NewConfigStore().Path())
}

func TestConfigStore_Concurrency_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			key := "key-" + string(rune('A'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < numGoroutines; i++ {
		assert.Equal(t, i, store.GetInt("key-"+string(rune('A'+i))))
	}
}
