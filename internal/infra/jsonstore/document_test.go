package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type counter struct {
	Value int `json:"value"`
}

func TestReadMissingFileReturnsZeroValue(t *testing.T) {
	doc := NewDocument[[]string](filepath.Join(t.TempDir(), "missing.json"))

	got, err := doc.Read()
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	doc := NewDocument[[]string](path)

	require.NoError(t, doc.Write([]string{"a", "b"}))
	got, err := doc.Read()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestReadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewDocument[counter](path).Read()
	require.Error(t, err)
}

func TestUpdateAbortsOnError(t *testing.T) {
	doc := NewDocument[counter](filepath.Join(t.TempDir(), "doc.json"))
	require.NoError(t, doc.Write(counter{Value: 1}))

	boom := errors.New("boom")
	_, err := doc.Update(func(c *counter) error {
		c.Value = 99
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := doc.Read()
	require.NoError(t, err)
	require.Equal(t, 1, got.Value)
}

func TestConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	doc := NewDocument[counter](filepath.Join(t.TempDir(), "doc.json"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := doc.Update(func(c *counter) error {
				c.Value++
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := doc.Read()
	require.NoError(t, err)
	require.Equal(t, 20, got.Value)
}
