package ports

import (
	"context"
	"testing"

	"github.com/aretw0/geomass/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunLineStoreContract runs a suite of tests to verify that a LineSource and
// LineSink pair backed by the same storage adheres to the interface contract.
// name must refer to an artifact that does not exist yet; it may include
// missing parent containers.
func RunLineStoreContract(t *testing.T, source LineSource, sink LineSink, name string) {
	ctx := context.Background()

	t.Run("Read Non-Existent", func(t *testing.T) {
		_, err := source.ReadLines(ctx, name)
		assert.ErrorIs(t, err, domain.ErrInputNotFound)
	})

	t.Run("Write and Read", func(t *testing.T) {
		lines := []string{"14   0.000  0.000  0.000\n", "1   1.000  0.000  0.000\n"}

		err := sink.WriteLines(ctx, name, lines)
		require.NoError(t, err, "WriteLines should not return error")

		got, err := source.ReadLines(ctx, name)
		require.NoError(t, err, "ReadLines should not return error")
		assert.Equal(t, lines, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		err := sink.WriteLines(ctx, name, []string{"16 a\n"})
		require.NoError(t, err)

		got, err := source.ReadLines(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, []string{"16 a\n"}, got)
	})

	t.Run("Write Empty", func(t *testing.T) {
		err := sink.WriteLines(ctx, name, nil)
		require.NoError(t, err)

		got, err := source.ReadLines(ctx, name)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
