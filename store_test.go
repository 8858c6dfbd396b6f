package dataminer_test

import (
	"testing"

	"github.com/fwojciec/dataminer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	t.Run("accepts supported formats case-insensitively", func(t *testing.T) {
		t.Parallel()

		f, err := dataminer.ParseFormat("JSON")
		require.NoError(t, err)
		assert.Equal(t, dataminer.FormatJSON, f)

		f, err = dataminer.ParseFormat(" csv ")
		require.NoError(t, err)
		assert.Equal(t, dataminer.FormatCSV, f)
	})

	t.Run("rejects xml", func(t *testing.T) {
		t.Parallel()

		_, err := dataminer.ParseFormat("xml")

		var serr *dataminer.SerializationError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "xml", serr.Format)
	})
}

func TestFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "products.csv", dataminer.Filename("products", dataminer.FormatCSV))
	assert.Equal(t, "output.json", dataminer.Filename("output", dataminer.FormatJSON))
}
