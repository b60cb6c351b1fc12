package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-order/models"
)

func TestTableQR(t *testing.T) {
	gen := NewQRGenerator("https://order.example.com")
	table := models.Table{ID: "t 1", Number: "1"}

	assert.Equal(t, "https://order.example.com/?table=t+1", gen.TableURL(table))

	png, err := gen.TableQR(table)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
