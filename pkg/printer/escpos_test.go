package printer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_TextWrapsToWidth(t *testing.T) {
	d := NewDocument(10)
	d.Text("Kopi susu gula aren")

	assert.Equal(t, "\x1b@Kopi susu\ngula aren\n", string(d.Bytes()))
}

func TestDocument_EmptyTextKeepsBlankLine(t *testing.T) {
	d := NewDocument(Width58mm)
	d.Text("")

	assert.Equal(t, "\x1b@\n", string(d.Bytes()))
}

func TestDocument_KeyValuePadsToWidth(t *testing.T) {
	d := NewDocument(20)
	d.KeyValue("Total:", "Rp 5.000")

	assert.Equal(t, "\x1b@Total:      Rp 5.000\n", string(d.Bytes()))
}

func TestWrap_SplitsLongWords(t *testing.T) {
	assert.Equal(t, []string{"abcde", "fghij", "k"}, wrap("abcdefghijk", 5))
}

func TestNew(t *testing.T) {
	p, err := New(Config{Type: ""})
	require.NoError(t, err)
	assert.Equal(t, "none", p.Type())
	assert.False(t, p.IsConnected(context.Background()))
	assert.NoError(t, p.Print(context.Background(), []byte("x")))

	_, err = New(Config{Type: "usb"})
	assert.Error(t, err)

	_, err = New(Config{Type: "serial"})
	assert.Error(t, err)
}
