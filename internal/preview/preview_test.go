package preview

import (
	"bytes"
	"image/gif"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkcurrie/ledscroll-golang/pkg/frame"
)

func TestNewRendererRejectsBadCell(t *testing.T) {
	_, err := NewRenderer(0)
	assert.Error(t, err)
}

func TestRenderBrightness(t *testing.T) {
	r, err := NewRenderer(10)
	require.NoError(t, err)

	f := frame.New(1, 3, 4)
	f.Set(0, 0, 4)
	f.Set(0, 1, 2)

	img := r.Render(f)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())

	full := img.RGBAAt(5, 5).R
	half := img.RGBAAt(15, 5).R
	off := img.RGBAAt(25, 5).R
	assert.Greater(t, full, half)
	assert.Greater(t, half, off)

	// corners fall outside the LED circle
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).R)
}

func TestWritePNG(t *testing.T) {
	r, err := NewRenderer(4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf, frame.New(5, 5, 9)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
}

func TestWriteGIF(t *testing.T) {
	r, err := NewRenderer(4)
	require.NoError(t, err)

	a := frame.New(2, 2, 1)
	b := frame.New(2, 2, 1)
	b.Set(1, 1, 1)

	var buf bytes.Buffer
	require.NoError(t, r.WriteGIF(&buf, []*frame.Frame{a, b}, 60*time.Millisecond))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 2)
	assert.Equal(t, []int{6, 6}, anim.Delay)

	assert.Error(t, r.WriteGIF(&buf, nil, time.Second))
}
