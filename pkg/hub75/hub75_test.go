package hub75

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bus records writes to every fake line in order
type bus struct {
	events []string
}

type fakeLine struct {
	name   string
	bus    *bus
	value  int
	closed bool
}

func (f *fakeLine) SetValue(v int) error {
	f.value = v
	f.bus.events = append(f.bus.events, fmt.Sprintf("%s=%d", f.name, v))
	return nil
}

func (f *fakeLine) Close() error {
	f.closed = true
	return nil
}

func newTestPanel(addrBits int) (*Panel, *bus) {
	b := &bus{}
	mk := func(name string) *fakeLine { return &fakeLine{name: name, bus: b} }

	p := &Panel{
		data: mk("R1"),
		clk:  mk("CLK"),
		lat:  mk("LAT"),
		oe:   mk("OE"),
	}
	for i := 0; i < addrBits; i++ {
		p.addr = append(p.addr, mk(fmt.Sprintf("A%d", i)))
	}
	p.all = append(append([]line{}, p.addr...), p.data, p.clk, p.lat, p.oe)
	return p, b
}

func TestDriveRowSequence(t *testing.T) {
	p, b := newTestPanel(2)

	require.NoError(t, p.DriveRow(2, []bool{true, false}))

	assert.Equal(t, []string{
		"OE=1",
		"A0=0", "A1=1",
		"R1=1", "CLK=1", "CLK=0",
		"R1=0", "CLK=1", "CLK=0",
		"LAT=1", "LAT=0",
		"OE=0",
	}, b.events)
}

func TestDriveRowPanicsBeyondAddressRange(t *testing.T) {
	p, _ := newTestPanel(2)
	assert.Panics(t, func() { _ = p.DriveRow(4, []bool{true}) })
}

func TestBlankAndClose(t *testing.T) {
	p, b := newTestPanel(3)

	require.NoError(t, p.Blank())
	assert.Equal(t, []string{"OE=1"}, b.events)

	require.NoError(t, p.Close())
	for _, l := range p.all {
		assert.True(t, l.(*fakeLine).closed)
	}
}
