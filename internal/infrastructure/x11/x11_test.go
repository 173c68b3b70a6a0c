package x11

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

const testRoot = xproto.Window(0x100)

func newTestDisplay() *Display {
	return &Display{root: testRoot, grabs: make(grabTable)}
}

func TestKeysymFor(t *testing.T) {
	tests := []struct {
		name string
		want xproto.Keysym
	}{
		{"h", 0x68},
		{"H", 0x68},
		{"7", 0x37},
		{"Return", 0xff0d},
		{"return", 0xff0d},
		{"space", 0x20},
		{"F5", 0xffc2},
		{"XF86AudioMute", 0x1008ff12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, err := keysymFor(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sym)
		})
	}

	_, err := keysymFor("hyperdrive")
	assert.Error(t, err)
}

func TestNewKeymap(t *testing.T) {
	// Two keysyms per keycode starting at keycode 8.
	syms := []xproto.Keysym{
		0x61, 0x41, // 8: a A
		0x68, 0x48, // 9: h H
		0xff0d, 0, // 10: Return
		0x68, 0, // 11: h again
	}
	km := newKeymap(8, 2, syms)

	assert.Equal(t, []xproto.Keycode{9, 11}, km.Keycodes(0x68))
	assert.Equal(t, []xproto.Keycode{10}, km.Keycodes(0xff0d))
	assert.Equal(t, []xproto.Keycode{8}, km.Keycodes(0x41))
	assert.Empty(t, km.Keycodes(0x7a))
	assert.Empty(t, newKeymap(8, 0, syms).Keycodes(0x61))
}

func TestModMask(t *testing.T) {
	assert.Equal(t, uint16(xproto.ModMask4|xproto.ModMaskShift), modMask(entity.ModSuper|entity.ModShift))
	assert.Equal(t, uint16(xproto.ModMask1|xproto.ModMaskControl), modMask(entity.ModAlt|entity.ModControl))
	assert.Zero(t, modMask(0))
}

func TestGrabTable_Lookup(t *testing.T) {
	chordH := entity.Chord{Mods: entity.ModSuper, Key: "h"}
	chordRet := entity.Chord{Mods: entity.ModSuper, Key: "Return"}
	win := xproto.Window(0x200)
	mods := modMask(entity.ModSuper)

	g := grabTable{
		{window: win, keycode: 43, mods: mods}:      chordH,
		{window: testRoot, keycode: 36, mods: mods}: chordRet,
	}

	chord, from, ok := g.lookup(win, testRoot, 43, mods)
	require.True(t, ok)
	assert.Equal(t, chordH, chord)
	assert.Equal(t, win, from)

	// Caps Lock and Num Lock are ignored.
	_, _, ok = g.lookup(win, testRoot, 43, mods|xproto.ModMaskLock|xproto.ModMask2)
	assert.True(t, ok)

	// Root bindings are found from any window.
	chord, from, ok = g.lookup(win, testRoot, 36, mods)
	require.True(t, ok)
	assert.Equal(t, chordRet, chord)
	assert.Equal(t, testRoot, from)

	_, _, ok = g.lookup(win, testRoot, 43, mods|xproto.ModMaskShift)
	assert.False(t, ok)

	g.forget(win)
	_, _, ok = g.lookup(win, testRoot, 43, mods)
	assert.False(t, ok)
}

func TestGeometryValues(t *testing.T) {
	mask, values := geometryValues(entity.NewRect(-5, 10, 300, 0))

	assert.Equal(t, uint16(xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|
		xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth), mask)
	require.Len(t, values, 5)
	assert.Equal(t, int32(-5), int32(values[0]))
	assert.Equal(t, uint32(10), values[1])
	assert.Equal(t, uint32(300), values[2])
	assert.Equal(t, uint32(1), values[3], "zero height is clamped")
	assert.Zero(t, values[4])
}

func TestRequestValues(t *testing.T) {
	req := port.ConfigureRequest{
		Window:      7,
		Sibling:     9,
		Rect:        entity.NewRect(1, 2, 3, 4),
		BorderWidth: 2,
		StackMode:   xproto.StackModeBelow,
		Mask:        xproto.ConfigWindowY | xproto.ConfigWindowHeight | xproto.ConfigWindowStackMode,
	}

	mask, values := requestValues(req)
	assert.Equal(t, req.Mask, mask)
	assert.Equal(t, []uint32{2, 4, xproto.StackModeBelow}, values)

	mask, values = requestValues(port.ConfigureRequest{})
	assert.Zero(t, mask)
	assert.Empty(t, values)
}

func TestAtomList(t *testing.T) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:], 42)
	binary.LittleEndian.PutUint32(buf[4:], 99)

	list := atomList(buf)
	assert.Equal(t, []xproto.Atom{42, 99}, list)
	assert.True(t, containsAtom(list, 99))
	assert.False(t, containsAtom(list, 7))
	assert.Empty(t, atomList(buf[:3]))
}

func TestTranslate(t *testing.T) {
	d := newTestDisplay()
	win := xproto.Window(0x300)
	mods := modMask(entity.ModSuper | entity.ModShift)
	chord := entity.Chord{Mods: entity.ModSuper | entity.ModShift, Key: "q"}
	d.grabs[grabKey{window: win, keycode: 24, mods: mods}] = chord
	d.grabs[grabKey{window: testRoot, keycode: 36, mods: mods}] = chord

	tests := []struct {
		name string
		in   xgb.Event
		want port.DisplayEvent
	}{
		{
			name: "map request",
			in:   xproto.MapRequestEvent{Parent: testRoot, Window: win},
			want: port.MapRequest{Window: entity.WindowID(win)},
		},
		{
			name: "unmap",
			in:   xproto.UnmapNotifyEvent{Event: testRoot, Window: win},
			want: port.WindowGone{Window: entity.WindowID(win)},
		},
		{
			name: "configure request",
			in: xproto.ConfigureRequestEvent{
				Window: win, X: 5, Y: 6, Width: 70, Height: 80,
				ValueMask: xproto.ConfigWindowWidth,
			},
			want: port.ConfigureRequest{
				Window: entity.WindowID(win),
				Rect:   entity.NewRect(5, 6, 70, 80),
				Mask:   xproto.ConfigWindowWidth,
			},
		},
		{
			name: "root resized",
			in:   xproto.ConfigureNotifyEvent{Window: testRoot, Width: 1920, Height: 1080},
			want: port.ScreenChange{Rect: entity.NewRect(0, 0, 1920, 1080)},
		},
		{
			name: "client configure notify ignored",
			in:   xproto.ConfigureNotifyEvent{Window: win, Width: 10, Height: 10},
			want: nil,
		},
		{
			name: "window key press",
			in:   xproto.KeyPressEvent{Event: win, Detail: 24, State: mods | xproto.ModMaskLock},
			want: port.KeyPress{Window: entity.WindowID(win), Chord: chord},
		},
		{
			name: "root key press",
			in:   xproto.KeyPressEvent{Event: testRoot, Detail: 36, State: mods},
			want: port.KeyPress{Window: 0, Chord: chord},
		},
		{
			name: "ungrabbed key press",
			in:   xproto.KeyPressEvent{Event: win, Detail: 99, State: mods},
			want: nil,
		},
		{
			name: "destroy",
			in:   xproto.DestroyNotifyEvent{Event: testRoot, Window: win},
			want: port.WindowGone{Window: entity.WindowID(win), Destroyed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.translate(context.Background(), tt.in)
			assert.Equal(t, tt.want, got)
		})
	}

	// Destroy dropped the window's grabs.
	_, _, ok := d.grabs.lookup(win, testRoot, 24, mods)
	assert.False(t, ok)
}

func TestTranslate_MappingNotifyRefreshesKeymap(t *testing.T) {
	d := newTestDisplay()
	old := newKeymap(8, 1, []xproto.Keysym{0x61})
	fresh := newKeymap(8, 1, []xproto.Keysym{0x62})
	d.keymap = old
	d.fetchKeymap = func() (*Keymap, error) { return fresh, nil }

	got := d.translate(context.Background(), xproto.MappingNotifyEvent{Request: xproto.MappingKeyboard})
	assert.Nil(t, got)
	assert.Same(t, fresh, d.keymap)
}

func TestTranslate_MappingNotifyRefreshFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	d := newTestDisplay()
	old := newKeymap(8, 1, []xproto.Keysym{0x61})
	d.keymap = old
	d.fetchKeymap = func() (*Keymap, error) { return nil, errors.New("connection reset") }

	got := d.translate(ctx, xproto.MappingNotifyEvent{Request: xproto.MappingKeyboard})
	assert.Nil(t, got)
	assert.Same(t, old, d.keymap)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "connection reset")
}

func TestTranslate_PointerMappingIgnored(t *testing.T) {
	d := newTestDisplay()
	d.fetchKeymap = func() (*Keymap, error) {
		t.Fatal("pointer mapping changes must not refetch the keymap")
		return nil, nil
	}
	assert.Nil(t, d.translate(context.Background(), xproto.MappingNotifyEvent{Request: xproto.MappingPointer}))
}
