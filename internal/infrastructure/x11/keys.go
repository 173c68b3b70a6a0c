package x11

import (
	"context"
	"fmt"
	"strings"

	"github.com/jezek/xgb/xproto"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// namedKeysyms maps the key names accepted in bindings to X keysyms.
// Letters and digits are handled in keysymFor.
var namedKeysyms = map[string]xproto.Keysym{
	"space":        0x0020,
	"minus":        0x002d,
	"equal":        0x003d,
	"comma":        0x002c,
	"period":       0x002e,
	"slash":        0x002f,
	"semicolon":    0x003b,
	"apostrophe":   0x0027,
	"grave":        0x0060,
	"backslash":    0x005c,
	"bracketleft":  0x005b,
	"bracketright": 0x005d,
	"backspace":    0xff08,
	"tab":          0xff09,
	"return":       0xff0d,
	"escape":       0xff1b,
	"delete":       0xffff,
	"home":         0xff50,
	"left":         0xff51,
	"up":           0xff52,
	"right":        0xff53,
	"down":         0xff54,
	"prior":        0xff55,
	"next":         0xff56,
	"end":          0xff57,
	"print":        0xff61,
	"insert":       0xff63,
	"f1":           0xffbe,
	"f2":           0xffbf,
	"f3":           0xffc0,
	"f4":           0xffc1,
	"f5":           0xffc2,
	"f6":           0xffc3,
	"f7":           0xffc4,
	"f8":           0xffc5,
	"f9":           0xffc6,
	"f10":          0xffc7,
	"f11":          0xffc8,
	"f12":          0xffc9,

	"xf86monbrightnessup":   0x1008ff02,
	"xf86monbrightnessdown": 0x1008ff03,
	"xf86audiolowervolume":  0x1008ff11,
	"xf86audiomute":         0x1008ff12,
	"xf86audioraisevolume":  0x1008ff13,
	"xf86audioplay":         0x1008ff14,
	"xf86audiostop":         0x1008ff15,
	"xf86audioprev":         0x1008ff16,
	"xf86audionext":         0x1008ff17,
}

// keysymFor resolves a key name. Names are case-insensitive because the
// config layer lowercases map keys.
func keysymFor(name string) (xproto.Keysym, error) {
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return xproto.Keysym(c + ('a' - 'A')), nil
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return xproto.Keysym(c), nil
		}
	}
	if sym, ok := namedKeysyms[strings.ToLower(name)]; ok {
		return sym, nil
	}
	return 0, fmt.Errorf("unknown key name %q", name)
}

// Keymap is the keysym to keycode table of the server.
type Keymap struct {
	codes map[xproto.Keysym][]xproto.Keycode
}

// newKeymap builds a Keymap from a GetKeyboardMapping reply.
func newKeymap(first xproto.Keycode, perCode int, syms []xproto.Keysym) *Keymap {
	km := &Keymap{codes: make(map[xproto.Keysym][]xproto.Keycode)}
	if perCode <= 0 {
		return km
	}
	for i, sym := range syms {
		if sym == 0 {
			continue
		}
		code := first + xproto.Keycode(i/perCode)
		existing := km.codes[sym]
		if len(existing) > 0 && existing[len(existing)-1] == code {
			continue
		}
		km.codes[sym] = append(existing, code)
	}
	return km
}

// Keycodes returns every keycode that produces sym.
func (km *Keymap) Keycodes(sym xproto.Keysym) []xproto.Keycode {
	return km.codes[sym]
}

// RefreshKeymap reloads the keyboard mapping from the server.
func (d *Display) RefreshKeymap() error {
	km, err := d.fetchKeymap()
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.keymap = km
	d.mu.Unlock()
	return nil
}

func (d *Display) queryKeymap() (*Keymap, error) {
	first := d.setup.MinKeycode
	count := byte(d.setup.MaxKeycode - first + 1)

	reply, err := xproto.GetKeyboardMapping(d.conn, first, count).Reply()
	if err != nil {
		return nil, fmt.Errorf("get keyboard mapping: %w", err)
	}
	return newKeymap(first, int(reply.KeysymsPerKeycode), reply.Keysyms), nil
}

// modMask converts modifier flags to the X core protocol mask.
func modMask(m entity.Modifier) uint16 {
	var mask uint16
	if m&entity.ModShift != 0 {
		mask |= xproto.ModMaskShift
	}
	if m&entity.ModControl != 0 {
		mask |= xproto.ModMaskControl
	}
	if m&entity.ModAlt != 0 {
		mask |= xproto.ModMask1
	}
	if m&entity.ModSuper != 0 {
		mask |= xproto.ModMask4
	}
	return mask
}

// ignoredMods are toggled by Caps Lock and Num Lock. Grabs are registered
// for every combination so bindings work with either lock active.
const ignoredMods = uint16(xproto.ModMaskLock | xproto.ModMask2)

var lockVariants = []uint16{
	0,
	xproto.ModMaskLock,
	xproto.ModMask2,
	xproto.ModMaskLock | xproto.ModMask2,
}

type grabKey struct {
	window  xproto.Window
	keycode xproto.Keycode
	mods    uint16
}

type grabTable map[grabKey]entity.Chord

// lookup resolves a key press. Grabs on a specific window win over root grabs.
func (g grabTable) lookup(window, root xproto.Window, keycode xproto.Keycode, state uint16) (entity.Chord, xproto.Window, bool) {
	mods := state &^ ignoredMods & 0xff
	if chord, ok := g[grabKey{window: window, keycode: keycode, mods: mods}]; ok {
		return chord, window, true
	}
	if chord, ok := g[grabKey{window: root, keycode: keycode, mods: mods}]; ok {
		return chord, root, true
	}
	return entity.Chord{}, 0, false
}

// forget drops every grab registered for window.
func (g grabTable) forget(window xproto.Window) {
	for k := range g {
		if k.window == window {
			delete(g, k)
		}
	}
}

// GrabKeys registers chords on window, or on the root window when id is 0.
// Unknown key names are logged and skipped.
func (d *Display) GrabKeys(ctx context.Context, id entity.WindowID, chords []entity.Chord) error {
	log := logging.FromContext(ctx)

	win := xproto.Window(id)
	if id == 0 {
		win = d.root
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, chord := range chords {
		sym, err := keysymFor(chord.Key)
		if err != nil {
			log.Warn().Err(err).Str("chord", chord.String()).Msg("skipping binding")
			continue
		}
		codes := d.keymap.Keycodes(sym)
		if len(codes) == 0 {
			log.Warn().Str("chord", chord.String()).Msg("no keycode for key, skipping binding")
			continue
		}

		mods := modMask(chord.Mods)
		for _, code := range codes {
			for _, lock := range lockVariants {
				err := xproto.GrabKeyChecked(d.conn, true, win, mods|lock, code,
					xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
				if err != nil {
					return fmt.Errorf("grab %s on window %d: %w", chord, win, err)
				}
			}
			d.grabs[grabKey{window: win, keycode: code, mods: mods}] = chord
		}
	}
	return nil
}

// UngrabAll releases every key grab on window, or on the root window when
// id is 0, and forgets the bindings registered there.
func (d *Display) UngrabAll(_ context.Context, id entity.WindowID) error {
	win := xproto.Window(id)
	if id == 0 {
		win = d.root
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := xproto.UngrabKeyChecked(d.conn, xproto.GrabAny, win, xproto.ModMaskAny).Check(); err != nil {
		return fmt.Errorf("ungrab keys on window %d: %w", win, err)
	}
	d.grabs.forget(win)
	return nil
}
