package x11

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type atoms struct {
	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom
}

func internAtoms(conn *xgb.Conn) (atoms, error) {
	var a atoms
	for _, entry := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_PROTOCOLS", &a.wmProtocols},
		{"WM_DELETE_WINDOW", &a.wmDeleteWindow},
	} {
		reply, err := xproto.InternAtom(conn, false, uint16(len(entry.name)), entry.name).Reply()
		if err != nil {
			return atoms{}, fmt.Errorf("intern atom %s: %w", entry.name, err)
		}
		*entry.dst = reply.Atom
	}
	return a, nil
}

// atomList decodes a 32-bit ATOM property value.
func atomList(value []byte) []xproto.Atom {
	list := make([]xproto.Atom, 0, len(value)/4)
	for i := 0; i+4 <= len(value); i += 4 {
		list = append(list, xproto.Atom(xgb.Get32(value[i:])))
	}
	return list
}

func containsAtom(list []xproto.Atom, atom xproto.Atom) bool {
	for _, a := range list {
		if a == atom {
			return true
		}
	}
	return false
}
