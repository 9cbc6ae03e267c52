package buffer

import (
	"fmt"
	"io"
)

// Dump writes a human-readable summary of the layout to w.
func (l Layout) Dump(w io.Writer, name string) error {
	state := "empty"
	if !l.Empty() {
		state = "populated"
	}
	if _, err := fmt.Fprintf(w, "Buffer %s (%s)\n", name, state); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  vertices: %d  index bytes: %d  vertex bytes: %d\n",
		l.VertexCount, l.IndexSize, l.VertexSize); err != nil {
		return err
	}
	for _, s := range l.Sections {
		if _, err := fmt.Fprintf(w, "  %-8s offset %8d  size %8d  components %d\n",
			s.Attribute, s.Offset, s.Size, s.Attribute.Components()); err != nil {
			return err
		}
	}
	return nil
}
