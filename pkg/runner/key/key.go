// Package key prints the mood legend.
package key

import (
	"context"
	"io"
	"sort"

	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/printers"
)

// Key prints each mood's glyph, picker key and meaning.
type Key struct {
	Out io.Writer
}

func (k *Key) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}
	pp.NewLine()

	gl := mood.DefaultGlyphs()
	sort.Sort(mood.ByOrder(gl))
	pp.Legend(gl)

	pp.NewLine()
	return nil
}
