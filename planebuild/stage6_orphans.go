package planebuild

import (
	"github.com/go-pcb/planefill/clipper"
	"github.com/go-pcb/planefill/geom"
)

// removeOrphans implements stage 6: when keep_orphans is false, drop every
// flattened fragment whose intersection with the recorded same-net
// contact set is empty under NonZero/NonZero.
func (b *Builder) removeOrphans(fragments []geom.Path) []geom.Path {
	if b.plane.KeepOrphans {
		return fragments
	}
	if len(b.sameNetContacts) == 0 {
		return nil // no contacts at all: every fragment is an orphan
	}
	out := make([]geom.Path, 0, len(fragments))
	for _, frag := range fragments {
		ip := frag.ToIntPath()
		hit, err := clipper.Intersect64(clipper.Paths64{ip}, b.sameNetContacts, clipper.NonZero)
		if err != nil {
			continue
		}
		if len(hit) > 0 {
			out = append(out, frag)
		}
	}
	return out
}
