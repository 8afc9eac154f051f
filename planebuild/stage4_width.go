package planebuild

import "github.com/go-pcb/planefill/clipper"

// enforceMinimumWidth implements stage 4: erode by min_width/2 then dilate
// back by the same amount, with rounded joins. Any strand narrower than
// min_width vanishes in the erosion and does not return in the dilation.
func (b *Builder) enforceMinimumWidth() {
	if len(b.result) == 0 || b.plane.MinWidth <= 0 {
		return
	}
	half := float64(b.plane.MinWidth) / 2

	eroded, err := clipper.InflatePaths64(b.result, -half, clipper.Round, clipper.ClosedPolygon, arcToleranceOptions())
	if err != nil || len(eroded) == 0 {
		b.result = nil
		return
	}
	dilated, err := clipper.InflatePaths64(eroded, half, clipper.Round, clipper.ClosedPolygon, arcToleranceOptions())
	if err != nil {
		return
	}
	b.result = dilated
}
