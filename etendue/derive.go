// SPDX-License-Identifier: MIT

package etendue

import (
	"github.com/katalvlaran/paraxial/conv"
	"github.com/katalvlaran/paraxial/specgrid"
)

// fieldPair derives the imager from fully known object and image fields.
//
//	object angle θ + image height h'  → f = h'/tan θ
//	object height h + image height h' → m = h'/h
//
// Any other combination derives nothing (zero Characteristic, nil error).
// When out is non-nil the inputs used are echoed into it.
func fieldPair(in, out *specgrid.Grid) (Characteristic, error) {
	obj, img := *in.Field(specgrid.Object), *in.Field(specgrid.Image)
	hk, ok := img.Height.Get()
	if !ok {
		return Characteristic{}, nil
	}

	var c Characteristic
	if ang, ok := obj.Angle.Get(); ok {
		u := conv.AngleToSlope(ang)
		if u == 0 {
			return Characteristic{}, conv.Domain("fieldPair", ang, "zero object angle")
		}
		c = focal(hk / u)
		if out != nil {
			out.Field(specgrid.Object).Angle = obj.Angle
		}
	} else if h0, ok := obj.Height.Get(); ok {
		if h0 == 0 {
			return Characteristic{}, conv.Domain("fieldPair", h0, "zero object height")
		}
		c = magnif(hk / h0)
		if out != nil {
			out.Field(specgrid.Object).Height = obj.Height
		}
	} else {
		return Characteristic{}, nil
	}
	if out != nil {
		out.Field(specgrid.Image).Height = img.Height
	}

	return c, nil
}

// aperturePair derives the imager from fully known object and image apertures.
//
//	object pupil D + image NA  → f = (D/2)/u'
//	object pupil D + image f/# → f = D·N'        (NA wins when both are given)
//	object NA|f/# + image NA|f/# → m = u/u'
//
// Any other combination derives nothing. When out is non-nil the inputs used
// are echoed into it.
func aperturePair(in, out *specgrid.Grid, idx Indices) (Characteristic, error) {
	obj, img := *in.Aperture(specgrid.Object), *in.Aperture(specgrid.Image)

	if d, ok := obj.Pupil.Get(); ok {
		var c Characteristic
		if na, ok := img.NA.Get(); ok {
			uk, err := conv.NAToSlope(na, idx.Image)
			if err != nil {
				return Characteristic{}, err
			}
			if uk == 0 {
				return Characteristic{}, conv.Domain("aperturePair", na, "zero image NA")
			}
			c = focal(d / 2 / uk)
			echoAperture(out, specgrid.Image, specgrid.ApertureCell{NA: img.NA})
		} else if fno, ok := img.FNumber.Get(); ok {
			c = focal(d * fno)
			echoAperture(out, specgrid.Image, specgrid.ApertureCell{FNumber: img.FNumber})
		} else {
			return Characteristic{}, nil
		}
		echoAperture(out, specgrid.Object, specgrid.ApertureCell{Pupil: obj.Pupil})

		return c, nil
	}

	u0, ok0, err := conv.SlopeFromAperture(obj, idx.Object)
	if err != nil {
		return Characteristic{}, err
	}
	uk, okk, err := conv.SlopeFromAperture(img, idx.Image)
	if err != nil {
		return Characteristic{}, err
	}
	if !ok0 || !okk {
		return Characteristic{}, nil
	}
	if uk == 0 {
		return Characteristic{}, conv.Domain("aperturePair", uk, "zero image slope")
	}
	echoAperture(out, specgrid.Object, slopeLabels(obj))
	echoAperture(out, specgrid.Image, slopeLabels(img))

	return magnif(u0 / uk), nil
}

// slopeLabels keeps the label SlopeFromAperture actually used.
func slopeLabels(c specgrid.ApertureCell) specgrid.ApertureCell {
	if c.NA.IsSet() {
		return specgrid.ApertureCell{NA: c.NA}
	}

	return specgrid.ApertureCell{FNumber: c.FNumber}
}

func echoAperture(out *specgrid.Grid, s specgrid.Side, c specgrid.ApertureCell) {
	if out != nil {
		mergeAperture(out.Aperture(s), c)
	}
}
