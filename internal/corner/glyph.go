package corner

// DesignWidth is the natural width and height of the glyph artwork.
const DesignWidth = 245

// artwork is an outer rounded frame with an open notch, and an inner eye.
var artwork = []string{
	"M0,65c0,99.4,80.6,180,180,180h25c22.1,0,40-17.9,40-40V40c0-22.1-17.9-40-40-40H40C17.9,0,0,17.9,0,40v25ZM198.2,36.8c5.5,0,10,4.5,10,10v151.5c0,5.5-4.5,10-10,10h-12.5c-82.3,0-149-66.7-149-149v-12.5c0-5.5,4.5-10,10-10h151.5Z",
	"M165,70h-85c-5.5,0-10,4.5-9.5,10,4.7,50,44.5,89.8,94.5,94.5,5.5.5,10-4,10-9.5v-85c0-5.5-4.5-10-10-10Z",
}

// Glyph is the artwork drawn over one finder pattern. Rotation, in degrees,
// turns the notch towards the symbol's centre.
type Glyph struct {
	Rotation float64
	Paths    []string
}

var glyphs = map[Corner]Glyph{
	TopLeft:    {Rotation: 90, Paths: artwork},
	TopRight:   {Rotation: 180, Paths: artwork},
	BottomLeft: {Rotation: 0, Paths: artwork},
}

// GlyphFor returns the artwork for c.
func GlyphFor(c Corner) Glyph {
	return glyphs[c]
}
