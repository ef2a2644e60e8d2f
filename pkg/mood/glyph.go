package mood

// Glyph is the legend entry for a mood.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	// Color is an ANSI 256 palette index used by the terminal renderers.
	Color string
	Order int
}

func (g Glyph) String() string {
	return g.Symbol
}

var glyphs = map[Mood]Glyph{
	Happy: {
		Key:     "h",
		Symbol:  "☺",
		Meaning: "happy",
		Color:   "78", // green
		Order:   0,
	},
	Neutral: {
		Key:     "n",
		Symbol:  "◯",
		Meaning: "neutral",
		Color:   "75", // blue
		Order:   1,
	},
	Sad: {
		Key:     "s",
		Symbol:  "☹",
		Meaning: "sad",
		Color:   "141", // purple
		Order:   2,
	},
	Angry: {
		Key:     "a",
		Symbol:  "✸",
		Meaning: "angry",
		Color:   "203", // red
		Order:   3,
	},
}

// NoData is the legend entry for a day without a recorded mood.
var NoData = Glyph{
	Key:     "",
	Symbol:  "·",
	Meaning: "no data",
	Color:   "250",
	Order:   4,
}

// Glyph returns the legend entry for m, or NoData for an invalid mood.
func (m Mood) Glyph() Glyph {
	if g, ok := glyphs[m]; ok {
		return g
	}
	return NoData
}

// DefaultGlyphs returns the legend for every mood followed by NoData.
func DefaultGlyphs() []Glyph {
	out := make([]Glyph, 0, len(glyphs)+1)
	for _, m := range All() {
		out = append(out, m.Glyph())
	}
	return append(out, NoData)
}

// ByOrder sorts glyphs by their legend order.
type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }
