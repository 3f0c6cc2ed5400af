package theme

// DefaultName is the theme used when none is configured.
const DefaultName = "classic"

// Classic is the traditional fireplace look: a dense twelve-step glyph
// ramp with a single glyph per bin, and a black-red-orange-white ramp.
// The first few glyphs are spaces or very light to minimize "smoke"
// appearance.
var classic = &Theme{
	Name: "classic",
	Glyphs: [][]rune{
		{' '}, {'.'}, {','}, {'\''}, {'"'}, {'~'},
		{'^'}, {'o'}, {'O'}, {'*'}, {'0'}, {'M'},
	},
	Colors: []string{
		"#000000", // Background, no heat
		"#640000", // Deep red, subtle embers
		"#af0000", // Red
		"#ff4b32", // Orange-red
		"#ff964b", // Dark orange
		"#ffaf64", // Orange
		"3",       // Terminal yellow
		"#ffff64", // Light yellow
		"15",      // Terminal bright white, very hot core
		"#ffffc8", // Brighter white
		"#fffaf0", // Almost pure white for brightest parts
	},
}

// Ember leans on multi-candidate bins so cells of equal heat shimmer
// against each other, giving a slow coal-bed look.
var ember = &Theme{
	Name: "ember",
	Glyphs: [][]rune{
		{' '},
		{'.'},
		{'.', ','},
		{':', ';'},
		{'~', '*'},
		{'^', '~'},
		{'o', 'c'},
		{'*', 'o'},
		{'@', '0'},
		{'M', '@', 'W'},
	},
	Colors: []string{
		"#000000",
		"#3b0f05",
		"#6e1b0a",
		"#a63312",
		"#d9531e",
		"#f07f1f",
		"#ffa824",
		"#ffd166",
		"#fff3d6",
	},
}

// BlueGas mimics a natural-gas flame.
var blueGas = &Theme{
	Name: "bluegas",
	Glyphs: [][]rune{
		{' '},
		{'.'},
		{':', ';'},
		{'~', '+'},
		{'*', '%'},
		{'&', '8'},
		{'@', '#'},
		{'M', 'W'},
	},
	Colors: []string{
		"#000000",
		"#021c3b",
		"#06366e",
		"#0a58a6",
		"#1e88d9",
		"#64c3f0",
		"#d6f0ff",
	},
}

func init() {
	Register(classic)
	Register(ember)
	Register(blueGas)
}
