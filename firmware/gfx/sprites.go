package gfx

// Arrow marks the selected menu row.
var Arrow = MustParseSprite([]string{
	"........................",
	"............#...........",
	"............##..........",
	"............###.........",
	"............###.........",
	"............####........",
	"............#####.......",
	"............######......",
	"............#######.....",
	"..#################.....",
	"..##################....",
	"..###################...",
	"..###################...",
	"..##################....",
	"..#################.....",
	"............#######.....",
	"............######......",
	"............#####.......",
	"............####........",
	"............###.........",
	"............###.........",
	"............##..........",
	"............#...........",
	"........................",
})

// Thermometer labels the temperature reading.
var Thermometer = MustParseSprite([]string{
	"........................",
	"..........####..........",
	".........#....#.........",
	".........#....#.........",
	".........#....#.........",
	".........#....#.........",
	".........#....#.........",
	".........#.##.#.........",
	".........#.##.#.........",
	".........#.##.#.........",
	".........#.##.#.........",
	".........#.##.#.........",
	".........#.##.#.........",
	".........#.##.#.........",
	".........######.........",
	"........########........",
	"........########........",
	".......##########.......",
	".......##########.......",
	".......##########.......",
	".......##########.......",
	"........########........",
	"........########........",
	"..........####..........",
})

// Droplet labels the humidity reading.
var Droplet = MustParseSprite([]string{
	"........................",
	"........................",
	"...........##...........",
	"...........##...........",
	"..........####..........",
	"..........####..........",
	".........######.........",
	"........########........",
	"........########........",
	".......##########.......",
	".......##########.......",
	"......############......",
	".....##############.....",
	".....##############.....",
	".....##############.....",
	".....##############.....",
	".....##############.....",
	".....##############.....",
	".....##############.....",
	"......############......",
	".......##########.......",
	"........########........",
	".........######.........",
	"........................",
})
