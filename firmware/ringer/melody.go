package ringer

// Pitches in Hz.
const (
	rest = 0
	e4   = 330
	g4   = 392
	a4   = 440
	b4   = 494
	c5   = 523
	d5   = 587
)

// Pirates is the default alarm tune.
var Pirates = Melody{
	{e4, 8}, {g4, 8}, {a4, 4}, {a4, 8}, {rest, 8},
	{a4, 8}, {b4, 8}, {c5, 4}, {c5, 8}, {rest, 8},
	{c5, 8}, {d5, 8}, {b4, 4}, {b4, 8}, {rest, 8},
	{a4, 8}, {g4, 8}, {a4, 4}, {rest, 8},

	{e4, 8}, {g4, 8}, {a4, 4}, {a4, 8}, {rest, 8},
	{a4, 8}, {b4, 8}, {c5, 4}, {c5, 8}, {rest, 8},
	{c5, 8}, {d5, 8}, {b4, 4}, {b4, 8}, {rest, 8},
	{a4, 8}, {g4, 8}, {a4, 4}, {rest, 4},
}
