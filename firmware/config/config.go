// Package config holds the persisted user settings.
package config

import "fmt"

// Unit is the temperature display unit.
type Unit uint8

const (
	Celsius Unit = iota
	Fahrenheit
)

func (u Unit) Valid() bool { return u == Celsius || u == Fahrenheit }

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// Glyph is the single letter drawn next to the temperature.
func (u Unit) Glyph() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// Convert converts a Celsius reading into u.
func (u Unit) Convert(celsius float32) float32 {
	if u == Fahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

func (u Unit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	default:
		return fmt.Sprintf("unit(%d)", uint8(u))
	}
}

// Config is the user configuration.
type Config struct {
	Unit        Unit
	AlarmHour   uint8
	AlarmMinute uint8
}

// Default is used for a blank or corrupt store.
func Default() Config {
	return Config{Unit: Celsius, AlarmHour: 7, AlarmMinute: 0}
}

func (c Config) String() string {
	return fmt.Sprintf("unit=%s alarm=%02d:%02d", c.Unit, c.AlarmHour, c.AlarmMinute)
}

// RecordSize is the encoded size of a Config.
const RecordSize = 3

// Encode packs c as {unit, hour, minute}.
func (c Config) Encode() [RecordSize]byte {
	return [RecordSize]byte{byte(c.Unit), c.AlarmHour, c.AlarmMinute}
}

// Decode unpacks a record. Fields outside their domain are replaced with the
// default value; ok reports whether every field was valid.
func Decode(b []byte) (c Config, ok bool) {
	c = Default()
	if len(b) < RecordSize {
		return c, false
	}
	ok = true
	if u := Unit(b[0]); u.Valid() {
		c.Unit = u
	} else {
		ok = false
	}
	if b[1] < 24 {
		c.AlarmHour = b[1]
	} else {
		ok = false
	}
	if b[2] < 60 {
		c.AlarmMinute = b[2]
	} else {
		ok = false
	}
	return c, ok
}
