package gfx

import "fmt"

// Sprite is a 1-bit image up to 32 pixels wide.
type Sprite struct {
	W, H int16
	rows []uint32
}

func (s Sprite) bit(row uint32, x int16) bool {
	return row&(1<<uint(s.W-1-x)) != 0
}

// At reports whether the pixel at (x, y) is set.
func (s Sprite) At(x, y int16) bool {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return false
	}
	return s.bit(s.rows[y], x)
}

// ParseSprite reads rows of '#' (set) and '.' (clear) of equal length.
func ParseSprite(art []string) (Sprite, error) {
	if len(art) == 0 {
		return Sprite{}, fmt.Errorf("sprite: no rows")
	}
	w := len(art[0])
	if w == 0 || w > 32 {
		return Sprite{}, fmt.Errorf("sprite: width %d out of range", w)
	}
	sp := Sprite{W: int16(w), H: int16(len(art)), rows: make([]uint32, len(art))}
	for y, line := range art {
		if len(line) != w {
			return Sprite{}, fmt.Errorf("sprite: row %d has width %d, want %d", y, len(line), w)
		}
		for x := 0; x < w; x++ {
			switch line[x] {
			case '#':
				sp.rows[y] |= 1 << uint(w-1-x)
			case '.':
			default:
				return Sprite{}, fmt.Errorf("sprite: row %d: bad char %q", y, line[x])
			}
		}
	}
	return sp, nil
}

// MustParseSprite is ParseSprite for package-level tables.
func MustParseSprite(art []string) Sprite {
	sp, err := ParseSprite(art)
	if err != nil {
		panic(err)
	}
	return sp
}
