//go:build !tinygo && linux

package hal

import (
	"fmt"
	"sync"

	"github.com/davecheney/i2c"
)

// linuxI2C exposes /dev/i2c-N as a drivers.I2C. Each device address gets its
// own file handle.
type linuxI2C struct {
	mu   sync.Mutex
	bus  int
	devs map[uint16]*i2c.I2C
}

func newLinuxI2C(bus int) *linuxI2C {
	return &linuxI2C{bus: bus, devs: make(map[uint16]*i2c.I2C)}
}

func (b *linuxI2C) device(addr uint16) (*i2c.I2C, error) {
	if d, ok := b.devs[addr]; ok {
		return d, nil
	}
	d, err := i2c.New(uint8(addr), b.bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c-%d addr %#x: %w", b.bus, addr, err)
	}
	b.devs[addr] = d
	return d, nil
}

// Tx writes w then reads r as two separate transfers.
func (b *linuxI2C) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, err := b.device(addr)
	if err != nil {
		return err
	}
	if len(w) > 0 {
		if _, err := d.Write(w); err != nil {
			return fmt.Errorf("i2c write %#x: %w", addr, err)
		}
	}
	if len(r) > 0 {
		if _, err := d.Read(r); err != nil {
			return fmt.Errorf("i2c read %#x: %w", addr, err)
		}
	}
	return nil
}

func (b *linuxI2C) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	var first error
	for addr, d := range b.devs {
		if err := d.Close(); err != nil && first == nil {
			first = err
		}
		delete(b.devs, addr)
	}
	return first
}

// attachI2C swaps the simulated barometer for a BMP280 on the given bus.
func attachI2C(h *hostHAL, bus int) error {
	b := newLinuxI2C(bus)
	baro := NewBMP280(b, BMP280Address)
	if !baro.Configure() {
		_ = b.Close()
		return fmt.Errorf("bmp280 not found on i2c-%d", bus)
	}
	h.baro = baro
	h.closers = append(h.closers, b.Close)
	h.logger.WriteLineString(fmt.Sprintf("hal: bmp280 on i2c-%d", bus))
	return nil
}
