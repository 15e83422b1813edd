package hal

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/bmp280"
)

// BMP280Address is the address used when SDO is tied to ground.
const BMP280Address = 0x76

// BMP280 adapts the bmp280 driver to Barometer.
type BMP280 struct {
	dev bmp280.Device
}

func NewBMP280(bus drivers.I2C, address uint16) *BMP280 {
	dev := bmp280.New(bus)
	dev.Address = address
	return &BMP280{dev: dev}
}

func (b *BMP280) Configure() bool {
	if !b.dev.Connected() {
		return false
	}
	b.dev.Configure(bmp280.STANDBY_500MS, bmp280.FILTER_16X, bmp280.SAMPLING_2X, bmp280.SAMPLING_16X, bmp280.MODE_NORMAL)
	return true
}

// ReadPressure returns pascals; the driver reports millipascals.
func (b *BMP280) ReadPressure() (int32, error) {
	mpa, err := b.dev.ReadPressure()
	if err != nil {
		return 0, err
	}
	return mpa / 1000, nil
}

func (b *BMP280) ReadTemperature() (float32, error) {
	mc, err := b.dev.ReadTemperature()
	if err != nil {
		return 0, err
	}
	return float32(mc) / 1000, nil
}
