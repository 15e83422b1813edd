//go:build !tinygo && !linux

package hal

import "errors"

func attachPi(*hostHAL, string) error {
	return errors.New("gpio requires linux")
}

func attachI2C(*hostHAL, int) error {
	return errors.New("i2c requires linux")
}
