package ui

import (
	"time"

	"deskclock/hal"
)

// SeedRTC sets the RTC from the build time when the RTC lost its time, or when
// force is set and the RTC is behind the build. It reports whether it wrote.
func SeedRTC(rtc hal.RTC, build time.Time, force bool) (bool, error) {
	if rtc == nil || build.IsZero() {
		return false, nil
	}
	if rtc.IsTimeValid() && !force {
		return false, nil
	}
	if rtc.IsTimeValid() {
		now, err := rtc.ReadTime()
		if err == nil && !now.Before(build) {
			return false, nil
		}
	}
	if err := rtc.SetTime(build); err != nil {
		return false, err
	}
	return true, nil
}
