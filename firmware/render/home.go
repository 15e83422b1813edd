package render

import (
	"math"

	"deskclock/firmware/config"
	"deskclock/firmware/gfx"
	"deskclock/firmware/sensor"
)

// Home screen layout.
const (
	clockX, clockY       = 10, 10
	secondsX, secondsY   = 130, 24
	dateX, dateY         = 15, 52
	tempX, tempY         = 32, 72
	humidityX, humidityY = 32, 102
	pressureX, pressureY = 108, 79
	unitX, unitY         = 90, 79
)

var (
	weekdays = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	months   = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// Home draws the home screen and owns its field caches.
type Home struct {
	seconds  *Field
	clock    *Field
	date     *TextField
	temp     *Field
	humidity *Field
	pressure *Field
	unit     *TextField
}

func NewHome() *Home {
	return &Home{
		seconds:  NewField(secondsX, secondsY, 2, gfx.Cyan, FormatTwoDigits),
		clock:    NewField(clockX, clockY, 4, gfx.Cyan, formatClock),
		date:     NewTextField(dateX, dateY, 1, gfx.Green),
		temp:     NewField(tempX, tempY, 3, gfx.Frost, FormatFixed),
		humidity: NewField(humidityX, humidityY, 3, gfx.Turquoise, FormatFixed),
		pressure: NewField(pressureX, pressureY, 2, gfx.Frost, formatPressure),
		unit:     NewTextField(unitX, unitY, 2, gfx.Orange),
	}
}

// DrawShell clears the screen, draws the static decorations and invalidates
// every field.
func (h *Home) DrawShell(c *gfx.Canvas) {
	c.SetBackground(gfx.Black)
	c.Clear()

	c.SetStroke(gfx.Teal)
	c.RoundRect(5, 5, 152, 60, 10)
	c.RoundRect(6, 6, 150, 58, 10)

	c.DrawSprite(gfx.Thermometer, 5, 72, gfx.Red)
	c.DrawSprite(gfx.Droplet, 5, 100, gfx.Turquoise)

	c.SetTextSize(1)
	c.SetStroke(gfx.Orange)
	c.Text("°", unitX-5, unitY-4)
	c.SetTextSize(2)
	c.Text("%", 90, 109)
	c.Text("hPa", 118, 105)

	h.Invalidate()
}

func (h *Home) Invalidate() {
	h.seconds.Invalidate()
	h.clock.Invalidate()
	h.date.Invalidate()
	h.temp.Invalidate()
	h.humidity.Invalidate()
	h.pressure.Invalidate()
	h.unit.Invalidate()
}

// RenderTime updates the clock fields and reports whether the seconds changed.
//
// Minutes are only compared after the seconds changed, and the date only
// after the minutes changed.
func (h *Home) RenderTime(c *gfx.Canvas, t sensor.TimeSnapshot) bool {
	if !h.seconds.Render(c, t.Second) {
		return false
	}
	if h.clock.Render(c, t.ClockKey()) {
		h.date.Render(c, FormatDate(t))
	}
	return true
}

// RenderEnvironment updates temperature, humidity, pressure and the unit glyph.
func (h *Home) RenderEnvironment(c *gfx.Canvas, env sensor.EnvSnapshot, unit config.Unit) {
	h.unit.Render(c, unit.Glyph())
	h.temp.Render(c, round(unit.Convert(env.Temperature)))
	h.humidity.Render(c, round(env.Humidity))
	if env.HasPressure {
		h.pressure.Render(c, int(env.Pressure))
	}
}

// FormatDate renders "Monday    Jan 05, 2026" with the weekday padded to nine cells.
func FormatDate(t sensor.TimeSnapshot) string {
	wd := weekdays[int(t.Weekday)%len(weekdays)]
	for len(wd) < 9 {
		wd += " "
	}
	m := int(t.Month) - 1
	if m < 0 || m >= len(months) {
		m = 0
	}
	return wd + " " + months[m] + " " + FormatTwoDigits(t.Day) + ", " + itoa4(t.Year)
}

func formatClock(key int) string {
	return FormatTwoDigits(key/100) + ":" + FormatTwoDigits(key%100)
}

// formatPressure pads to four cells so 999 and 1000 hPa share a footprint.
func formatPressure(hpa int) string {
	s := FormatFixed(hpa)
	if hpa < 1000 {
		s = " " + s
	}
	return s
}

func itoa4(v int) string {
	if v < 0 || v > 9999 {
		v = 0
	}
	return FormatTwoDigits(v/100) + FormatTwoDigits(v%100)
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
