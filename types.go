package smarttub

// Status represents a raw device status response as a flexible map.
// The SmartTub API returns nested JSON whose shape varies by model and
// firmware, so status payloads are not modeled field by field.
type Status map[string]any

// SecondaryFiltrationMode controls the auxiliary water-filtration cycle.
type SecondaryFiltrationMode string

// Secondary filtration mode constants.
const (
	SecondaryFiltrationFrequent   SecondaryFiltrationMode = "FREQUENT"
	SecondaryFiltrationInfrequent SecondaryFiltrationMode = "INFREQUENT"
	SecondaryFiltrationAway       SecondaryFiltrationMode = "AWAY"
)

func (m SecondaryFiltrationMode) valid() bool {
	switch m {
	case SecondaryFiltrationFrequent, SecondaryFiltrationInfrequent, SecondaryFiltrationAway:
		return true
	}
	return false
}

// HeatMode controls how the spa heater runs.
type HeatMode string

// Heat mode constants.
const (
	HeatModeEconomy HeatMode = "ECONOMY"
	HeatModeDay     HeatMode = "DAY"
	HeatModeAuto    HeatMode = "AUTO"
)

func (m HeatMode) valid() bool {
	switch m {
	case HeatModeEconomy, HeatModeDay, HeatModeAuto:
		return true
	}
	return false
}

// TemperatureFormat selects the unit the spa displays temperatures in.
// It does not change the unit of values sent by SetTemperature, which follow
// the device's configured format unconverted.
type TemperatureFormat string

// Temperature format constants.
const (
	TemperatureFormatFahrenheit TemperatureFormat = "FAHRENHEIT"
	TemperatureFormatCelsius    TemperatureFormat = "CELSIUS"
)

func (f TemperatureFormat) valid() bool {
	switch f {
	case TemperatureFormatFahrenheit, TemperatureFormatCelsius:
		return true
	}
	return false
}

// EnergyInterval is the aggregation granularity of an energy usage report.
type EnergyInterval string

// Energy interval constants.
const (
	EnergyIntervalDay   EnergyInterval = "DAY"
	EnergyIntervalMonth EnergyInterval = "MONTH"
)

func (i EnergyInterval) valid() bool {
	switch i {
	case EnergyIntervalDay, EnergyIntervalMonth:
		return true
	}
	return false
}

// LightMode is a color or animation program for a light zone.
type LightMode string

// Light mode constants.
const (
	LightModePurple         LightMode = "PURPLE"
	LightModeOrange         LightMode = "ORANGE"
	LightModeRed            LightMode = "RED"
	LightModeYellow         LightMode = "YELLOW"
	LightModeGreen          LightMode = "GREEN"
	LightModeAqua           LightMode = "AQUA"
	LightModeBlue           LightMode = "BLUE"
	LightModeHighSpeedWheel LightMode = "HIGH_SPEED_WHEEL"
	LightModeOff            LightMode = "OFF"
)

func (m LightMode) valid() bool {
	switch m {
	case LightModePurple, LightModeOrange, LightModeRed, LightModeYellow,
		LightModeGreen, LightModeAqua, LightModeBlue, LightModeHighSpeedWheel,
		LightModeOff:
		return true
	}
	return false
}
