package domain

import (
	"fmt"
	"strings"
)

// StationType is the category of a physical station in the café. The
// set is closed: every reservation and pricing tier references one of
// these values, never a free-form string.
type StationType string

const (
	StationPS5           StationType = "ps5"
	StationPS4           StationType = "ps4"
	StationXbox          StationType = "xbox"
	StationPC            StationType = "pc"
	StationPool          StationType = "pool"
	StationArcade        StationType = "arcade"
	StationSnooker       StationType = "snooker"
	StationVR            StationType = "vr"
	StationSteeringWheel StationType = "steering_wheel"
)

// AllStationTypes lists every known station type in display order.
var AllStationTypes = []StationType{
	StationPS5,
	StationPS4,
	StationXbox,
	StationPC,
	StationPool,
	StationArcade,
	StationSnooker,
	StationVR,
	StationSteeringWheel,
}

// stationAliases is the single canonical alias table. Legacy clients
// used several spellings for the same station type; all of them are
// resolved here and nowhere else.
var stationAliases = map[string]StationType{
	"ps5":            StationPS5,
	"playstation5":   StationPS5,
	"ps4":            StationPS4,
	"playstation4":   StationPS4,
	"xbox":           StationXbox,
	"pc":             StationPC,
	"computer":       StationPC,
	"pool":           StationPool,
	"billiard":       StationPool,
	"arcade":         StationArcade,
	"snooker":        StationSnooker,
	"vr":             StationVR,
	"steering_wheel": StationSteeringWheel,
	"steering":       StationSteeringWheel,
	"wheel":          StationSteeringWheel,
}

// stationLabels maps a station type to its dashboard label prefix.
var stationLabels = map[StationType]string{
	StationPS5:           "PS5",
	StationPS4:           "PS4",
	StationXbox:          "XBOX",
	StationPC:            "PC",
	StationPool:          "POOL",
	StationArcade:        "ARC",
	StationSnooker:       "SNK",
	StationVR:            "VR",
	StationSteeringWheel: "WHEEL",
}

// ParseStationType resolves a station type string, including legacy
// aliases, to its canonical value.
func ParseStationType(s string) (StationType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	if st, ok := stationAliases[normalized]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStationType, s)
}

// IsValid reports whether the value is one of the known station types.
func (st StationType) IsValid() bool {
	_, ok := stationLabels[st]
	return ok
}

// Label returns the dashboard label prefix for the station type.
func (st StationType) Label() string {
	if label, ok := stationLabels[st]; ok {
		return label
	}
	return strings.ToUpper(string(st))
}

// UnitLabel formats a numbered physical unit for display, e.g. "PS5-03".
func (st StationType) UnitLabel(unitNumber int) string {
	return fmt.Sprintf("%s-%02d", st.Label(), unitNumber)
}
