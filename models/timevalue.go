package models

import (
	"encoding/json"
	"fmt"
)

// TimeValue is the backend's loosely-typed time encoding: either a clock
// string ("HH:mm" or "HH:mm:ss") or an object whose keys are any of
// hour/hours/h and minute/minutes/m. Anything else is kept as an invalid
// value so validation can reject it, rather than being stringified.
type TimeValue struct {
	Str     string
	Hour    int
	Minute  int
	Struct  bool
	Invalid bool
}

// ClockValue builds a TimeValue from an "HH:mm" string.
func ClockValue(s string) TimeValue {
	return TimeValue{Str: s}
}

func (t TimeValue) MarshalJSON() ([]byte, error) {
	if t.Invalid {
		return json.Marshal("")
	}
	if t.Struct {
		return json.Marshal(fmt.Sprintf("%02d:%02d", t.Hour, t.Minute))
	}
	return json.Marshal(t.Str)
}

func (t *TimeValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TimeValue{Str: s}
		return nil
	}

	var obj struct {
		Hour    *int `json:"hour"`
		Hours   *int `json:"hours"`
		H       *int `json:"h"`
		Minute  *int `json:"minute"`
		Minutes *int `json:"minutes"`
		M       *int `json:"m"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		*t = TimeValue{Invalid: true}
		return nil
	}

	hour := firstInt(obj.Hour, obj.Hours, obj.H)
	minute := firstInt(obj.Minute, obj.Minutes, obj.M)
	if hour == nil || minute == nil {
		*t = TimeValue{Invalid: true}
		return nil
	}
	*t = TimeValue{Hour: *hour, Minute: *minute, Struct: true}
	return nil
}

func firstInt(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
