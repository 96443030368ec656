package metrics

import (
	"time"
)

// Unit is the unit a sample value is expressed in.
type Unit string

const (
	UnitCount        Unit = "Count"
	UnitMilliseconds Unit = "Milliseconds"
)

// Sample is a single named observation handed to a Sink.
type Sample struct {
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Unit      Unit      `json:"unit"`
	Namespace string    `json:"namespace"`
	Timestamp time.Time `json:"timestamp"`
}

// Count builds a Count sample.
func Count(name string, value float64) Sample {
	return Sample{Name: name, Value: value, Unit: UnitCount}
}

// Milliseconds builds a latency sample from d.
func Milliseconds(name string, d time.Duration) Sample {
	return Sample{Name: name, Value: float64(d) / float64(time.Millisecond), Unit: UnitMilliseconds}
}

// Sample names emitted by the façade.
const (
	OrdersPerMinute = "OrdersPerMinute"
	OrderLatency    = "OrderLatency"
	Errors5xx       = "Errors5xx"
)
