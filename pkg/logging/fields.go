package logging

import (
	"time"
)

// Common field constructors

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Pipeline-specific field constructors

// Component tags log entries with the pipeline stage that produced them
func Component(name string) Field {
	return Field{Key: "component", Value: name}
}

// ControlID tags entries with the control being processed
func ControlID(id string) Field {
	return Field{Key: "control_id", Value: id}
}

// DocumentID tags entries with the generated document's id
func DocumentID(id string) Field {
	return Field{Key: "document_id", Value: id}
}
