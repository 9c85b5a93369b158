package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value that shaped a run.
type Parameter struct {
	Key   string    `json:"key" yaml:"key"`
	Label string    `json:"label" yaml:"label"`
	Type  ParamType `json:"type" yaml:"type"`
	Value string    `json:"value" yaml:"value"`
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string      `json:"name" yaml:"name"`
	Params []Parameter `json:"params" yaml:"params"`
}

// ParameterSnapshot captures the parameters of a run.
type ParameterSnapshot struct {
	Groups []ParameterGroup `json:"groups" yaml:"groups"`
}

// IntParam builds an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Uint64Param builds an unsigned integer parameter.
func Uint64Param(key, label string, value uint64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatUint(value, 10)}
}

// StringParam builds a free-form parameter.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}
