package bootstrap

import "fmt"

// State is how far a Context has progressed. States only move forward
// during Init and drop back to Uninitialized on Teardown or failure.
type State int

const (
	Uninitialized State = iota
	InstanceCreated
	DiagnosticsReady
	DeviceSelected
	SurfaceReady
	ContextReady
)

var stateNames = [...]string{
	Uninitialized:    "Uninitialized",
	InstanceCreated:  "InstanceCreated",
	DiagnosticsReady: "DiagnosticsReady",
	DeviceSelected:   "DeviceSelected",
	SurfaceReady:     "SurfaceReady",
	ContextReady:     "ContextReady",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Stage names a step of Context.Init.
type Stage string

const (
	StageWindow         Stage = "window"
	StageInstance       Stage = "instance"
	StageDiagnostics    Stage = "diagnostics"
	StageDevice         Stage = "device"
	StageSurface        Stage = "surface"
	StageQueueFamilies  Stage = "queue families"
	StageLogicalContext Stage = "logical context"
)
