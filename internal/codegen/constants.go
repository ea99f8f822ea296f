// Package codegen emits standalone Go matcher functions from compiled
// pattern programs.
package codegen

import "fmt"

// Variable names used in generated code.
const (
	InputName           = "runes"
	InputLenName        = "l"
	OffsetName          = "offset"
	StartName           = "start"
	StackName           = "stack"
	NextInstructionName = "nextInstruction"
	StepSelectName      = "StepSelect"
	TryFallbackName     = "TryFallback"
	VisitedName         = "visited"
)

// InstructionName returns the label name for an instruction.
func InstructionName(pc int) string {
	return fmt.Sprintf("Ins%d", pc)
}
