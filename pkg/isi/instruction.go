package isi

import (
	"encoding/json"
	"fmt"
)

// Instruction is a single operation included in a transaction. Instructions
// validate their operands and encode to the tagged-union JSON wire form.
type Instruction interface {
	// Kind returns the wire tag of the instruction, e.g. "Register".
	Kind() string
	// Validate checks the instruction's operands.
	Validate() error
	// Body returns the payload placed under the wire tag.
	Body() (any, error)
}

// Encode validates the instruction and renders its wire form.
func Encode(instruction Instruction) (json.RawMessage, error) {
	if instruction == nil {
		return nil, fmt.Errorf("instruction is nil")
	}
	if err := instruction.Validate(); err != nil {
		return nil, err
	}

	body, err := instruction.Body()
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(map[string]any{instruction.Kind(): body})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s instruction: %w", instruction.Kind(), err)
	}
	return encoded, nil
}

// EncodeAll validates and renders a batch of instructions in order.
func EncodeAll(instructions []Instruction) ([]json.RawMessage, error) {
	if len(instructions) == 0 {
		return nil, fmt.Errorf("at least one instruction is required")
	}

	encoded := make([]json.RawMessage, 0, len(instructions))
	for index, instruction := range instructions {
		wire, err := Encode(instruction)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", index, err)
		}
		encoded = append(encoded, wire)
	}
	return encoded, nil
}
