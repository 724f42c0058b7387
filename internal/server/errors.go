package server

import (
	"fmt"
	"strconv"
)

// PortError reports a port outside 1..65535 or not a number
type PortError struct {
	Value string
}

func (e *PortError) Error() string {
	return fmt.Sprintf("invalid port %q: must be an integer between 1 and 65535", e.Value)
}

// ValidatePort checks that port is usable for listening.
func ValidatePort(port int) error {
	if port <= 0 || port > 65535 {
		return &PortError{Value: strconv.Itoa(port)}
	}
	return nil
}

// ParsePort parses and validates a port given as text.
func ParsePort(value string) (int, error) {
	port, err := strconv.Atoi(value)
	if err != nil {
		return 0, &PortError{Value: value}
	}
	if err := ValidatePort(port); err != nil {
		return 0, err
	}
	return port, nil
}
