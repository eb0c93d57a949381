package setflag

import (
	"fmt"
	"strings"
)

// New returns a flag.Value accepting a comma-separated subset of the given
// options. Values are remembered in the order they were set, since the
// collector visits keywords in that order.
func New(options ...string) *SetFlag {
	sf := &SetFlag{
		seen:    make(map[string]struct{}, len(options)),
		options: make(map[string]struct{}, len(options)),
	}
	for _, opt := range options {
		sf.options[opt] = struct{}{}
	}
	return sf
}

type SetFlag struct {
	options map[string]struct{}
	seen    map[string]struct{}
	values  []string
}

func (sf *SetFlag) List() []string {
	return sf.values
}

func (sf *SetFlag) String() string {
	return strings.Join(sf.values, ", ")
}

func (sf *SetFlag) Set(value string) error {
	values := []string{value}
	if strings.Contains(value, ",") {
		values = strings.Split(value, ",")
		for i, str := range values {
			values[i] = strings.TrimSpace(str)
		}
	}
	for _, value := range values {
		if _, exists := sf.options[value]; !exists {
			return fmt.Errorf("unsupported value '%s'", value)
		}
		if _, dup := sf.seen[value]; dup {
			continue
		}
		sf.seen[value] = struct{}{}
		sf.values = append(sf.values, value)
	}
	return nil
}
