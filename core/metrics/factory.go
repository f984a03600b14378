package metrics

import (
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// SinkConfig selects a sink implementation by type name and carries its
// raw configuration.
type SinkConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// SinkFactory builds a Sink from its raw configuration.
type SinkFactory func(conf map[string]any) (Sink, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]SinkFactory)
)

// RegisterSink adds a sink factory under the given type name. Names are
// claimed once; a second registration is an error.
func RegisterSink(name string, f SinkFactory) error {
	if f == nil {
		return fmt.Errorf("sink factory nil for %s", name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		return fmt.Errorf("sink factory already registered for %s", name)
	}
	registry[name] = f
	return nil
}

// NewSink creates a Sink from the configured list. An empty list yields a
// NopSink; multiple entries are fanned out through a MultiSink.
func NewSink(cfgs []SinkConfig) (Sink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	sinks := make([]Sink, len(cfgs))
	for i, c := range cfgs {
		registryMu.RLock()
		f, ok := registry[c.Type]
		registryMu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("unknown sink type %s", c.Type)
		}
		s, err := f(c.Conf)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return NewMultiSink(sinks...), nil
}

// DecodeSinkConf fills out a sink's config struct from its raw conf map
// using json tags.
func DecodeSinkConf(conf map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(conf)
}
