package metrics

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlan forwards the record to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordPlan(rec PlanRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlan(rec); err != nil {
			return err
		}
	}
	return nil
}

// RecordTaskEvent forwards task mutations to sinks that record them.
func (m *MultiSink) RecordTaskEvent(ev TaskEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(TaskRecorder); ok {
			if err := rec.RecordTaskEvent(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
