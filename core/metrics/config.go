package metrics

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []SinkConfig `json:"sinks"`
	// PrometheusAddr, when set, starts a dedicated /metrics server.
	PrometheusAddr string `json:"prometheus_addr"`
}
