package intake

// Option configures a Collector.
type Option func(*Collector)

// WithDriver overrides the prompt driver used by the collector.
func WithDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithMaxValueLength caps every answer at n bytes after trimming. Zero leaves
// answers unbounded.
func WithMaxValueLength(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.maxValueLength = n
		}
	}
}

// WithMaxAttempts bounds how many times a single field is re-prompted before
// collection fails with ErrAttemptsExhausted.
func WithMaxAttempts(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}
