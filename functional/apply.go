package functional

// With calls c with v. It exists so an inline closure can be written next to
// the value it consumes:
//
//	functional.With(cfg, func(c *Config) {
//		c.Name = "primary"
//	})
func With[T any](v T, c Consumer[T]) {
	c(v)
}

// Apply returns f(v).
func Apply[T, R any](v T, f Function[T, R]) R {
	return f(v)
}

// With2 calls c with a and b.
func With2[A, B any](a A, b B, c BiConsumer[A, B]) {
	c(a, b)
}

// Apply2 returns f(a, b).
func Apply2[A, B, R any](a A, b B, f BiFunction[A, B, R]) R {
	return f(a, b)
}

// ApplyErrorable returns f(v). The error is handed back exactly as f
// returned it.
func ApplyErrorable[T, R any](v T, f ErrorableFunction[T, R]) (R, error) {
	return f(v)
}

// Apply2Errorable returns f(a, b). The error is handed back exactly as f
// returned it.
func Apply2Errorable[A, B, R any](a A, b B, f ErrorableBiFunction[A, B, R]) (R, error) {
	return f(a, b)
}
