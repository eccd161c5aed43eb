package config

// Helpers for building a Patch inline:
//
//	net.Configure(config.Patch{HiddenNodes: config.Int(5)})

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Uint64 returns a pointer to v.
func Uint64(v uint64) *uint64 { return &v }
