package xcore

// Default builds a sink at LevelDebug with debug and info bound to os.Stdout
// and warn and error bound to os.Stderr. Construct it once at startup and pass
// it to whatever needs to write; there is no package-level instance.
func Default() *Sink {
	out, errDev := Stdout(), Stderr()
	s, err := NewBuilder().
		WithLevel(LevelDebug).
		WithDevices(out, errDev).
		Build()
	if err != nil {
		// Build only fails on nil devices or invalid levels, neither possible here.
		panic(err)
	}
	return s
}
