package timeline

// EnsureNotFinalized rejects any mutation of a finalized timeline.
// Every mutating engine operation calls this before validating or
// persisting anything; read paths never do.
func EnsureNotFinalized(cfg Config) error {
	if cfg.Finalized {
		return ErrFinalized
	}
	return nil
}
