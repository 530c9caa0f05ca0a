package rangeblaze

// fault reports a contract violation. Every violation named in the package
// invariants is a programmer error, not a recoverable condition, so it
// fails fast via panic rather than returning an error.
func fault(msg string) {
	panic("rangeblaze: " + msg)
}
