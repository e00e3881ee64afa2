package layout

// Consumers of the original tooling read some values under two names, so
// both are always populated together.

// SetNumber stores the other party's number under its aliases.
func SetNumber(fields map[string]any, number string) {
	fields["number"] = number
	fields["phone"] = number
}

// SetEpoch stores the resolved Unix epoch under its aliases.
func SetEpoch(fields map[string]any, epoch int64) {
	fields["epoch"] = epoch
	fields["timestamp"] = epoch
}
