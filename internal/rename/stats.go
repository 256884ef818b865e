package rename

// RunStats tracks aggregate counters and byte totals across a batch run.
// Renamed includes dry-run reports; TotalImageBytes counts every payload
// read, whether or not the file ended up renamed.
type RunStats struct {
	Total           int
	Current         int
	Renamed         int
	Skipped         int
	Failed          int
	TotalImageBytes int64
}
