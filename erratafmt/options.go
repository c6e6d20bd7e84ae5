package erratafmt

// Opts configures Pretty output.
type Opts struct {
	// Color enables per-severity coloring of the level tag.
	Color bool
	// Width truncates each annotation text to this many display cells,
	// 0 - unlimited.
	Width int
	// ShowCount appends a trailing summary line with the note count.
	ShowCount bool
}
