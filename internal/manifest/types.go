package manifest

// Index describes one generated sprite sheet: where each frame landed.
// It carries no timing information.
type Index struct {
	Version     int      `json:"version"`
	GeneratedAt string   `json:"generated_at"`
	Source      Source   `json:"source"`
	Sheet       Sheet    `json:"sheet"`
	Cells       []Cell   `json:"cells"`
	Settings    Settings `json:"settings"`
}

// Source holds metadata about the decoded input.
type Source struct {
	Path        string `json:"path"`
	Kind        string `json:"kind"` // "gif", "still", "video"
	FrameCount  int    `json:"frame_count"`
	FrameWidth  int    `json:"frame_width"`
	FrameHeight int    `json:"frame_height"`
}

// Sheet is the encoded output file.
type Sheet struct {
	Path   string `json:"path"` // relative to the index file
	Format string `json:"format"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // first 16 hex chars of xxhash64
}

// Cell is the rectangle frame Index occupies on the sheet.
type Cell struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
	W     int `json:"w"`
	H     int `json:"h"`
}

// Settings records the output settings the sheet was encoded with.
type Settings struct {
	Profile string `json:"profile"`
	Quality int    `json:"quality"`
	Colors  int    `json:"colors"`
	Layout  string `json:"layout"` // "auto" or "manual"
}

// SupportedIndexVersion is the current schema version.
const SupportedIndexVersion = 1
