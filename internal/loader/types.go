package loader

import "time"

// LoadInput identifies a prepared batch file to ingest.
type LoadInput struct {
	BatchID     string
	Index       string
	FileURL     string
	RecordCount int
}

// LoadOutput summarizes a processed batch.
type LoadOutput struct {
	BatchID       string
	TotalRecords  int
	Loaded        int
	Skipped       int
	Failed        int
	FailedRecords []FailedRecord
	Duration      time.Duration
}

// Record is one line of a batch file. Text is embedded when no dense vector
// is present; the remaining fields map straight onto the index schema.
type Record struct {
	ID            string                 `json:"id"`
	Text          string                 `json:"text,omitempty"`
	Vector        []float32              `json:"vector,omitempty"`
	SparseIndices []int                  `json:"sparseIndices,omitempty"`
	SparseValues  []float32              `json:"sparseValues,omitempty"`
	Filter        map[string]interface{} `json:"filter,omitempty"`
	Meta          map[string]interface{} `json:"meta,omitempty"`
}

// FailedRecord describes one record that could not be loaded.
type FailedRecord struct {
	RecordID     string
	ErrorType    string
	ErrorMessage string
}

// FailedRecordEvent is handed to the Producer for dead-lettering.
type FailedRecordEvent struct {
	BatchID      string
	Index        string
	Record       Record
	ErrorType    string
	ErrorMessage string
	FailedAt     time.Time
}

// Error types recorded on dead-lettered records.
const (
	EMBEDDING_ERROR = "EMBEDDING_ERROR"
	UPSERT_ERROR    = "UPSERT_ERROR"
)

// Pipeline limits.
const (
	// MaxConcurrency bounds the parallel embed and upsert calls per batch.
	MaxConcurrency = 8
	// EmbedChunkSize is how many texts go into one embeddings request.
	EmbedChunkSize = 64
	// UpsertChunkSize is how many vectors go into one upsert request.
	UpsertChunkSize = 500
	// MaxLineBytes is the scanner limit for one batch file line.
	MaxLineBytes = 1024 * 1024
)
