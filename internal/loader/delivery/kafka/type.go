package kafka

import (
	"time"

	"github.com/endee-io/endee-go/internal/loader"
)

const (
	// TopicBatchReady announces a prepared batch file. Used when the
	// configured topic is empty.
	TopicBatchReady = "endee.batch.ready"
	// TopicLoaderDLQ receives records that failed to load.
	TopicLoaderDLQ = "endee.loader.dlq"
	// GroupIDLoader is the default loader consumer group.
	GroupIDLoader = "endee-loader"
)

// BatchReadyMessage is the wire form of a batch announcement.
type BatchReadyMessage struct {
	BatchID     string    `json:"batch_id"`
	Index       string    `json:"index"`
	FileURL     string    `json:"file_url"`
	RecordCount int       `json:"record_count"`
	CompletedAt time.Time `json:"completed_at"`
}

// FailedRecordMessage is the wire form of a dead-lettered record. The full
// record rides along so operators can repair and replay it.
type FailedRecordMessage struct {
	BatchID      string        `json:"batch_id"`
	Index        string        `json:"index"`
	Record       loader.Record `json:"record"`
	ErrorType    string        `json:"error_type"`
	ErrorMessage string        `json:"error_message"`
	FailedAt     time.Time     `json:"failed_at"`
}
