package usecase

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/endee-io/endee-go/internal/loader"
	"github.com/endee-io/endee-go/pkg/cache"
	"github.com/endee-io/endee-go/pkg/endee"
	"github.com/endee-io/endee-go/pkg/objstore"
)

// recordItem tracks one record through the embed and upsert phases. Items
// are only written by the goroutine owning their chunk.
type recordItem struct {
	rec     loader.Record
	errType string
	errMsg  string
}

// Load ingests one prepared batch file into the named index.
func (uc *implUseCase) Load(ctx context.Context, input loader.LoadInput) (loader.LoadOutput, error) {
	startTime := time.Now()

	if input.Index == "" || input.FileURL == "" {
		return loader.LoadOutput{}, loader.ErrInvalidInput
	}

	// Step 1: Resolve the object behind the file URL
	objectName, err := uc.parseFileURL(input.FileURL)
	if err != nil {
		uc.l.Errorf(ctx, "loader.usecase.Load: parse file url: %v", err)
		return loader.LoadOutput{}, err
	}

	// Step 2: Download the batch file
	reader, _, err := uc.store.Download(ctx, objectName)
	if err != nil {
		uc.l.Errorf(ctx, "loader.usecase.Load: download %s: %v", objectName, err)
		if objstore.IsNotFound(err) {
			return loader.LoadOutput{}, loader.ErrFileNotFound
		}
		return loader.LoadOutput{}, loader.ErrFileDownloadFailed
	}
	defer reader.Close()

	// Step 3: Parse JSONL into records
	records, err := uc.parseJSONL(ctx, reader)
	if err != nil {
		uc.l.Errorf(ctx, "loader.usecase.Load: parse file: %v", err)
		return loader.LoadOutput{}, loader.ErrFileParseFailed
	}
	if input.RecordCount > 0 && len(records) != input.RecordCount {
		uc.l.Warnf(ctx, "loader.usecase.Load: batch %s announced %d records, file has %d",
			input.BatchID, input.RecordCount, len(records))
	}

	// Step 4: Process the batch
	result := uc.processBatch(ctx, input, records)

	// Step 5: Invalidate cached queries of the touched index
	if result.Loaded > 0 {
		if err := cache.InvalidateIndex(ctx, uc.redis, "", input.Index); err != nil {
			uc.l.Warnf(ctx, "loader.usecase.Load: invalidate cache for %s: %v", input.Index, err)
		}
	}

	result.BatchID = input.BatchID
	result.TotalRecords = len(records)
	result.Duration = time.Since(startTime)

	uc.l.Infof(ctx, "loader.usecase.Load: batch %s done: loaded=%d failed=%d skipped=%d in %s",
		input.BatchID, result.Loaded, result.Failed, result.Skipped, result.Duration)

	return result, nil
}

// processBatch validates every record, embeds the ones that need it, and
// upserts the survivors in chunks.
func (uc *implUseCase) processBatch(ctx context.Context, input loader.LoadInput, records []loader.Record) loader.LoadOutput {
	skipped := 0
	items := make([]*recordItem, 0, len(records))
	for _, rec := range records {
		if err := uc.validateRecord(rec); err != nil {
			uc.l.Debugf(ctx, "loader.usecase.Load: skip record %q: %v", rec.ID, err)
			skipped++
			continue
		}
		items = append(items, &recordItem{rec: rec})
	}

	uc.embedItems(ctx, input, items)
	uc.upsertItems(ctx, input, items)

	out := loader.LoadOutput{Skipped: skipped}
	for _, it := range items {
		if it.errType == "" {
			out.Loaded++
			continue
		}
		out.Failed++
		out.FailedRecords = append(out.FailedRecords, loader.FailedRecord{
			RecordID:     it.rec.ID,
			ErrorType:    it.errType,
			ErrorMessage: it.errMsg,
		})
	}
	return out
}

// embedItems fills in dense vectors for records that carry text only.
func (uc *implUseCase) embedItems(ctx context.Context, input loader.LoadInput, items []*recordItem) {
	var pending []*recordItem
	for _, it := range items {
		if len(it.rec.Vector) == 0 && it.rec.Text != "" {
			pending = append(pending, it)
		}
	}
	if len(pending) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loader.MaxConcurrency)

	for start := 0; start < len(pending); start += loader.EmbedChunkSize {
		end := start + loader.EmbedChunkSize
		if end > len(pending) {
			end = len(pending)
		}
		chunk := pending[start:end]

		g.Go(func() error {
			texts := make([]string, len(chunk))
			for i, it := range chunk {
				texts[i] = it.rec.Text
			}

			vectors, err := uc.voyage.Embed(gctx, texts)
			if err == nil && len(vectors) != len(chunk) {
				err = fmt.Errorf("got %d embeddings for %d texts", len(vectors), len(chunk))
			}
			if err != nil {
				for _, it := range chunk {
					it.errType = loader.EMBEDDING_ERROR
					it.errMsg = err.Error()
					uc.sendToDLQ(gctx, input, it.rec, loader.EMBEDDING_ERROR, err.Error())
				}
				return nil
			}

			for i, it := range chunk {
				it.rec.Vector = vectors[i]
			}
			return nil
		})
	}

	_ = g.Wait()
}

// upsertItems writes the surviving records to the index in chunks.
func (uc *implUseCase) upsertItems(ctx context.Context, input loader.LoadInput, items []*recordItem) {
	var ready []*recordItem
	for _, it := range items {
		if it.errType == "" {
			ready = append(ready, it)
		}
	}
	if len(ready) == 0 {
		return
	}

	idx := uc.client.Index(input.Index)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loader.MaxConcurrency)

	for start := 0; start < len(ready); start += loader.UpsertChunkSize {
		end := start + loader.UpsertChunkSize
		if end > len(ready) {
			end = len(ready)
		}
		chunk := ready[start:end]

		g.Go(func() error {
			vectors := make([]endee.Vector, len(chunk))
			for i, it := range chunk {
				vectors[i] = toVector(it.rec)
			}

			if err := idx.Upsert(gctx, vectors); err != nil {
				for _, it := range chunk {
					it.errType = loader.UPSERT_ERROR
					it.errMsg = err.Error()
					uc.sendToDLQ(gctx, input, it.rec, loader.UPSERT_ERROR, err.Error())
				}
			}
			return nil
		})
	}

	_ = g.Wait()
}

// parseJSONL reads one record per line, skipping lines that do not parse.
func (uc *implUseCase) parseJSONL(ctx context.Context, reader io.Reader) ([]loader.Record, error) {
	var records []loader.Record
	scanner := bufio.NewScanner(reader)

	buf := make([]byte, 0, loader.MaxLineBytes)
	scanner.Buffer(buf, loader.MaxLineBytes)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record loader.Record
		if err := json.Unmarshal(line, &record); err != nil {
			uc.l.Warnf(ctx, "loader.usecase.Load: parse line %d: %v", lineNum, err)
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return records, nil
}

// parseFileURL accepts either a bare object key or the s3://bucket/object
// form. The bucket part must match the configured bucket.
func (uc *implUseCase) parseFileURL(fileURL string) (string, error) {
	if !strings.HasPrefix(fileURL, "s3://") {
		return fileURL, nil
	}

	rest := strings.TrimPrefix(fileURL, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("%w: malformed file url %s", loader.ErrInvalidInput, fileURL)
	}
	if parts[0] != uc.store.Bucket() {
		return "", fmt.Errorf("%w: %s", loader.ErrWrongBucket, parts[0])
	}
	return parts[1], nil
}

func (uc *implUseCase) validateRecord(rec loader.Record) error {
	if len(rec.SparseIndices) != len(rec.SparseValues) {
		return loader.ErrSparseMismatch
	}
	if rec.Text == "" && len(rec.Vector) == 0 && len(rec.SparseIndices) == 0 {
		return loader.ErrEmptyRecord
	}
	return nil
}

// toVector maps a batch record onto the index schema. Text is kept under
// meta so search hits can render it.
func toVector(rec loader.Record) endee.Vector {
	meta := rec.Meta
	if rec.Text != "" {
		if meta == nil {
			meta = map[string]interface{}{}
		}
		if _, ok := meta["text"]; !ok {
			meta["text"] = rec.Text
		}
	}
	return endee.Vector{
		ID:            rec.ID,
		Values:        rec.Vector,
		SparseIndices: rec.SparseIndices,
		SparseValues:  rec.SparseValues,
		Filter:        rec.Filter,
		Meta:          meta,
	}
}

// sendToDLQ hands a failed record to the dead letter producer.
func (uc *implUseCase) sendToDLQ(ctx context.Context, input loader.LoadInput, rec loader.Record, errType, errMsg string) {
	if uc.producer == nil {
		return
	}
	err := uc.producer.PublishFailedRecord(ctx, loader.FailedRecordEvent{
		BatchID:      input.BatchID,
		Index:        input.Index,
		Record:       rec,
		ErrorType:    errType,
		ErrorMessage: errMsg,
		FailedAt:     time.Now(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "loader.usecase.Load: dead letter record %q: %v", rec.ID, err)
	}
}
