// Package importer copies a selected batch of Google Drive files into a
// workspace. Files are processed strictly sequentially to cap load on the
// Drive API and keep progress reporting deterministic; one file's failure is
// recorded on its own entry and never aborts the rest of the batch.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/dataroom/cli/internal/api"
	"github.com/dataroom/cli/internal/cache"
	"github.com/dataroom/cli/internal/drive"
)

// ResetDelay is how long a fully successful batch stays visible before the
// pipeline resets itself.
const ResetDelay = 2 * time.Second

const genericError = "Import failed"

// Status is the lifecycle of a single progress entry.
type Status string

const (
	StatusPending   Status = "pending"
	StatusUploading Status = "uploading"
	StatusSuccess   Status = "success"
	StatusError     Status = "error"
)

// State is the lifecycle of a batch.
type State int

const (
	StateIdle State = iota
	StateCollecting
	StateImporting
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateImporting:
		return "importing"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Progress is one file's entry in an in-flight batch. The slice of entries
// is fixed at batch start; only Status and Error mutate, by index.
type Progress struct {
	FileName string
	Status   Status
	Error    string
}

// Summary is the outcome of a completed batch.
type Summary struct {
	Succeeded int
	Failed    int
}

// Source downloads file content from the external provider.
type Source interface {
	Ready() bool
	Download(ctx context.Context, f drive.File) ([]byte, error)
}

// Backend creates data-room files from downloaded content.
type Backend interface {
	ImportGoogleDrive(workspaceID int64, name string, content []byte, googleDriveID string) (*api.DataRoomFile, error)
}

// Invalidator drops stale cached listings after successful imports.
type Invalidator interface {
	Invalidate(tags ...string)
}

// Sink receives progress updates as the batch runs. Implementations must not
// retain the entries slice across calls; it is reused.
type Sink interface {
	Progress(entries []Progress)
	Completed(s Summary)
}

// NopSink discards all updates.
type NopSink struct{}

func (NopSink) Progress([]Progress) {}
func (NopSink) Completed(Summary)   {}

// Batch is one import run. Create with New, stage files with Select, then
// Run. A Batch is not safe for concurrent use.
type Batch struct {
	source  Source
	backend Backend
	cache   Invalidator
	sink    Sink

	// after schedules the auto-reset; replaced in tests.
	after func(d time.Duration, f func()) *time.Timer

	state     State
	selection []drive.File
	progress  []Progress
}

// Option configures a Batch.
type Option func(*Batch)

// WithSink sets the progress sink.
func WithSink(s Sink) Option {
	return func(b *Batch) { b.sink = s }
}

// WithAfterFunc replaces the timer used to schedule the auto-reset.
func WithAfterFunc(after func(time.Duration, func()) *time.Timer) Option {
	return func(b *Batch) { b.after = after }
}

// New creates an idle Batch.
func New(source Source, backend Backend, inv Invalidator, opts ...Option) *Batch {
	b := &Batch{
		source:  source,
		backend: backend,
		cache:   inv,
		sink:    NopSink{},
		after:   time.AfterFunc,
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns the batch's current lifecycle state.
func (b *Batch) State() State { return b.state }

// Progress returns a copy of the current progress entries.
func (b *Batch) Progress() []Progress {
	out := make([]Progress, len(b.progress))
	copy(out, b.progress)
	return out
}

// Select stages a non-empty selection and moves the batch to collecting.
func (b *Batch) Select(files []drive.File) error {
	if len(files) == 0 {
		return fmt.Errorf("no files selected")
	}
	b.selection = files
	b.state = StateCollecting
	return nil
}

// Reset discards the selection and progress and returns to idle. In-flight
// requests already issued are not aborted; only the references are dropped.
func (b *Batch) Reset() {
	b.state = StateIdle
	b.selection = nil
	b.progress = nil
}

// Run imports the staged selection into the workspace. Preconditions — an
// authenticated Drive source, a selected workspace and a non-empty
// selection — are checked before any state transition. The returned Summary
// counts per-file outcomes; Run itself only errors on precondition
// violations.
func (b *Batch) Run(ctx context.Context, workspaceID int64) (Summary, error) {
	if b.source == nil || !b.source.Ready() {
		return Summary{}, fmt.Errorf("not connected to Google Drive — run \"dataroom drive connect\" first")
	}
	if workspaceID == 0 {
		return Summary{}, fmt.Errorf("no workspace selected — run \"dataroom workspace use\" first")
	}
	if b.state != StateCollecting || len(b.selection) == 0 {
		return Summary{}, fmt.Errorf("no files selected")
	}

	b.state = StateImporting
	b.progress = make([]Progress, len(b.selection))
	for i, f := range b.selection {
		b.progress[i] = Progress{FileName: f.Name, Status: StatusPending}
	}
	b.sink.Progress(b.progress)

	var sum Summary
	for i, f := range b.selection {
		b.setEntry(i, StatusUploading, "")

		if err := b.importOne(ctx, workspaceID, f); err != nil {
			msg := err.Error()
			if msg == "" {
				msg = genericError
			}
			b.setEntry(i, StatusError, msg)
			sum.Failed++
		} else {
			b.setEntry(i, StatusSuccess, "")
			sum.Succeeded++
		}
	}

	// Successes make the workspace's file listing stale, even when other
	// entries failed. An all-failed batch changed nothing, so no
	// invalidation fires.
	if sum.Succeeded > 0 && b.cache != nil {
		b.cache.Invalidate(cache.FilesTag(workspaceID))
	}

	b.state = StateCompleted
	b.sink.Completed(sum)

	if sum.Failed == 0 {
		b.after(ResetDelay, b.Reset)
	}
	return sum, nil
}

func (b *Batch) importOne(ctx context.Context, workspaceID int64, f drive.File) error {
	data, err := b.source.Download(ctx, f)
	if err != nil {
		return err
	}
	name := drive.ExportedFilename(f.Name, f.MimeType)
	_, err = b.backend.ImportGoogleDrive(workspaceID, name, data, f.ID)
	return err
}

func (b *Batch) setEntry(i int, status Status, errMsg string) {
	b.progress[i].Status = status
	b.progress[i].Error = errMsg
	b.sink.Progress(b.progress)
}
