package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"soundvault/internal/config"
	"soundvault/internal/library"
	"soundvault/internal/logging"
	"soundvault/internal/resolver"
	"soundvault/internal/services"
)

// ErrRunInProgress reports that another organize run holds the lock.
var ErrRunInProgress = errors.New("another organize run is in progress")

const suggestionLimit = 5

// Organizer files tagged, unfiled tracks into the taxonomy in bulk.
type Organizer struct {
	store    *library.Store
	resolver *resolver.Resolver
	logger   *slog.Logger
	lock     *flock.Flock
	lockPath string
}

// New constructs an organizer. The lock file lives next to the logs so a
// second concurrent run fails fast instead of doubling work.
func New(cfg *config.Config, store *library.Store, res *resolver.Resolver, logger *slog.Logger) (*Organizer, error) {
	if cfg == nil || store == nil || res == nil {
		return nil, errors.New("organizer requires config, store, and resolver")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	lockPath := filepath.Join(cfg.Paths.LogDir, "organize.lock")
	return &Organizer{
		store:    store,
		resolver: res,
		logger:   logger.With(logging.String(logging.FieldComponent, "organizer")),
		lock:     flock.New(lockPath),
		lockPath: lockPath,
	}, nil
}

// Run files every tagged, unfiled track whose best suggestion clears the
// threshold. Per-track failures are logged and counted, never fatal; the
// batch always completes.
func (o *Organizer) Run(ctx context.Context, threshold float64) (*Report, error) {
	ok, err := o.lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "organizer", "run", "acquire organize lock", err)
	}
	if !ok {
		return nil, ErrRunInProgress
	}
	defer func() {
		if unlockErr := o.lock.Unlock(); unlockErr != nil {
			o.logger.Warn("failed to release organize lock", logging.Error(unlockErr))
		}
	}()

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := o.logger.With(logging.String(logging.FieldRunID, runID))

	trackIDs, err := o.store.UnfiledTaggedTrackIDs(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "organizer", "run", "enumerate unfiled tracks", err)
	}

	report := &Report{RunID: runID}
	logger.Info("organize run started",
		logging.Int("candidates", len(trackIDs)),
		logging.Float64("threshold", threshold))

	for _, trackID := range trackIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Processed++
		result := o.organizeTrack(ctx, logger, trackID, threshold)
		if result.Organized {
			report.Organized++
		}
		report.Results = append(report.Results, result)
	}

	logger.Info("organize run finished",
		logging.Int("processed", report.Processed),
		logging.Int("organized", report.Organized))
	return report, nil
}

func (o *Organizer) organizeTrack(ctx context.Context, logger *slog.Logger, trackID int64, threshold float64) Result {
	result := Result{TrackID: trackID}
	trackCtx := services.WithTrackID(ctx, trackID)

	track, err := o.store.TrackByID(trackCtx, trackID)
	if err != nil {
		logger.Warn("skipping track: lookup failed",
			logging.Int64(logging.FieldTrackID, trackID),
			logging.Error(err))
		result.Note = fmt.Sprintf("lookup failed: %v", err)
		return result
	}
	result.Title = track.Title
	if result.Title == "" {
		result.Title = filepath.Base(track.FilePath)
	}

	suggestions, err := o.resolver.Suggest(trackCtx, trackID, suggestionLimit)
	if err != nil {
		logger.Warn("skipping track: suggestion failed",
			logging.Int64(logging.FieldTrackID, trackID),
			logging.Error(err))
		result.Note = fmt.Sprintf("suggestion failed: %v", err)
		return result
	}

	for _, suggestion := range suggestions {
		if suggestion.Confidence < threshold {
			continue
		}
		if _, err := o.store.AddToFolder(trackCtx, suggestion.Folder.ID, trackID); err != nil {
			logger.Warn("skipping track: filing failed",
				logging.Int64(logging.FieldTrackID, trackID),
				logging.Int64(logging.FieldFolderID, suggestion.Folder.ID),
				logging.Error(err))
			result.Note = fmt.Sprintf("filing failed: %v", err)
			return result
		}
		result.FolderID = suggestion.Folder.ID
		result.FolderName = suggestion.Folder.Name
		result.Confidence = suggestion.Confidence
		result.Organized = true
		logger.Info("track filed",
			logging.Int64(logging.FieldTrackID, trackID),
			logging.Int64(logging.FieldFolderID, suggestion.Folder.ID),
			logging.Float64("confidence", suggestion.Confidence))
		return result
	}

	result.Note = "no suggestion cleared the threshold"
	return result
}

// LockPath returns the location of the run lock file.
func (o *Organizer) LockPath() string {
	return o.lockPath
}
