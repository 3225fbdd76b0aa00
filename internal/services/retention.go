package services

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"alfredoptarigan/cv-agent/internal/repositories"
)

const sweepBatchSize = 100

// Janitor removes tailored documents once they are older than maxAge.
type Janitor interface {
	Start(ctx context.Context)
	Stop()
	Sweep(ctx context.Context) (int, error)
}

type janitor struct {
	docRepo  repositories.DocumentRepository
	tailored StorageService
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time
	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewJanitor(
	docRepo repositories.DocumentRepository,
	tailored StorageService,
	maxAge time.Duration,
	interval time.Duration,
) Janitor {
	if interval <= 0 {
		interval = time.Hour
	}

	return &janitor{
		docRepo:  docRepo,
		tailored: tailored,
		maxAge:   maxAge,
		interval: interval,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Start implements Janitor. It is a no-op when retention is disabled.
func (j *janitor) Start(ctx context.Context) {
	if j.maxAge <= 0 {
		log.Println("🗄️  Tailored CV retention disabled, documents are kept")
		return
	}

	j.wg.Add(1)
	go j.run(ctx)

	log.Printf("🧹 Janitor started (retention %s, every %s)", j.maxAge, j.interval)
}

// Stop implements Janitor.
func (j *janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
	})
	j.wg.Wait()
}

// Sweep implements Janitor.
func (j *janitor) Sweep(ctx context.Context) (int, error) {
	if j.maxAge <= 0 {
		return 0, nil
	}

	cutoff := j.now().Add(-j.maxAge)
	removed := 0

	for {
		expired, err := j.docRepo.FindTailoredOlderThan(cutoff, sweepBatchSize)
		if err != nil {
			return removed, err
		}
		if len(expired) == 0 {
			return removed, nil
		}

		failed := 0
		for _, doc := range expired {
			if err := ctx.Err(); err != nil {
				return removed, err
			}

			if err := j.tailored.DeleteFile(doc.Filename); err != nil && !errors.Is(err, os.ErrNotExist) {
				// Row stays so the next sweep retries the file.
				log.Printf("⚠️  Failed to delete %s: %v", doc.Filename, err)
				failed++
				continue
			}
			if err := j.docRepo.DeleteTailored(doc.ID); err != nil {
				return removed, err
			}
			removed++
		}

		// Failed rows would come back in the next batch.
		if failed > 0 || len(expired) < sweepBatchSize {
			return removed, nil
		}
	}
}

func (j *janitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			log.Println("🧹 Janitor stopped")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := j.Sweep(ctx)
			if err != nil {
				log.Printf("⚠️  Janitor sweep failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("🧹 Removed %d expired tailored CVs", removed)
			}
		}
	}
}
