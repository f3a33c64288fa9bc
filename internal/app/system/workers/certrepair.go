package workers

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	certstore "github.com/medhedtech/medh-backend/internal/app/store/certificates"
	"github.com/medhedtech/medh-backend/internal/app/system/certgen"
	"github.com/medhedtech/medh-backend/internal/app/system/storage"
)

const repairBatchSize = 25

// CertRepair is a background worker that retries certificate uploads
// that failed at generation time. Those certificates carry the
// placeholder URL until a retry succeeds.
type CertRepair struct {
	certs    *certstore.Store
	files    storage.Store
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewCertRepair(certs *certstore.Store, files storage.Store, logger *zap.Logger, interval time.Duration) *CertRepair {
	return &CertRepair{
		certs:    certs,
		files:    files,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background repair loop.
func (w *CertRepair) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("certificate repair worker started", zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *CertRepair) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("certificate repair worker stopped")
}

func (w *CertRepair) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.repair()
		}
	}
}

func (w *CertRepair) repair() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	degraded, err := w.certs.ListDegraded(ctx, repairBatchSize)
	if err != nil {
		w.log.Error("failed to list degraded certificates", zap.Error(err))
		return
	}

	repaired := 0
	for _, cert := range degraded {
		pdf, err := certgen.Render(certgen.Input{
			StudentName:    cert.StudentName,
			CourseTitle:    cert.CourseTitle,
			CourseType:     cert.CourseType,
			Number:         cert.Number,
			CompletionDate: cert.CompletionDate,
		})
		if err != nil {
			w.log.Error("failed to render certificate",
				zap.String("number", cert.Number), zap.Error(err))
			continue
		}

		path := fmt.Sprintf("certificates/%s.pdf", cert.Number)
		if err := w.files.Put(ctx, path, bytes.NewReader(pdf), &storage.PutOptions{ContentType: "application/pdf"}); err != nil {
			w.log.Warn("certificate upload retry failed",
				zap.String("number", cert.Number), zap.Error(err))
			continue
		}
		if err := w.certs.MarkRepaired(ctx, cert.ID, w.files.URL(path)); err != nil {
			w.log.Error("failed to mark certificate repaired",
				zap.String("number", cert.Number), zap.Error(err))
			continue
		}
		repaired++
	}

	if repaired > 0 {
		w.log.Info("repaired degraded certificates", zap.Int("count", repaired))
	}
}
