package background

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"propertyhub/internal/caching"
	"propertyhub/internal/models"
	"propertyhub/internal/repositories"
)

const expiredSweepBatch = 500

// JobScheduler runs the periodic housekeeping jobs.
type JobScheduler struct {
	scheduler   gocron.Scheduler
	tenancyRepo repositories.TenancyRepository
	unitRepo    repositories.UnitRepository
	cacheSvc    caching.CacheService
	jobs        map[string]gocron.Job
	mu          sync.RWMutex
}

func NewJobScheduler(tenancyRepo repositories.TenancyRepository,
	unitRepo repositories.UnitRepository, cacheSvc caching.CacheService) *JobScheduler {

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:   scheduler,
		tenancyRepo: tenancyRepo,
		unitRepo:    unitRepo,
		cacheSvc:    cacheSvc,
		jobs:        make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	// Tenancy expiry sweep - every hour
	sweepJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.sweepExpiredTenancies, context.Background()),
		gocron.WithName("tenancy-expiry-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create tenancy sweep job: %v", err)
	} else {
		js.jobs["tenancy-expiry-sweep"] = sweepJob
	}

	// Cache health check - every 15 minutes
	cacheJob, err := js.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(js.checkCacheHealth, context.Background()),
		gocron.WithName("cache-health"),
	)
	if err != nil {
		log.Printf("Failed to create cache health job: %v", err)
	} else {
		js.jobs["cache-health"] = cacheJob
	}

	log.Printf("Registered %d background jobs", len(js.jobs))
}

// sweepExpiredTenancies closes out tenancies whose end date has passed
// and returns their units to the available pool.
func (js *JobScheduler) sweepExpiredTenancies(ctx context.Context) error {
	log.Printf("Starting tenancy expiry sweep")

	expired, err := js.tenancyRepo.ListExpired(ctx, expiredSweepBatch)
	if err != nil {
		log.Printf("Failed to list expired tenancies: %v", err)
		return err
	}

	reason := "lease term ended"
	swept := 0
	for _, tenancy := range expired {
		if err := js.tenancyRepo.End(ctx, tenancy.ID, tenancy.EndDate, &reason); err != nil {
			log.Printf("Failed to end expired tenancy %s: %v", tenancy.ID, err)
			continue
		}
		if err := js.unitRepo.UpdateStatus(ctx, tenancy.UnitID, models.UnitStatusAvailable); err != nil {
			log.Printf("Failed to free unit %s: %v", tenancy.UnitID, err)
			continue
		}
		if err := js.cacheSvc.DeleteUnit(ctx, tenancy.UnitID); err != nil {
			log.Printf("Failed to invalidate unit cache %s: %v", tenancy.UnitID, err)
		}
		swept++
	}

	log.Printf("Tenancy expiry sweep closed %d of %d tenancies", swept, len(expired))
	return nil
}

func (js *JobScheduler) checkCacheHealth(ctx context.Context) error {
	if err := js.cacheSvc.Ping(ctx); err != nil {
		log.Printf("Cache health check failed: %v", err)
		return err
	}
	return nil
}

// GetJobStatus returns the registered job names for the health surface.
func (js *JobScheduler) GetJobStatus() map[string]interface{} {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}

	return map[string]interface{}{
		"total_jobs": len(js.jobs),
		"jobs":       names,
	}
}
