package background

import (
	"context"
	"log"
	"time"

	"bizsetu/internal/models"
	"bizsetu/internal/repositories"
	"bizsetu/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the periodic maintenance jobs: keeping the brand
// catalog cache warm and logging a digest of drafts awaiting
// moderation. Nothing here sits on the request path.
type JobScheduler struct {
	scheduler    gocron.Scheduler
	brandSvc     services.BrandService
	businessRepo repositories.BusinessRepository
}

func NewJobScheduler(brandSvc services.BrandService, businessRepo repositories.BusinessRepository) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:    scheduler,
		brandSvc:     brandSvc,
		businessRepo: businessRepo,
	}
	js.registerJobs()
	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.refreshBrandCatalog),
		gocron.WithName("brand-catalog-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		log.Printf("Failed to create brand catalog job: %v", err)
	}

	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(30*time.Minute),
		gocron.NewTask(js.moderationDigest),
		gocron.WithName("moderation-digest"),
	); err != nil {
		log.Printf("Failed to create moderation digest job: %v", err)
	}
}

func (js *JobScheduler) refreshBrandCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := js.brandSvc.RefreshCatalogCache(ctx); err != nil {
		log.Printf("Brand catalog refresh failed: %v", err)
	}
}

func (js *JobScheduler) moderationDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := js.businessRepo.CountByStatus(ctx, []string{models.StatusSubmitted, models.StatusPending})
	if err != nil {
		log.Printf("Moderation digest failed: %v", err)
		return
	}
	log.Printf("Moderation digest: %d business drafts awaiting review", count)
}
