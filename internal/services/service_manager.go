package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/catalog"
	"github.com/SAP-F-2025/workdna-service/internal/events"
	"github.com/SAP-F-2025/workdna-service/internal/metrics"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"github.com/SAP-F-2025/workdna-service/internal/validator"
	"github.com/google/uuid"
)

const (
	DefaultDemoTestKey         = "test123"
	DefaultTestDurationMinutes = 10
	testKeyLength              = 6
)

// Settings are the tunables the services read from config
type Settings struct {
	DemoTestKey         string
	TestDurationMinutes int
}

// Dependencies is everything the services need, wired once at startup
type Dependencies struct {
	Repo      repositories.Repository
	Catalog   *catalog.Catalog
	Publisher events.EventPublisher
	Metrics   *metrics.Metrics
	Validator *validator.Validator
	Logger    *slog.Logger
	Settings  Settings

	// Now and NewID default to time.Now and uuid.NewString
	Now   func() time.Time
	NewID func() string
}

// ServiceManager exposes the service layer to the handlers
type ServiceManager interface {
	Candidate() CandidateService
	Assessment() AssessmentService
	HR() HRService
	Export() ExportService
}

type serviceManager struct {
	candidate  CandidateService
	assessment AssessmentService
	hr         HRService
	export     ExportService
}

func NewServiceManager(deps Dependencies) ServiceManager {
	deps = deps.withDefaults()
	resolver := catalog.NewResolver(deps.Catalog, deps.Repo.GeneratedTest())

	return &serviceManager{
		candidate:  NewCandidateService(deps),
		assessment: NewAssessmentService(deps, resolver),
		hr:         NewHRService(deps),
		export:     NewExportService(deps.Repo, deps.Logger),
	}
}

func (m *serviceManager) Candidate() CandidateService   { return m.candidate }
func (m *serviceManager) Assessment() AssessmentService { return m.assessment }
func (m *serviceManager) HR() HRService                 { return m.hr }
func (m *serviceManager) Export() ExportService         { return m.export }

func (d Dependencies) withDefaults() Dependencies {
	if d.Catalog == nil {
		d.Catalog = catalog.Empty()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Validator == nil {
		d.Validator = validator.New()
	}
	if d.Publisher == nil {
		d.Publisher = events.NewMockEventPublisher(d.Logger)
	}
	if d.Settings.DemoTestKey == "" {
		d.Settings.DemoTestKey = DefaultDemoTestKey
	}
	if d.Settings.TestDurationMinutes <= 0 {
		d.Settings.TestDurationMinutes = DefaultTestDurationMinutes
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	return d
}
