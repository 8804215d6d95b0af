package events

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/sirupsen/logrus"

	"easytax-service/internal/models"
)

var (
	publisher     *Publisher
	publisherOnce sync.Once
	publisherMu   sync.RWMutex
)

// Event types published on report generation
const (
	ITRReportGenerated = "report.itr.generated"
	GSTReportGenerated = "report.gst.generated"
)

// ReportGeneratedEvent is emitted after a report is generated
type ReportGeneratedEvent struct {
	EventType      string    `json:"eventType"`
	TenantID       string    `json:"tenantId"`
	ReportID       string    `json:"reportId"`
	ReportType     string    `json:"reportType"`
	TotalLiability float64   `json:"totalLiability"`
	Fallback       bool      `json:"fallback"`
	Timestamp      time.Time `json:"timestamp"`
}

// Publisher publishes report events to NATS JetStream
type Publisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger *logrus.Entry
}

// InitPublisher initializes the singleton NATS publisher
func InitPublisher(logger *logrus.Logger) error {
	var initErr error
	publisherOnce.Do(func() {
		natsURL := os.Getenv("NATS_URL")
		if natsURL == "" {
			logger.Warn("NATS_URL not set, event publishing disabled")
			return
		}

		nc, err := nats.Connect(natsURL,
			nats.Name("easytax-service"),
			nats.RetryOnFailedConnect(true),
			nats.MaxReconnects(-1),
			nats.ReconnectWait(2*time.Second),
		)
		if err != nil {
			initErr = err
			return
		}

		js, err := jetstream.New(nc)
		if err != nil {
			nc.Close()
			initErr = err
			return
		}

		ctx := context.Background()
		if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:      "REPORT_EVENTS",
			Subjects:  []string{"report.>"},
			Retention: jetstream.LimitsPolicy,
			MaxAge:    7 * 24 * time.Hour,
		}); err != nil {
			logger.WithError(err).Warn("Failed to ensure REPORT_EVENTS stream")
		}

		publisherMu.Lock()
		publisher = &Publisher{
			nc:     nc,
			js:     js,
			logger: logger.WithField("component", "events.publisher"),
		}
		publisherMu.Unlock()

		logger.Info("NATS events publisher initialized for easytax-service")
	})
	return initErr
}

// GetPublisher returns the singleton publisher instance, or nil when
// publishing is disabled
func GetPublisher() *Publisher {
	publisherMu.RLock()
	defer publisherMu.RUnlock()
	return publisher
}

// PublishITRReportGenerated publishes an ITR report generated event
func (p *Publisher) PublishITRReportGenerated(ctx context.Context, report *models.ITRReport) error {
	return p.publish(ctx, ReportGeneratedEvent{
		EventType:      ITRReportGenerated,
		TenantID:       report.TenantID,
		ReportID:       report.ID.String(),
		ReportType:     "ITR",
		TotalLiability: report.SelectedTax(),
		Fallback:       report.Fallback,
		Timestamp:      time.Now().UTC(),
	})
}

// PublishGSTReportGenerated publishes a GST report generated event
func (p *Publisher) PublishGSTReportGenerated(ctx context.Context, report *models.GSTReport) error {
	return p.publish(ctx, ReportGeneratedEvent{
		EventType:      GSTReportGenerated,
		TenantID:       report.TenantID,
		ReportID:       report.ID.String(),
		ReportType:     "GST",
		TotalLiability: report.NetGSTPayable,
		Fallback:       report.Fallback,
		Timestamp:      time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, event ReportGeneratedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := p.js.Publish(ctx, event.EventType, data); err != nil {
		return err
	}
	p.logger.WithField("eventType", event.EventType).Debug("published report event")
	return nil
}

// IsConnected returns true if connected to NATS
func (p *Publisher) IsConnected() bool {
	return p.nc != nil && p.nc.IsConnected()
}

// Close closes the publisher connection
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
