package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	sc "github.com/dmitrijs2005/tasktracker/internal/server/config"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ExportURLValidity is how long a presigned download link stays usable.
const ExportURLValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Export locates an uploaded snapshot.
type Export struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// ExportService writes JSON snapshots of an owner's tasks to S3-compatible
// object storage.
type ExportService struct {
	tasks  *TaskService
	config *sc.Config
	clock  timex.Clock
	logger logging.Logger
}

func NewExportService(tasks *TaskService, config *sc.Config, clock timex.Clock, logger logging.Logger) *ExportService {
	return &ExportService{
		tasks:  tasks,
		config: config,
		clock:  clock,
		logger: logger.With("module", "exports"),
	}
}

// Enabled reports whether a bucket is configured.
func (s *ExportService) Enabled() bool { return s.config.ExportsEnabled() }

// StorageKey names a new snapshot of ownerID's tasks taken at t.
func StorageKey(ownerID string, t time.Time) string {
	return fmt.Sprintf("exports/%s/%04d/%02d/%02d/%s.json", ownerID, t.Year(), t.Month(), t.Day(), uuid.New())
}

func (s *ExportService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

type exportTask struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     string     `json:"due_date"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	IsOverdue   bool       `json:"is_overdue"`
	Category    *string    `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

type exportDocument struct {
	UserID         string         `json:"user_id"`
	ExportedAt     time.Time      `json:"exported_at"`
	Total          int            `json:"total_tasks"`
	Completed      int            `json:"completed_tasks"`
	CompletionRate float64        `json:"completion_rate"`
	Tasks          []exportTask   `json:"tasks"`
	ByPriority     map[string]int `json:"by_priority"`
}

func (s *ExportService) snapshot(ctx context.Context, ownerID string, now time.Time) ([]byte, error) {
	tasks, err := s.tasks.List(ctx, ownerID, ListParams{})
	if err != nil {
		return nil, err
	}
	stats, err := s.tasks.Statistics(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	today := s.tasks.Today()
	doc := exportDocument{
		UserID:         ownerID,
		ExportedAt:     now,
		Total:          stats.Total,
		Completed:      stats.Completed,
		CompletionRate: stats.CompletionRate,
		Tasks:          make([]exportTask, 0, len(tasks)),
		ByPriority: map[string]int{
			string(models.PriorityHigh):   stats.High,
			string(models.PriorityMedium): stats.Medium,
			string(models.PriorityLow):    stats.Low,
		},
	}
	for _, t := range tasks {
		e := exportTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate.Format(common.DateLayout),
			Priority:    string(t.Priority),
			Status:      string(t.Status),
			IsOverdue:   t.IsOverdue(today),
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
			CompletedAt: t.CompletedAt,
		}
		if t.Category != nil {
			e.Category = &t.Category.Name
		}
		doc.Tasks = append(doc.Tasks, e)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Export uploads a snapshot of the owner's tasks and statistics and returns a
// presigned download link for it.
func (s *ExportService) Export(ctx context.Context, ownerID string) (*Export, error) {
	if !s.Enabled() {
		return nil, common.ErrExportDisabled
	}

	now := s.clock.Now().UTC()
	body, err := s.snapshot(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error configuring object storage: %w", err)
	}

	bucket := s.config.S3Bucket
	key := StorageKey(ownerID, now)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		s.logger.Warn(ctx, "export upload failed", "key", key, "error", err)
		return nil, fmt.Errorf("error uploading export: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ExportURLValidity))
	if err != nil {
		return nil, fmt.Errorf("error presigning export: %w", err)
	}

	s.logger.Info(ctx, "tasks exported", "user_id", ownerID, "key", key, "bytes", len(body))
	return &Export{Key: key, URL: req.URL, ExpiresAt: now.Add(ExportURLValidity)}, nil
}
