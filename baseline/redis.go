package baseline

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snipdrift/sdk/match"
	"github.com/snipdrift/sdk/snippet"
)

// Redis key layout. Scan ids are tracked in a set so listing does not
// require a SCAN over the whole keyspace.
const (
	scanKeyPrefix   = "snipdrift:scan:"
	reportKeyPrefix = "snipdrift:report:"
	scanSetKey      = "snipdrift:scans"
)

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379")
	URL string

	// TLS configuration for secure connections
	TLS *tls.Config

	// ConnectTimeout is the maximum time to wait for connection establishment
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait for write operations
	WriteTimeout time.Duration
}

// RedisStore implements the Store interface using go-redis/v9.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis baseline store with the given options.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}

	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}

	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// SaveScan stores the snippet collection of a scan, replacing any collection
// previously stored under the same id. Snippets are serialized in id order
// so the stored value is byte-stable for identical collections.
func (s *RedisStore) SaveScan(ctx context.Context, scanID string, c snippet.Collection) error {
	if scanID == "" {
		return fmt.Errorf("%w: empty scan id", ErrInvalidID)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("failed to save scan %s: %w", scanID, err)
	}

	data, err := json.Marshal(c.Snippets())
	if err != nil {
		return fmt.Errorf("failed to marshal scan %s: %w", scanID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, scanKeyPrefix+scanID, data, 0)
	pipe.SAdd(ctx, scanSetKey, scanID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store scan %s: %w", scanID, err)
	}
	return nil
}

// LoadScan returns the snippet collection stored under scanID.
func (s *RedisStore) LoadScan(ctx context.Context, scanID string) (snippet.Collection, error) {
	if scanID == "" {
		return nil, fmt.Errorf("%w: empty scan id", ErrInvalidID)
	}

	data, err := s.client.Get(ctx, scanKeyPrefix+scanID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrScanNotFound, scanID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scan %s: %w", scanID, err)
	}

	var snippets []snippet.Snippet
	if err := json.Unmarshal(data, &snippets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scan %s: %w", scanID, err)
	}
	return snippet.NewCollection(snippets...), nil
}

// ListScans returns all stored scan ids in lexicographic order.
func (s *RedisStore) ListScans(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, scanSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// DeleteScan removes a stored scan. Deleting an absent scan is not an error.
func (s *RedisStore) DeleteScan(ctx context.Context, scanID string) error {
	if scanID == "" {
		return fmt.Errorf("%w: empty scan id", ErrInvalidID)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, scanKeyPrefix+scanID)
	pipe.SRem(ctx, scanSetKey, scanID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete scan %s: %w", scanID, err)
	}
	return nil
}

// SaveReport archives a comparison report under its run id.
func (s *RedisStore) SaveReport(ctx context.Context, report match.Report) error {
	if report.ID == "" {
		return fmt.Errorf("%w: empty report id", ErrInvalidID)
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report %s: %w", report.ID, err)
	}
	if err := s.client.Set(ctx, reportKeyPrefix+report.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store report %s: %w", report.ID, err)
	}
	return nil
}

// LoadReport returns the report stored under reportID.
func (s *RedisStore) LoadReport(ctx context.Context, reportID string) (match.Report, error) {
	if reportID == "" {
		return match.Report{}, fmt.Errorf("%w: empty report id", ErrInvalidID)
	}

	data, err := s.client.Get(ctx, reportKeyPrefix+reportID).Bytes()
	if errors.Is(err, redis.Nil) {
		return match.Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
	}
	if err != nil {
		return match.Report{}, fmt.Errorf("failed to load report %s: %w", reportID, err)
	}

	var report match.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return match.Report{}, fmt.Errorf("failed to unmarshal report %s: %w", reportID, err)
	}
	return report, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
