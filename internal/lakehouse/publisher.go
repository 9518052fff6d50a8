package lakehouse

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prasetya/siaklake/internal/config"
	"github.com/prasetya/siaklake/internal/pkg/logger"
	"github.com/prasetya/siaklake/internal/warehouse"
)

// Publisher uploads star-schema tables to object storage so downstream
// consumers can read them without touching the warehouse.
type Publisher struct {
	client   *minio.Client
	bucket   string
	initOnce sync.Once
	initErr  error
}

// NewPublisher builds a MinIO-backed publisher from config.
func NewPublisher(cfg *config.Config) (*Publisher, error) {
	endpoint := strings.TrimSpace(cfg.Minio.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	bucket := strings.TrimSpace(cfg.Minio.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	return &Publisher{client: client, bucket: bucket}, nil
}

func (p *Publisher) ensureBucket(ctx context.Context) error {
	p.initOnce.Do(func() {
		exists, err := p.client.BucketExists(ctx, p.bucket)
		if err != nil {
			p.initErr = err
			return
		}
		if exists {
			return
		}
		p.initErr = p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{})
	})
	return p.initErr
}

// PublishStarSchema reads every star table from the warehouse and
// uploads each one as a CSV object under star/.
func (p *Publisher) PublishStarSchema(ctx context.Context, db *warehouse.PostgresDB) error {
	if err := p.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}

	for _, table := range warehouse.StarTableNames() {
		data, rows, err := tableCSV(ctx, db, table)
		if err != nil {
			return fmt.Errorf("export table %s: %w", table, err)
		}

		key := "star/" + table + ".csv"
		_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "text/csv",
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		logger.Info().Str("object", key).Int("rows", rows).Msg("Published star table")
	}

	return nil
}

// tableCSV serializes a warehouse table into CSV bytes.
func tableCSV(ctx context.Context, db *warehouse.PostgresDB, table string) ([]byte, int, error) {
	rows, err := db.Pool.Query(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := make([]string, 0, len(rows.FieldDescriptions()))
	for _, fd := range rows.FieldDescriptions() {
		header = append(header, fd.Name)
	}
	if err := writer.Write(header); err != nil {
		return nil, 0, err
	}

	count := 0
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, 0, err
		}
		record := make([]string, len(values))
		for i, value := range values {
			record[i] = formatValue(value)
		}
		if err := writer.Write(record); err != nil {
			return nil, 0, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), count, nil
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(v)
	}
}
