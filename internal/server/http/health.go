package http

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"go-sysadmin/internal/discovery/etcd"
	"go-sysadmin/internal/metrics"
	"go-sysadmin/internal/mq/kafka"
	redisrepo "go-sysadmin/internal/repository/redis"

	"github.com/prometheus/client_golang/prometheus"
)

// HealthChecker 聚合健康检查 (liveness / readiness)
type HealthChecker struct {
	db       *gorm.DB
	redis    *redisrepo.Client
	producer *kafka.Producer
	etcdCli  *etcd.Client

	cacheMu     sync.Mutex
	cacheResult map[string]interface{}
	cacheExpiry time.Time
	cacheTTL    time.Duration
}

func NewHealthChecker(db *gorm.DB, r *redisrepo.Client, p *kafka.Producer, e *etcd.Client) *HealthChecker {
	return &HealthChecker{db: db, redis: r, producer: p, etcdCli: e, cacheTTL: 2 * time.Second}
}

// Liveness 仅表示进程活着, 不探测外部组件
func (h *HealthChecker) Liveness() map[string]interface{} {
	return map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
}

type depCheck struct {
	name    string
	timeout time.Duration
	gauge   prometheus.Gauge
	probe   func(ctx context.Context) error
}

func (h *HealthChecker) checks() []depCheck {
	return []depCheck{
		{"db", 300 * time.Millisecond, metrics.DBUp, func(ctx context.Context) error {
			sqlDB, err := h.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}},
		{"redis", 250 * time.Millisecond, metrics.RedisUp, func(ctx context.Context) error {
			return h.redis.Ping(ctx)
		}},
		{"kafka", 250 * time.Millisecond, metrics.KafkaUp, func(ctx context.Context) error {
			return h.producer.WriteMessages(ctx)
		}},
		{"etcd", 250 * time.Millisecond, metrics.EtcdUp, func(ctx context.Context) error {
			_, err := h.etcdCli.Get(ctx, "health")
			return err
		}},
	}
}

// Readiness 并发探测外部依赖, 结果短暂缓存, 任一依赖不可用返回 503
func (h *HealthChecker) Readiness(ctx context.Context) (map[string]interface{}, int) {
	h.cacheMu.Lock()
	if time.Now().Before(h.cacheExpiry) && h.cacheResult != nil {
		res := h.cacheResult
		h.cacheMu.Unlock()
		code := 200
		if res["status"] != "ok" {
			code = 503
		}
		return res, code
	}
	h.cacheMu.Unlock()

	type depResult struct {
		name string
		up   bool
		err  string
		dur  time.Duration
	}
	checks := h.checks()
	results := make(chan depResult, len(checks))
	var wg sync.WaitGroup
	for _, ck := range checks {
		wg.Add(1)
		go func(ck depCheck) {
			defer wg.Done()
			start := time.Now()
			out := depResult{name: ck.name}
			ctx2, cancel := context.WithTimeout(ctx, ck.timeout)
			if err := ck.probe(ctx2); err == nil {
				out.up = true
			} else {
				out.err = err.Error()
			}
			cancel()
			out.dur = time.Since(start)
			metrics.DependencyCheckDuration.WithLabelValues(ck.name).Observe(out.dur.Seconds())
			if out.up {
				ck.gauge.Set(1)
			} else {
				ck.gauge.Set(0)
			}
			results <- out
		}(ck)
	}
	wg.Wait()
	close(results)

	res := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	detail := make([]map[string]interface{}, 0, len(checks))
	upTotal := 0
	for r := range results {
		if r.up {
			res[r.name] = "up"
			upTotal++
		} else if r.err != "" {
			res[r.name] = r.err
		} else {
			res[r.name] = "down"
		}
		detail = append(detail, map[string]interface{}{"dep": r.name, "up": r.up, "error": r.err, "duration_ms": float64(r.dur.Microseconds()) / 1000.0})
	}
	res["detail"] = detail
	if upTotal < len(checks) {
		res["status"] = "degraded"
	}

	h.cacheMu.Lock()
	h.cacheResult = res
	h.cacheExpiry = time.Now().Add(h.cacheTTL)
	h.cacheMu.Unlock()

	code := 200
	if res["status"] != "ok" {
		code = 503
	}
	return res, code
}
