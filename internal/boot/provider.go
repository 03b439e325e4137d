package boot

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/extra/redisotel/v9"
	clientv3 "go.etcd.io/etcd/client/v3"
	go_otel "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"go-sysadmin/internal/config"
	"go-sysadmin/internal/discovery/etcd"
	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/metrics"
	"go-sysadmin/internal/mq/kafka"
	"go-sysadmin/internal/repository/postgres"
	redisrepo "go-sysadmin/internal/repository/redis"
	"go-sysadmin/internal/security/jwt"
	"go-sysadmin/internal/service"
)

type App struct {
	Config *config.Config
	Logger *logging.Logger
	DB     *gorm.DB
	Redis  *redisrepo.Client
	Kafka  *kafka.Producer
	Etcd   *etcd.Client
	JWT    *jwt.Manager
	HTTP   *gin.Engine

	LoginLogSender   *kafka.LoginLogSender
	loginLogConsumer *kafka.Consumer
	consumerCancel   context.CancelFunc

	serviceKey string
	serviceVal string
	leaseID    clientv3.LeaseID
	tracerProv *trace.TracerProvider
	stopCh     chan struct{}
}

// Provider constructors for wire
func NewPostgres(c *config.Config) (*gorm.DB, error) {
	return postgres.New(postgres.Config{DSN: c.Postgres.DSN, MaxOpen: c.Postgres.MaxOpen, MaxIdle: c.Postgres.MaxIdle, AutoMigrate: c.Postgres.AutoMigrate})
}

func NewRedis(c *config.Config) *redisrepo.Client {
	return redisrepo.New(redisrepo.Config{Addr: c.Redis.Addr, Password: c.Redis.Password, DB: c.Redis.DB})
}

func NewKafkaProducer(c *config.Config) *kafka.Producer {
	return kafka.NewProducer(kafka.Config{Brokers: c.Kafka.Brokers, Topic: c.Kafka.LoginLogTopic})
}

func NewLoginLogSender(p *kafka.Producer, l *logging.Logger) *kafka.LoginLogSender {
	return kafka.NewLoginLogSender(p, l, 1024, 25, 50*time.Millisecond)
}

func NewLoginLogConsumer(c *config.Config) *kafka.Consumer {
	return kafka.NewConsumer(kafka.ConsumerConfig{Brokers: c.Kafka.Brokers, GroupID: c.Kafka.GroupID, Topic: c.Kafka.LoginLogTopic})
}

func NewEtcd(c *config.Config) (*etcd.Client, error) {
	return etcd.New(etcd.Config{Endpoints: c.Etcd.Endpoints, TTL: c.Etcd.TTL})
}

func NewJWTManager(c *config.Config) *jwt.Manager {
	return jwt.NewManager(c.JWT.Secret, c.JWT.ExpireSeconds, c.JWT.Issuer)
}

func NewLogger(c *config.Config) (*logging.Logger, error) {
	return logging.New(c.Log.Level, c.Log.Format)
}

func NewApp(c *config.Config, l *logging.Logger, db *gorm.DB, r *redisrepo.Client, k *kafka.Producer, sender *kafka.LoginLogSender, consumer *kafka.Consumer, logSvc *service.LoginLogService, e *etcd.Client, j *jwt.Manager, engine *gin.Engine) *App {
	if c.Postgres.AutoMigrate {
		if err := postgres.AutoMigrateModels(db,
			&model.SysUser{},
			&model.SysRole{},
			&model.SysMenu{},
			&model.SysUserRole{},
			&model.SysRoleMenu{},
			&model.SysDictType{},
			&model.SysDictData{},
			&model.SysNotice{},
			&model.SysDept{},
			&model.SysLoginLog{},
		); err != nil {
			l.Error("auto_migrate_failed", zap.Error(err))
		}
	}
	app := &App{
		Config: c, Logger: l, DB: db, Redis: r, Kafka: k, Etcd: e, JWT: j, HTTP: engine,
		LoginLogSender: sender, loginLogConsumer: consumer, stopCh: make(chan struct{}),
	}

	// 登录日志异步链路: 发送端批量写 Kafka, 消费端落库
	sender.Start()
	consumerCtx, cancel := context.WithCancel(context.Background())
	app.consumerCancel = cancel
	go func() {
		if err := consumer.Start(consumerCtx, logSvc.HandleMessage); err != nil {
			l.Error("login_log_consumer_stopped", zap.Error(err))
		}
	}()

	// Redis 启动探活与心跳
	if r != nil {
		ctx, cancelPing := context.WithTimeout(context.Background(), time.Second)
		defer cancelPing()
		if err := r.Ping(ctx); err != nil {
			l.Error("redis_ping_failed", zap.Error(err), zap.String("addr", c.Redis.Addr))
		} else {
			l.Info("redis_ping_ok", zap.String("addr", c.Redis.Addr))
		}
		go app.redisHeartbeat(r)
	}

	if e != nil && len(c.Etcd.Endpoints) > 0 {
		go app.registerEtcd(e)
	}

	if c.OTel.Enable {
		app.initTracing(db, r)
	}
	return app
}

func (a *App) redisHeartbeat(r *redisrepo.Client) {
	const interval = 5 * time.Second
	var lastUp bool
	for {
		select {
		case <-a.stopCh:
			return
		case <-time.After(interval):
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			err := r.Ping(ctx)
			cancel()
			if err != nil {
				metrics.RedisUp.Set(0)
				if lastUp {
					a.Logger.Warn("redis_down", zap.Error(err))
				}
				lastUp = false
			} else {
				metrics.RedisUp.Set(1)
				if !lastUp {
					a.Logger.Info("redis_recovered")
				}
				lastUp = true
			}
		}
	}
}

// registerEtcd 指数退避注册服务实例, key 以 ip:port 结尾保证重启复用
func (a *App) registerEtcd(e *etcd.Client) {
	ctx := context.Background()
	c := a.Config
	addrPort := c.HTTP.Addr
	if addrPort == "" {
		addrPort = ":8080"
	}
	port := ""
	if addrPort[0] == ':' {
		port = addrPort[1:]
	} else if _, p, err := net.SplitHostPort(addrPort); err == nil {
		port = p
	}
	if port == "" {
		port = "0"
	}
	ip := firstNonLoopbackIPv4()
	if ip == "" {
		ip = "127.0.0.1"
	}
	serviceKey := fmt.Sprintf("/services/sysadmin/%s/%s/%s:%s", c.AppMeta.Env, c.AppMeta.Version, ip, port)
	meta := map[string]interface{}{
		"instance_id":  uuid.NewString(),
		"env":          c.AppMeta.Env,
		"version":      c.AppMeta.Version,
		"ip":           ip,
		"port":         port,
		"addr":         c.HTTP.Addr,
		"startup_unix": time.Now().Unix(),
	}
	valBytes, _ := json.Marshal(meta)
	val := string(valBytes)
	for attempt := 0; attempt < 5; attempt++ {
		leaseID, err := e.Register(ctx, serviceKey, val, int64(c.Etcd.TTL))
		if err != nil {
			backoff := time.Duration(1<<uint(attempt+1)) * 100 * time.Millisecond
			a.Logger.Error("etcd_register_retry", zap.Error(err), zap.Int("attempt", attempt+1), zap.Duration("backoff", backoff))
			time.Sleep(backoff)
			continue
		}
		a.serviceKey = serviceKey
		a.serviceVal = val
		a.leaseID = leaseID
		metrics.EtcdUp.Set(1)
		a.Logger.Info("etcd_registered", zap.String("key", serviceKey))
		return
	}
	a.Logger.Error("etcd_register_failed", zap.String("key", serviceKey))
}

func (a *App) initTracing(db *gorm.DB, r *redisrepo.Client) {
	c := a.Config
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(c.OTel.Endpoint)}
	if c.OTel.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	} else {
		opts = append(opts, otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(credentials.NewTLS(nil))))
	}
	exp, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		a.Logger.Error("otel_exporter_init_failed", zap.Error(err))
		return
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(c.AppMeta.Name),
		semconv.ServiceVersionKey.String(c.AppMeta.Version),
	))
	sampler := trace.ParentBased(trace.TraceIDRatioBased(c.OTel.SamplerRatio))
	a.tracerProv = trace.NewTracerProvider(trace.WithBatcher(exp), trace.WithResource(res), trace.WithSampler(sampler))
	go_otel.SetTracerProvider(a.tracerProv)
	a.Logger.Info("otel_tracer_provider_initialized")
	if db != nil {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			a.Logger.Error("gorm_tracing_plugin_failed", zap.Error(err))
		}
	}
	if r != nil {
		if err := redisotel.InstrumentTracing(r.Client); err != nil {
			a.Logger.Error("redis_tracing_hook_failed", zap.Error(err))
		}
	}
}

func (a *App) Close() {
	if a.Etcd != nil && a.serviceKey != "" && a.leaseID != 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.Etcd.Deregister(ctx, a.serviceKey, a.leaseID); err != nil {
			a.Logger.Error("etcd_deregister_failed", zap.Error(err))
		}
		metrics.EtcdUp.Set(0)
	}
	if a.consumerCancel != nil {
		a.consumerCancel()
	}
	if a.loginLogConsumer != nil {
		if err := a.loginLogConsumer.Close(); err != nil {
			a.Logger.Error("kafka_consumer_close_error", zap.Error(err))
		}
	}
	if a.LoginLogSender != nil {
		a.LoginLogSender.Stop()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Logger.Error("db_close_error", zap.Error(err))
			}
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("redis_close_error", zap.Error(err))
		}
	}
	if a.Kafka != nil {
		if err := a.Kafka.Close(); err != nil {
			a.Logger.Error("kafka_close_error", zap.Error(err))
		}
	}
	if a.Etcd != nil {
		if err := a.Etcd.Close(); err != nil {
			a.Logger.Error("etcd_close_error", zap.Error(err))
		}
	}
	if a.tracerProv != nil {
		if err := a.tracerProv.Shutdown(context.Background()); err != nil {
			a.Logger.Error("otel_tracer_shutdown_error", zap.Error(err))
		}
	}
	if a.stopCh != nil {
		close(a.stopCh)
	}
}

func firstNonLoopbackIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil || ip.IsLoopback() {
				continue
			}
			if v4 := ip.To4(); v4 != nil {
				return v4.String()
			}
		}
	}
	return ""
}
