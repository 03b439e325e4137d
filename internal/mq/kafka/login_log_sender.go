package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/metrics"
)

// LoginLogSender 登录日志有界异步发送.
// 单 worker 从 channel 取事件聚合后批量写 Kafka, 达到 maxBatch
// 或等待超过 maxWait 触发 flush. 队列满直接丢弃, 登录链路不阻塞.
type LoginLogSender struct {
	producer *Producer
	logger   *logging.Logger
	queue    chan loginLogEvent
	stopCh   chan struct{}
	wg       sync.WaitGroup

	maxBatch int
	maxWait  time.Duration
}

type loginLogEvent struct {
	ctx   context.Context
	entry model.SysLoginLog
}

func NewLoginLogSender(p *Producer, l *logging.Logger, queueSize, maxBatch int, maxWait time.Duration) *LoginLogSender {
	if queueSize <= 0 {
		queueSize = 1024
	}
	if maxBatch <= 0 {
		maxBatch = 25
	}
	if maxWait <= 0 {
		maxWait = 50 * time.Millisecond
	}
	return &LoginLogSender{
		producer: p,
		logger:   l,
		queue:    make(chan loginLogEvent, queueSize),
		stopCh:   make(chan struct{}),
		maxBatch: maxBatch,
		maxWait:  maxWait,
	}
}

// Publish 入队一条登录日志. 满队列丢弃并计数.
func (s *LoginLogSender) Publish(ctx context.Context, entry model.SysLoginLog) {
	select {
	case s.queue <- loginLogEvent{ctx: ctx, entry: entry}:
		metrics.LoginLogEnqueue.WithLabelValues("ok").Inc()
	default:
		metrics.LoginLogEnqueue.WithLabelValues("dropped").Inc()
		s.logger.Warn("登录日志队列已满, 丢弃", zap.String("mobile", entry.Mobile))
	}
}

func (s *LoginLogSender) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		batch := make([]loginLogEvent, 0, s.maxBatch)
		var timer *time.Timer
		var timerCh <-chan time.Time
		resetTimer := func() {
			if timer == nil {
				timer = time.NewTimer(s.maxWait)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(s.maxWait)
			}
			timerCh = timer.C
		}
		flush := func() {
			if len(batch) == 0 {
				return
			}
			s.flush(batch)
			metrics.LoginLogFlushBatch.Observe(float64(len(batch)))
			batch = batch[:0]
			timerCh = nil
		}
		for {
			select {
			case <-s.stopCh:
				flush()
				return
			case ev := <-s.queue:
				batch = append(batch, ev)
				if len(batch) == 1 {
					resetTimer()
				}
				if len(batch) >= s.maxBatch {
					flush()
				}
			case <-timerCh:
				flush()
			}
		}
	}()
}

func (s *LoginLogSender) flush(batch []loginLogEvent) {
	msgs := make([]kafkaGo.Message, 0, len(batch))
	for _, ev := range batch {
		payload, err := json.Marshal(ev.entry)
		if err != nil {
			continue
		}
		ctx, span := s.producer.startSpan(ev.ctx)
		hs := s.producer.injectHeaders(ctx, nil)
		msgs = append(msgs, kafkaGo.Message{Key: []byte(ev.entry.Mobile), Value: payload, Time: time.Now(), Headers: hs})
		span.End()
	}
	if len(msgs) == 0 {
		return
	}
	writeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.producer.Writer.WriteMessages(writeCtx, msgs...); err != nil {
		s.logger.Error("登录日志批量写 Kafka 失败", zap.Int("batch", len(msgs)), zap.Error(err))
	}
}

func (s *LoginLogSender) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}
