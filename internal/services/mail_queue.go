package services

import (
	"context"
	"encoding/json"

	"github.com/gfmartins/fintrack/internal/config"
	"github.com/gfmartins/fintrack/pkg/logger"
	"github.com/hibiken/asynq"
)

const TaskTypeMail = "mail:send"

// MailTask is one outbound message, currently only password-reset mail.
type MailTask struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailQueue decouples request handlers from SMTP delivery.
type MailQueue interface {
	Enqueue(task *MailTask) error
	IsAsync() bool
	Close() error
}

// NewMailQueue returns a Redis-backed queue when Redis is enabled and
// reachable, otherwise an in-process fallback.
func NewMailQueue(cfg *config.Config, mailer *Mailer) MailQueue {
	if cfg.Redis.Enabled {
		queue, err := NewAsyncMailQueue(&cfg.Redis)
		if err != nil {
			logger.Warnf("[mail] redis unavailable, falling back to inline delivery: %v", err)
		} else {
			logger.Infof("[mail] async queue initialized with redis at %s", cfg.Redis.Addr)
			return queue
		}
	}

	queue := NewInlineMailQueue()
	queue.SetSender(mailer.Send)
	return queue
}

// AsyncMailQueue implements MailQueue using asynq (Redis-based).
type AsyncMailQueue struct {
	client *asynq.Client
}

func NewAsyncMailQueue(cfg *config.RedisConfig) (*AsyncMailQueue, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := asynq.NewClient(redisOpt)

	// Verify the connection before committing to async mode
	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()
	if _, err := inspector.Queues(); err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncMailQueue{client: client}, nil
}

func (q *AsyncMailQueue) Enqueue(task *MailTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}

	t := asynq.NewTask(TaskTypeMail, payload)
	info, err := q.client.Enqueue(t,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	logger.Infof("[mail] task enqueued: id=%s, queue=%s", info.ID, info.Queue)
	return nil
}

func (q *AsyncMailQueue) IsAsync() bool { return true }

func (q *AsyncMailQueue) Close() error { return q.client.Close() }

// InlineMailQueue delivers in a goroutine inside the current process.
type InlineMailQueue struct {
	sender func(*MailTask) error
}

func NewInlineMailQueue() *InlineMailQueue {
	return &InlineMailQueue{}
}

func (q *InlineMailQueue) SetSender(sender func(*MailTask) error) {
	q.sender = sender
}

// Enqueue sends in the background so the HTTP response is not held up by a
// slow SMTP server.
func (q *InlineMailQueue) Enqueue(task *MailTask) error {
	if q.sender == nil {
		logger.Warnf("[mail] no sender configured, dropping mail to %s", task.To)
		return nil
	}

	go func() {
		if err := q.sender(task); err != nil {
			logger.Errorf("[mail] delivery failed: %v", err)
		}
	}()

	return nil
}

func (q *InlineMailQueue) IsAsync() bool { return false }

func (q *InlineMailQueue) Close() error { return nil }

// MailWorker consumes mail tasks from Redis.
type MailWorker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	mailer *Mailer
}

func NewMailWorker(cfg *config.RedisConfig, mailer *Mailer) *MailWorker {
	if !cfg.Enabled {
		return nil
	}

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Errorf("[mail] worker error on %s: %v", task.Type(), err)
			}),
		},
	)

	return &MailWorker{
		server: server,
		mux:    asynq.NewServeMux(),
		mailer: mailer,
	}
}

func (w *MailWorker) Start() {
	w.mux.HandleFunc(TaskTypeMail, w.handleMailTask)

	go func() {
		logger.Info().Msg("mail worker started")
		if err := w.server.Run(w.mux); err != nil {
			logger.Errorf("[mail] worker stopped: %v", err)
		}
	}()
}

func (w *MailWorker) Stop() {
	w.server.Shutdown()
}

func (w *MailWorker) handleMailTask(ctx context.Context, t *asynq.Task) error {
	var task MailTask
	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		return err
	}
	return w.mailer.Send(&task)
}
