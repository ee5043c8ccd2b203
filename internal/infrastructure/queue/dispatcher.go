package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/smartcare-io/admin-api/internal/api/metrics"
	"github.com/smartcare-io/admin-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes invite mails to a fixed set of workers using consistent
// hashing on the recipient address, so mails to the same recipient are
// always delivered in order.
type Dispatcher struct {
	workers []chan ports.InviteJob
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.InviteJob, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.InviteJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its recipient.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.InviteJob) {
	idx := d.shardIndex(job.Email)
	d.workers[idx] <- job
	metrics.InviteQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.InviteJob) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.InviteQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.mailer.SendInvite(ctx, job); err != nil {
				metrics.InvitesSentTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("email", job.Email).
					Int("worker_id", id).
					Msg("invite mail delivery failed")
				continue
			}
			metrics.InvitesSentTotal.WithLabelValues("ok").Inc()
			d.log.Info().Str("email", job.Email).Msg("invite mail sent")
		}
	}
}
