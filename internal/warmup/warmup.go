// Package warmup pre-renders the most common responses into the knowledge
// cache at startup so early queries are served from warm entries.
package warmup

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/campusvoice/campus-assistant-go/internal/knowledge"
	"github.com/campusvoice/campus-assistant-go/internal/logger"
	"golang.org/x/sync/errgroup"
)

// weekdays in rendering order. Sunday is included because its holiday
// response is cached like any other day.
var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Stats counts pre-rendered responses.
// All fields use atomic operations for concurrent access.
type Stats struct {
	Warmed atomic.Int64
	Failed atomic.Int64
}

// Run renders the day timetables, per-department exam schedules and
// profiles, the directory listings, events, and contacts so their cache
// entries exist before the first query arrives. Individual failures are
// logged and counted, not fatal: a cold cache entry only costs the first
// caller a database round trip.
func Run(ctx context.Context, store knowledge.Store, log *logger.Logger) *Stats {
	stats := &Stats{}
	start := time.Now()
	log = log.WithModule("warmup")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	warm := func(name string, fn func(context.Context) error) {
		g.Go(func() error {
			if err := fn(ctx); err != nil {
				stats.Failed.Add(1)
				log.WithError(err).WithField("entry", name).Warnf("cache warmup entry failed")
				return nil
			}
			stats.Warmed.Add(1)
			return nil
		})
	}

	for _, day := range weekdays {
		warm("timetable:"+day, func(ctx context.Context) error {
			_, err := store.Timetable(ctx, day, "")
			return err
		})
	}
	for _, code := range knowledge.DepartmentCodes {
		warm("exam:"+code, func(ctx context.Context) error {
			_, err := store.ExamSchedule(ctx, code)
			return err
		})
		warm("department:"+code, func(ctx context.Context) error {
			_, err := store.DepartmentInfo(ctx, code)
			return err
		})
	}
	warm("exam:summary", func(ctx context.Context) error {
		_, err := store.ExamSchedule(ctx, "")
		return err
	})
	warm("department:directory", func(ctx context.Context) error {
		_, err := store.DepartmentInfo(ctx, "")
		return err
	})
	warm("facility:directory", func(ctx context.Context) error {
		_, err := store.FacilityInfo(ctx, "")
		return err
	})
	warm("events", func(ctx context.Context) error {
		_, err := store.Events(ctx)
		return err
	})
	warm("contacts", func(ctx context.Context) error {
		_, err := store.ImportantContacts(ctx)
		return err
	})

	_ = g.Wait()

	log.WithField("warmed", stats.Warmed.Load()).
		WithField("failed", stats.Failed.Load()).
		WithField("duration", time.Since(start).Round(time.Millisecond).String()).
		Infof("cache warmup finished")
	return stats
}
