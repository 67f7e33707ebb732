package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tombstonedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_comments_tombstoned_total",
			Help: "Comments and replies marked as deleted",
		},
		[]string{"kind"},
	)

	createdTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_created_total",
			Help: "Threads, comments and replies created",
		},
		[]string{"kind"},
	)

	threadsAssembledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forum_threads_assembled_total",
			Help: "Thread detail views assembled",
		},
	)
)
