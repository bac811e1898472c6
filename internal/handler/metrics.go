package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journal_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	loginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journal_logins_total",
		Help: "Total number of successful logins.",
	})

	storiesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journal_stories_created_total",
		Help: "Total number of travel stories created.",
	})

	storiesDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journal_stories_deleted_total",
		Help: "Total number of travel stories deleted.",
	})

	imageUploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journal_image_uploads_total",
		Help: "Total number of uploaded story images.",
	})

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_token_verifications_total",
			Help: "Total number of access token verification attempts by status.",
		},
		[]string{"status"},
	)
)
