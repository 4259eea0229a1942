package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	})

	// ProductsUpdated is a Prometheus counter for tracking the total number of products updated.
	ProductsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "The total number of products updated",
	})

	// ToppingsCreated is a Prometheus counter for tracking the total number of toppings created.
	ToppingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "toppings_created_total",
		Help: "The total number of toppings created",
	})

	// ToppingsUpdated is a Prometheus counter for tracking the total number of toppings updated.
	ToppingsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "toppings_updated_total",
		Help: "The total number of toppings updated",
	})

	// EventsPublished tracks messages delivered to the broker, labelled by topic.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "The total number of events published to the broker",
	}, []string{"topic"})
)
