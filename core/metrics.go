package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RelationshipsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphdb_relationships_created_total",
		Help: "Relationships committed to the graph store",
	})

	NodesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphdb_nodes_created_total",
		Help: "Nodes committed to the graph store",
	})

	OperationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphdb_operation_failures_total",
		Help: "Rejected or failed graph operations by error kind",
	}, []string{"operation", "kind"})
)

func observeFailure(operation string, err error) {
	OperationFailures.WithLabelValues(operation, KindOf(err).String()).Inc()
}
