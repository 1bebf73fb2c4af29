package core

import (
	"context"
	"errors"
	"fmt"
	"graphdb/logger"
	"graphdb/models"
	"strings"
)

// EndpointPrecedence selects which not-found outcome is reported when both
// endpoints are missing, or when an endpoint vanishes between the existence
// check and the write.
type EndpointPrecedence int

const (
	PrecedenceStart EndpointPrecedence = iota
	PrecedenceEnd
)

func ParseEndpointPrecedence(s string) (EndpointPrecedence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start":
		return PrecedenceStart, nil
	case "end":
		return PrecedenceEnd, nil
	}
	return PrecedenceStart, fmt.Errorf("unknown endpoint precedence %q", s)
}

// GraphService implements the graph operations exposed over REST and the CLI.
type GraphService struct {
	graph      GraphAccessor
	precedence EndpointPrecedence
}

func NewGraphService(graph GraphAccessor, precedence EndpointPrecedence) *GraphService {
	return &GraphService{graph: graph, precedence: precedence}
}

// CreateRelationship creates a relationship from startNodeID to the node
// referenced by the request body, with the body's properties, in a single
// transaction. Failures carry an ErrorKind; nothing is persisted on failure.
func (s *GraphService) CreateRelationship(ctx context.Context, startNodeID int64, body []byte) (models.Relationship, error) {
	rel, err := s.createRelationship(ctx, startNodeID, body)
	if err != nil {
		observeFailure("create_relationship", err)
		return models.Relationship{}, err
	}
	RelationshipsCreated.Inc()
	return rel, nil
}

func (s *GraphService) createRelationship(ctx context.Context, startNodeID int64, body []byte) (models.Relationship, error) {
	req, err := DecodeRelationshipRequest(body)
	if err != nil {
		return models.Relationship{}, err
	}

	// Validated up front; reported only once both endpoints are known to exist.
	propErr := ValidateProperties(req.Data)

	var rel models.Relationship
	err = s.graph.Update(ctx, func(tx GraphTx) error {
		if err := s.checkEndpoints(ctx, tx, startNodeID, req.EndNodeID); err != nil {
			return err
		}
		if propErr != nil {
			return propErr
		}

		created, err := tx.CreateRelationship(ctx, startNodeID, req.EndNodeID, req.Type)
		if err != nil {
			return s.mutationError(err, "creating relationship %d->%d", startNodeID, req.EndNodeID)
		}
		if len(req.Data) > 0 {
			if err := tx.SetRelationshipProperties(ctx, created.ID, req.Data); err != nil {
				return s.mutationError(err, "setting properties on relationship %d", created.ID)
			}
		}
		created.Properties = models.CloneProperties(req.Data)
		rel = created
		return nil
	})
	if err != nil {
		return models.Relationship{}, asDomainError(err, "committing relationship")
	}
	logger.Debug("GraphService: created relationship %d (%d)-[%s]->(%d) with %d properties", rel.ID, rel.StartNodeID, rel.Type, rel.EndNodeID, len(rel.Properties))
	return rel, nil
}

func (s *GraphService) checkEndpoints(ctx context.Context, tx GraphTx, startID, endID int64) error {
	startExists, err := tx.NodeExists(ctx, startID)
	if err != nil {
		return NewError(StorageFailure, err, "checking start node %d", startID)
	}
	endExists, err := tx.NodeExists(ctx, endID)
	if err != nil {
		return NewError(StorageFailure, err, "checking end node %d", endID)
	}

	switch {
	case !startExists && !endExists:
		if s.precedence == PrecedenceEnd {
			return endNodeNotFound(endID, nil)
		}
		return startNodeNotFound(startID, nil)
	case !startExists:
		return startNodeNotFound(startID, nil)
	case !endExists:
		return endNodeNotFound(endID, nil)
	}
	return nil
}

// mutationError maps a failure of a write inside the transaction. A vanished
// endpoint is reported per the configured precedence; anything else is a
// storage failure.
func (s *GraphService) mutationError(err error, format string, args ...any) error {
	if errors.Is(err, models.ErrEndpointMissing) {
		if s.precedence == PrecedenceEnd {
			return &Error{Kind: EndNodeNotFound, Message: "end node no longer exists", Err: err}
		}
		return &Error{Kind: StartNodeNotFound, Message: "start node no longer exists", Err: err}
	}
	return NewError(StorageFailure, err, format, args...)
}

func startNodeNotFound(id int64, err error) *Error {
	return NewError(StartNodeNotFound, err, "start node %d not found", id)
}

func endNodeNotFound(id int64, err error) *Error {
	return NewError(EndNodeNotFound, err, "end node %d not found", id)
}

// asDomainError leaves *Error values untouched and wraps anything else
// (commit failures, cancelled contexts) as a storage failure.
func asDomainError(err error, msg string) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return NewError(StorageFailure, err, "%s", msg)
}

// GetRelationship reads a committed relationship with its properties.
func (s *GraphService) GetRelationship(ctx context.Context, id int64) (models.Relationship, error) {
	var rel models.Relationship
	err := s.graph.View(ctx, func(tx GraphTx) error {
		var err error
		rel, err = tx.GetRelationship(ctx, id)
		if errors.Is(err, models.ErrRelationshipNotFound) {
			return NewError(RelationshipNotFound, err, "relationship %d not found", id)
		}
		if err != nil {
			return NewError(StorageFailure, err, "reading relationship %d", id)
		}
		return nil
	})
	if err != nil {
		return models.Relationship{}, asDomainError(err, "reading relationship")
	}
	return rel, nil
}

// GetRelationshipProperty returns a single property value.
func (s *GraphService) GetRelationshipProperty(ctx context.Context, id int64, key string) (any, error) {
	rel, err := s.GetRelationship(ctx, id)
	if err != nil {
		return nil, err
	}
	v, ok := rel.Properties[key]
	if !ok {
		return nil, NewError(PropertyNotFound, nil, "relationship %d has no property %q", id, key)
	}
	return v, nil
}
