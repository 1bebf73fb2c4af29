package core

import (
	"context"
	"errors"
	"graphdb/models"
)

// CreateNode creates a node carrying the property map in body, which may be
// empty.
func (s *GraphService) CreateNode(ctx context.Context, body []byte) (models.Node, error) {
	node, err := s.createNode(ctx, body)
	if err != nil {
		observeFailure("create_node", err)
		return models.Node{}, err
	}
	NodesCreated.Inc()
	return node, nil
}

func (s *GraphService) createNode(ctx context.Context, body []byte) (models.Node, error) {
	props, err := DecodeProperties(body)
	if err != nil {
		return models.Node{}, err
	}
	if err := ValidateProperties(props); err != nil {
		return models.Node{}, err
	}

	var node models.Node
	err = s.graph.Update(ctx, func(tx GraphTx) error {
		created, err := tx.CreateNode(ctx)
		if err != nil {
			return NewError(StorageFailure, err, "creating node")
		}
		if len(props) > 0 {
			if err := tx.SetNodeProperties(ctx, created.ID, props); err != nil {
				return NewError(StorageFailure, err, "setting properties on node %d", created.ID)
			}
		}
		created.Properties = models.CloneProperties(props)
		node = created
		return nil
	})
	if err != nil {
		return models.Node{}, asDomainError(err, "committing node")
	}
	return node, nil
}

func (s *GraphService) GetNode(ctx context.Context, id int64) (models.Node, error) {
	var node models.Node
	err := s.graph.View(ctx, func(tx GraphTx) error {
		var err error
		node, err = tx.GetNode(ctx, id)
		if errors.Is(err, models.ErrNodeNotFound) {
			return NewError(NodeNotFound, err, "node %d not found", id)
		}
		if err != nil {
			return NewError(StorageFailure, err, "reading node %d", id)
		}
		return nil
	})
	if err != nil {
		return models.Node{}, asDomainError(err, "reading node")
	}
	return node, nil
}
