package database

import (
	"context"
	"fmt"
	"graphdb/core"
	"graphdb/logger"
	"graphdb/models"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jGraph is a core.GraphAccessor backed by a Neo4j server. Node and
// relationship ids are the server's internal ids.
type Neo4jGraph struct {
	driver   neo4j.DriverWithContext
	database string
}

// OpenNeo4j connects to uri and verifies the server is reachable.
func OpenNeo4j(ctx context.Context, uri, username, password, database string) (*Neo4jGraph, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver for %s: %w", uri, err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("connecting to neo4j at %s: %w", uri, err)
	}
	logger.Info("Connected to Neo4j at %s", uri)
	return NewNeo4jGraph(driver, database), nil
}

func NewNeo4jGraph(driver neo4j.DriverWithContext, database string) *Neo4jGraph {
	return &Neo4jGraph{driver: driver, database: database}
}

func (g *Neo4jGraph) Close(ctx context.Context) error {
	return g.driver.Close(ctx)
}

func (g *Neo4jGraph) Update(ctx context.Context, fn func(tx core.GraphTx) error) error {
	return g.inTx(ctx, neo4j.AccessModeWrite, fn)
}

func (g *Neo4jGraph) View(ctx context.Context, fn func(tx core.GraphTx) error) error {
	return g.inTx(ctx, neo4j.AccessModeRead, fn)
}

// inTx uses an explicit transaction rather than ExecuteWrite/ExecuteRead,
// which retry transient failures.
func (g *Neo4jGraph) inTx(ctx context.Context, mode neo4j.AccessMode, fn func(tx core.GraphTx) error) error {
	session := g.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode, DatabaseName: g.database})
	defer session.Close(ctx)

	tx, err := session.BeginTransaction(ctx)
	if err != nil {
		return fmt.Errorf("beginning neo4j transaction: %w", err)
	}
	// Close rolls back unless Commit succeeded.
	defer tx.Close(ctx)

	if err := fn(&neo4jTx{tx: tx}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction aborted before commit: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing neo4j transaction: %w", err)
	}
	return nil
}

type neo4jTx struct {
	tx neo4j.ExplicitTransaction
}

// first runs a query and returns its first record, if any.
func (t *neo4jTx) first(ctx context.Context, cypher string, params map[string]any) (*neo4j.Record, error) {
	result, err := t.tx.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	if result.Next(ctx) {
		return result.Record(), nil
	}
	return nil, result.Err()
}

func quoteIdentifier(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

func (t *neo4jTx) NodeExists(ctx context.Context, id int64) (bool, error) {
	rec, err := t.first(ctx, "MATCH (n) WHERE id(n) = $id RETURN count(n) AS c", map[string]any{"id": id})
	if err != nil {
		return false, fmt.Errorf("checking node %d: %w", id, err)
	}
	if rec == nil {
		return false, nil
	}
	c, _, err := neo4j.GetRecordValue[int64](rec, "c")
	if err != nil {
		return false, fmt.Errorf("reading node count: %w", err)
	}
	return c > 0, nil
}

func (t *neo4jTx) CreateNode(ctx context.Context) (models.Node, error) {
	rec, err := t.first(ctx, "CREATE (n) RETURN id(n) AS id", nil)
	if err != nil {
		return models.Node{}, fmt.Errorf("creating node: %w", err)
	}
	if rec == nil {
		return models.Node{}, fmt.Errorf("creating node: no id returned")
	}
	id, _, err := neo4j.GetRecordValue[int64](rec, "id")
	if err != nil {
		return models.Node{}, fmt.Errorf("reading node id: %w", err)
	}
	return models.Node{ID: id, Properties: map[string]any{}}, nil
}

func (t *neo4jTx) SetNodeProperties(ctx context.Context, nodeID int64, props map[string]any) error {
	rec, err := t.first(ctx, "MATCH (n) WHERE id(n) = $id SET n += $props RETURN id(n) AS id",
		map[string]any{"id": nodeID, "props": props})
	if err != nil {
		return fmt.Errorf("setting properties on node %d: %w", nodeID, err)
	}
	if rec == nil {
		return fmt.Errorf("node %d: %w", nodeID, models.ErrNodeNotFound)
	}
	return nil
}

func (t *neo4jTx) GetNode(ctx context.Context, id int64) (models.Node, error) {
	rec, err := t.first(ctx, "MATCH (n) WHERE id(n) = $id RETURN properties(n) AS props", map[string]any{"id": id})
	if err != nil {
		return models.Node{}, fmt.Errorf("querying node %d: %w", id, err)
	}
	if rec == nil {
		return models.Node{}, fmt.Errorf("node %d: %w", id, models.ErrNodeNotFound)
	}
	props, _, err := neo4j.GetRecordValue[map[string]any](rec, "props")
	if err != nil {
		return models.Node{}, fmt.Errorf("reading node properties: %w", err)
	}
	return models.Node{ID: id, Properties: props}, nil
}

func (t *neo4jTx) CreateRelationship(ctx context.Context, startID, endID int64, relType string) (models.Relationship, error) {
	cypher := "MATCH (a), (b) WHERE id(a) = $start AND id(b) = $end " +
		"CREATE (a)-[r:" + quoteIdentifier(relType) + "]->(b) RETURN id(r) AS id"
	rec, err := t.first(ctx, cypher, map[string]any{"start": startID, "end": endID})
	if err != nil {
		return models.Relationship{}, fmt.Errorf("creating relationship: %w", err)
	}
	if rec == nil {
		return models.Relationship{}, fmt.Errorf("relationship %d->%d: %w", startID, endID, models.ErrEndpointMissing)
	}
	id, _, err := neo4j.GetRecordValue[int64](rec, "id")
	if err != nil {
		return models.Relationship{}, fmt.Errorf("reading relationship id: %w", err)
	}
	return models.Relationship{
		ID:          id,
		StartNodeID: startID,
		EndNodeID:   endID,
		Type:        relType,
		Properties:  map[string]any{},
	}, nil
}

func (t *neo4jTx) SetRelationshipProperties(ctx context.Context, relID int64, props map[string]any) error {
	rec, err := t.first(ctx, "MATCH ()-[r]->() WHERE id(r) = $id SET r += $props RETURN id(r) AS id",
		map[string]any{"id": relID, "props": props})
	if err != nil {
		return fmt.Errorf("setting properties on relationship %d: %w", relID, err)
	}
	if rec == nil {
		return fmt.Errorf("relationship %d: %w", relID, models.ErrRelationshipNotFound)
	}
	return nil
}

func (t *neo4jTx) GetRelationship(ctx context.Context, id int64) (models.Relationship, error) {
	rec, err := t.first(ctx,
		"MATCH (a)-[r]->(b) WHERE id(r) = $id RETURN id(a) AS start, id(b) AS end, type(r) AS type, properties(r) AS props",
		map[string]any{"id": id})
	if err != nil {
		return models.Relationship{}, fmt.Errorf("querying relationship %d: %w", id, err)
	}
	if rec == nil {
		return models.Relationship{}, fmt.Errorf("relationship %d: %w", id, models.ErrRelationshipNotFound)
	}

	rel := models.Relationship{ID: id}
	if rel.StartNodeID, _, err = neo4j.GetRecordValue[int64](rec, "start"); err != nil {
		return rel, fmt.Errorf("reading start node of relationship %d: %w", id, err)
	}
	if rel.EndNodeID, _, err = neo4j.GetRecordValue[int64](rec, "end"); err != nil {
		return rel, fmt.Errorf("reading end node of relationship %d: %w", id, err)
	}
	if rel.Type, _, err = neo4j.GetRecordValue[string](rec, "type"); err != nil {
		return rel, fmt.Errorf("reading type of relationship %d: %w", id, err)
	}
	if rel.Properties, _, err = neo4j.GetRecordValue[map[string]any](rec, "props"); err != nil {
		return rel, fmt.Errorf("reading properties of relationship %d: %w", id, err)
	}
	return rel, nil
}
