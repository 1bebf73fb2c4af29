package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"graphdb/core"
	"graphdb/models"

	"github.com/mattn/go-sqlite3"
)

// SQLiteGraph is a core.GraphAccessor backed by SQLite.
type SQLiteGraph struct {
	db *sql.DB
}

func NewSQLiteGraph(db *sql.DB) *SQLiteGraph {
	return &SQLiteGraph{db: db}
}

func (g *SQLiteGraph) Update(ctx context.Context, fn func(tx core.GraphTx) error) error {
	return g.inTx(ctx, fn)
}

func (g *SQLiteGraph) View(ctx context.Context, fn func(tx core.GraphTx) error) error {
	return g.inTx(ctx, fn)
}

func (g *SQLiteGraph) inTx(ctx context.Context, fn func(tx core.GraphTx) error) error {
	if g.db == nil {
		return errors.New("database connection is not initialized")
	}
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&sqliteTx{tx: tx}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction aborted before commit: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// CountRelationships returns the number of stored relationships.
func (g *SQLiteGraph) CountRelationships(ctx context.Context) (int64, error) {
	var n int64
	if err := g.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM relationships").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting relationships: %w", err)
	}
	return n, nil
}

// DeleteNode removes a node and its properties. It fails while the node is
// still an endpoint of a relationship.
func (g *SQLiteGraph) DeleteNode(ctx context.Context, id int64) error {
	res, err := g.db.ExecContext(ctx, "DELETE FROM nodes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting node %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("node %d: %w", id, models.ErrNodeNotFound)
	}
	return nil
}

type sqliteTx struct {
	tx *sql.Tx
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

func (t *sqliteTx) NodeExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := t.tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM nodes WHERE id = ?)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking node %d: %w", id, err)
	}
	return exists, nil
}

func (t *sqliteTx) CreateNode(ctx context.Context) (models.Node, error) {
	res, err := t.tx.ExecContext(ctx, "INSERT INTO nodes DEFAULT VALUES")
	if err != nil {
		return models.Node{}, fmt.Errorf("inserting node: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Node{}, fmt.Errorf("getting last insert ID for node: %w", err)
	}
	return models.Node{ID: id, Properties: map[string]any{}}, nil
}

func (t *sqliteTx) SetNodeProperties(ctx context.Context, nodeID int64, props map[string]any) error {
	err := t.upsertProperties(ctx, `INSERT INTO node_properties (node_id, key, value_type, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(node_id, key) DO UPDATE SET value_type = excluded.value_type, value = excluded.value`, nodeID, props)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("node %d: %w", nodeID, models.ErrNodeNotFound)
	}
	return err
}

func (t *sqliteTx) GetNode(ctx context.Context, id int64) (models.Node, error) {
	exists, err := t.NodeExists(ctx, id)
	if err != nil {
		return models.Node{}, err
	}
	if !exists {
		return models.Node{}, fmt.Errorf("node %d: %w", id, models.ErrNodeNotFound)
	}
	props, err := t.loadProperties(ctx, "SELECT key, value_type, value FROM node_properties WHERE node_id = ?", id)
	if err != nil {
		return models.Node{}, err
	}
	return models.Node{ID: id, Properties: props}, nil
}

func (t *sqliteTx) CreateRelationship(ctx context.Context, startID, endID int64, relType string) (models.Relationship, error) {
	res, err := t.tx.ExecContext(ctx,
		"INSERT INTO relationships (start_node_id, end_node_id, type) VALUES (?, ?, ?)",
		startID, endID, relType)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Relationship{}, fmt.Errorf("relationship %d->%d: %w", startID, endID, models.ErrEndpointMissing)
		}
		return models.Relationship{}, fmt.Errorf("inserting relationship: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Relationship{}, fmt.Errorf("getting last insert ID for relationship: %w", err)
	}
	return models.Relationship{
		ID:          id,
		StartNodeID: startID,
		EndNodeID:   endID,
		Type:        relType,
		Properties:  map[string]any{},
	}, nil
}

func (t *sqliteTx) SetRelationshipProperties(ctx context.Context, relID int64, props map[string]any) error {
	err := t.upsertProperties(ctx, `INSERT INTO relationship_properties (relationship_id, key, value_type, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(relationship_id, key) DO UPDATE SET value_type = excluded.value_type, value = excluded.value`, relID, props)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("relationship %d: %w", relID, models.ErrRelationshipNotFound)
	}
	return err
}

func (t *sqliteTx) GetRelationship(ctx context.Context, id int64) (models.Relationship, error) {
	rel := models.Relationship{ID: id}
	err := t.tx.QueryRowContext(ctx,
		"SELECT start_node_id, end_node_id, type FROM relationships WHERE id = ?", id,
	).Scan(&rel.StartNodeID, &rel.EndNodeID, &rel.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rel, fmt.Errorf("relationship %d: %w", id, models.ErrRelationshipNotFound)
		}
		return rel, fmt.Errorf("querying relationship %d: %w", id, err)
	}
	rel.Properties, err = t.loadProperties(ctx,
		"SELECT key, value_type, value FROM relationship_properties WHERE relationship_id = ?", id)
	if err != nil {
		return rel, err
	}
	return rel, nil
}

func (t *sqliteTx) upsertProperties(ctx context.Context, query string, ownerID int64, props map[string]any) error {
	if len(props) == 0 {
		return nil
	}
	stmt, err := t.tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing property statement: %w", err)
	}
	defer stmt.Close()

	for _, key := range sortedKeys(props) {
		typeTag, raw, err := encodeProperty(props[key])
		if err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		if _, err := stmt.ExecContext(ctx, ownerID, key, typeTag, raw); err != nil {
			return fmt.Errorf("writing property %q of %d: %w", key, ownerID, err)
		}
	}
	return nil
}

func (t *sqliteTx) loadProperties(ctx context.Context, query string, ownerID int64) (map[string]any, error) {
	rows, err := t.tx.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying properties of %d: %w", ownerID, err)
	}
	defer rows.Close()

	props := map[string]any{}
	for rows.Next() {
		var key, typeTag, raw string
		if err := rows.Scan(&key, &typeTag, &raw); err != nil {
			return nil, fmt.Errorf("scanning property row of %d: %w", ownerID, err)
		}
		v, err := decodeProperty(typeTag, raw)
		if err != nil {
			return nil, fmt.Errorf("property %q of %d: %w", key, ownerID, err)
		}
		props[key] = v
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties of %d: %w", ownerID, err)
	}
	return props, nil
}
