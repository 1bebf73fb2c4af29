package core

import (
	"context"
	"errors"
	"fmt"
	"graphdb/models"
	"sync"
)

// memGraph is an in-memory GraphAccessor. Each transaction works on a copy
// that replaces the committed state only when fn succeeds.
type memGraph struct {
	mu    sync.Mutex
	state memState

	// beforeCreate runs inside CreateRelationship, before the endpoints are
	// re-checked. Tests use it to delete an endpoint mid-transaction.
	beforeCreate func(st *memState)
	// failSetProperties makes SetRelationshipProperties fail.
	failSetProperties error
	updates           int
}

type memState struct {
	nodes    map[int64]map[string]any
	rels     map[int64]models.Relationship
	nextNode int64
	nextRel  int64
}

func newMemGraph() *memGraph {
	return &memGraph{state: memState{
		nodes:    map[int64]map[string]any{},
		rels:     map[int64]models.Relationship{},
		nextNode: 1,
		nextRel:  1,
	}}
}

func (s memState) clone() memState {
	c := memState{
		nodes:    make(map[int64]map[string]any, len(s.nodes)),
		rels:     make(map[int64]models.Relationship, len(s.rels)),
		nextNode: s.nextNode,
		nextRel:  s.nextRel,
	}
	for id, p := range s.nodes {
		c.nodes[id] = models.CloneProperties(p)
	}
	for id, r := range s.rels {
		r.Properties = models.CloneProperties(r.Properties)
		c.rels[id] = r
	}
	return c
}

func (g *memGraph) Update(ctx context.Context, fn func(tx GraphTx) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updates++
	work := g.state.clone()
	if err := fn(&memTx{g: g, st: &work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction aborted before commit: %w", err)
	}
	g.state = work
	return nil
}

func (g *memGraph) View(ctx context.Context, fn func(tx GraphTx) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	work := g.state.clone()
	return fn(&memTx{g: g, st: &work})
}

func (g *memGraph) addNode(props map[string]any) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.state.nextNode
	g.state.nextNode++
	g.state.nodes[id] = models.CloneProperties(props)
	return id
}

func (g *memGraph) relationshipCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.state.rels)
}

type memTx struct {
	g  *memGraph
	st *memState
}

func (t *memTx) NodeExists(ctx context.Context, id int64) (bool, error) {
	_, ok := t.st.nodes[id]
	return ok, nil
}

func (t *memTx) CreateNode(ctx context.Context) (models.Node, error) {
	id := t.st.nextNode
	t.st.nextNode++
	t.st.nodes[id] = map[string]any{}
	return models.Node{ID: id, Properties: map[string]any{}}, nil
}

func (t *memTx) SetNodeProperties(ctx context.Context, nodeID int64, props map[string]any) error {
	p, ok := t.st.nodes[nodeID]
	if !ok {
		return models.ErrNodeNotFound
	}
	for k, v := range models.CloneProperties(props) {
		p[k] = v
	}
	return nil
}

func (t *memTx) GetNode(ctx context.Context, id int64) (models.Node, error) {
	p, ok := t.st.nodes[id]
	if !ok {
		return models.Node{}, models.ErrNodeNotFound
	}
	return models.Node{ID: id, Properties: models.CloneProperties(p)}, nil
}

func (t *memTx) CreateRelationship(ctx context.Context, startID, endID int64, relType string) (models.Relationship, error) {
	if t.g.beforeCreate != nil {
		t.g.beforeCreate(t.st)
	}
	_, startOK := t.st.nodes[startID]
	_, endOK := t.st.nodes[endID]
	if !startOK || !endOK {
		return models.Relationship{}, fmt.Errorf("relationship %d->%d: %w", startID, endID, models.ErrEndpointMissing)
	}
	rel := models.Relationship{ID: t.st.nextRel, StartNodeID: startID, EndNodeID: endID, Type: relType, Properties: map[string]any{}}
	t.st.nextRel++
	t.st.rels[rel.ID] = rel
	return rel, nil
}

func (t *memTx) SetRelationshipProperties(ctx context.Context, relID int64, props map[string]any) error {
	if t.g.failSetProperties != nil {
		return t.g.failSetProperties
	}
	rel, ok := t.st.rels[relID]
	if !ok {
		return models.ErrRelationshipNotFound
	}
	for k, v := range models.CloneProperties(props) {
		rel.Properties[k] = v
	}
	return nil
}

func (t *memTx) GetRelationship(ctx context.Context, id int64) (models.Relationship, error) {
	rel, ok := t.st.rels[id]
	if !ok {
		return models.Relationship{}, models.ErrRelationshipNotFound
	}
	rel.Properties = models.CloneProperties(rel.Properties)
	return rel, nil
}

var errDiskFull = errors.New("disk full")
