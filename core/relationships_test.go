package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relBody(to int64, relType string, data string) []byte {
	body := fmt.Sprintf(`{"to": "http://localhost:7474/db/data/node/%d", "type": %q`, to, relType)
	if data != "" {
		body += `, "data": ` + data
	}
	return []byte(body + "}")
}

func TestCreateRelationship_Succeeds(t *testing.T) {
	g := newMemGraph()
	n1 := g.addNode(nil)
	n2 := g.addNode(nil)
	svc := NewGraphService(g, PrecedenceStart)

	rel, err := svc.CreateRelationship(context.Background(), n1, relBody(n2, "LOVES", `{"foo": "bar", "since": 2001, "weight": 0.5, "tags": ["a", "b"], "ok": true}`))
	require.NoError(t, err)

	want := map[string]any{
		"foo":    "bar",
		"since":  int64(2001),
		"weight": 0.5,
		"tags":   []any{"a", "b"},
		"ok":     true,
	}
	assert.Equal(t, n1, rel.StartNodeID)
	assert.Equal(t, n2, rel.EndNodeID)
	assert.Equal(t, "LOVES", rel.Type)
	assert.Equal(t, want, rel.Properties)

	stored, err := svc.GetRelationship(context.Background(), rel.ID)
	require.NoError(t, err)
	assert.Equal(t, want, stored.Properties)
	assert.Equal(t, 1, g.relationshipCount())
}

func TestCreateRelationship_WithoutData(t *testing.T) {
	g := newMemGraph()
	n1 := g.addNode(nil)
	svc := NewGraphService(g, PrecedenceStart)

	// A self-loop is a valid relationship.
	rel, err := svc.CreateRelationship(context.Background(), n1, relBody(n1, "KNOWS", ""))
	require.NoError(t, err)
	assert.NotNil(t, rel.Properties)
	assert.Empty(t, rel.Properties)
}

func TestCreateRelationship_Failures(t *testing.T) {
	tests := []struct {
		name string
		body func(n1, n2 int64) []byte
		from func(n1, n2 int64) int64
		kind ErrorKind
	}{
		{
			name: "start node missing",
			body: func(n1, n2 int64) []byte { return relBody(n2, "LOVES", "") },
			from: func(n1, n2 int64) int64 { return 999999 },
			kind: StartNodeNotFound,
		},
		{
			name: "end node missing",
			body: func(n1, n2 int64) []byte { return relBody(999999, "LOVES", "") },
			kind: EndNodeNotFound,
		},
		{
			name: "malformed body",
			body: func(n1, n2 int64) []byte { return []byte(`{"to": "x", "type": "LOVES", "data": {"foo": bar}}`) },
			kind: MalformedInput,
		},
		{
			name: "empty body",
			body: func(n1, n2 int64) []byte { return nil },
			kind: MalformedInput,
		},
		{
			name: "missing type",
			body: func(n1, n2 int64) []byte { return []byte(fmt.Sprintf(`{"to": "/node/%d"}`, n2)) },
			kind: InvalidRequest,
		},
		{
			name: "empty type",
			body: func(n1, n2 int64) []byte { return relBody(n2, "", "") },
			kind: InvalidRequest,
		},
		{
			name: "missing to",
			body: func(n1, n2 int64) []byte { return []byte(`{"type": "LOVES"}`) },
			kind: InvalidRequest,
		},
		{
			name: "to is not a node reference",
			body: func(n1, n2 int64) []byte { return []byte(`{"to": "http://localhost/db/data/node/abc", "type": "LOVES"}`) },
			kind: InvalidRequest,
		},
		{
			name: "body is an array",
			body: func(n1, n2 int64) []byte { return []byte(`[1, 2]`) },
			kind: InvalidRequest,
		},
		{
			name: "data is not an object",
			body: func(n1, n2 int64) []byte { return relBody(n2, "LOVES", `"foo"`) },
			kind: InvalidRequest,
		},
		{
			name: "mixed array property",
			body: func(n1, n2 int64) []byte { return relBody(n2, "LOVES", `{"foo": ["a", 1]}`) },
			kind: InvalidPropertyValue,
		},
		{
			name: "nested object property",
			body: func(n1, n2 int64) []byte { return relBody(n2, "LOVES", `{"foo": {"bar": 1}}`) },
			kind: InvalidPropertyValue,
		},
		{
			name: "null property",
			body: func(n1, n2 int64) []byte { return relBody(n2, "LOVES", `{"foo": null}`) },
			kind: InvalidPropertyValue,
		},
		{
			name: "integer and float array property",
			body: func(n1, n2 int64) []byte { return relBody(n2, "LOVES", `{"foo": [1, 2.5]}`) },
			kind: InvalidPropertyValue,
		},
		{
			name: "integer wider than 64 bits",
			body: func(n1, n2 int64) []byte { return relBody(n2, "LOVES", `{"n": 12345678901234567890123}`) },
			kind: InvalidPropertyValue,
		},
		{
			name: "invalid utf-8 in property",
			body: func(n1, n2 int64) []byte { return relBody(n2, "LOVES", "{\"s\": \"a\xffb\"}") },
			kind: MalformedInput,
		},
		{
			name: "signed to reference",
			body: func(n1, n2 int64) []byte { return []byte(fmt.Sprintf(`{"to": "/node/+%d", "type": "LOVES"}`, n2)) },
			kind: InvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newMemGraph()
			n1 := g.addNode(nil)
			n2 := g.addNode(nil)
			svc := NewGraphService(g, PrecedenceStart)

			from := n1
			if tt.from != nil {
				from = tt.from(n1, n2)
			}
			_, err := svc.CreateRelationship(context.Background(), from, tt.body(n1, n2))
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err), err.Error())
			assert.Equal(t, 0, g.relationshipCount())
		})
	}
}

func TestCreateRelationship_MalformedInputSkipsStore(t *testing.T) {
	g := newMemGraph()
	svc := NewGraphService(g, PrecedenceStart)

	_, err := svc.CreateRelationship(context.Background(), 1, []byte(`{"to": `))
	require.Error(t, err)
	assert.Equal(t, MalformedInput, KindOf(err))
	assert.Zero(t, g.updates)
}

func TestCreateRelationship_EndpointChecksPrecedePropertyValidation(t *testing.T) {
	g := newMemGraph()
	n1 := g.addNode(nil)
	svc := NewGraphService(g, PrecedenceStart)

	_, err := svc.CreateRelationship(context.Background(), 999999, relBody(n1, "LOVES", `{"foo": null}`))
	assert.Equal(t, StartNodeNotFound, KindOf(err))

	_, err = svc.CreateRelationship(context.Background(), n1, relBody(999999, "LOVES", `{"foo": null}`))
	assert.Equal(t, EndNodeNotFound, KindOf(err))

	_, err = svc.CreateRelationship(context.Background(), 999999, relBody(n1, "LOVES", `{"n": 99999999999999999999}`))
	assert.Equal(t, StartNodeNotFound, KindOf(err))
}

func TestCreateRelationship_BothEndpointsMissing(t *testing.T) {
	g := newMemGraph()

	_, err := NewGraphService(g, PrecedenceStart).CreateRelationship(context.Background(), 1000, relBody(1001, "LOVES", ""))
	assert.Equal(t, StartNodeNotFound, KindOf(err))

	_, err = NewGraphService(g, PrecedenceEnd).CreateRelationship(context.Background(), 1000, relBody(1001, "LOVES", ""))
	assert.Equal(t, EndNodeNotFound, KindOf(err))
}

func TestCreateRelationship_EndpointVanishesDuringWrite(t *testing.T) {
	tests := []struct {
		precedence EndpointPrecedence
		want       ErrorKind
	}{
		{PrecedenceStart, StartNodeNotFound},
		{PrecedenceEnd, EndNodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			g := newMemGraph()
			n1 := g.addNode(nil)
			n2 := g.addNode(nil)
			g.beforeCreate = func(st *memState) { delete(st.nodes, n2) }

			_, err := NewGraphService(g, tt.precedence).CreateRelationship(context.Background(), n1, relBody(n2, "LOVES", ""))
			require.Error(t, err)
			assert.Equal(t, tt.want, KindOf(err))
			assert.Equal(t, 0, g.relationshipCount())
		})
	}
}

func TestCreateRelationship_PropertyWriteFailureRollsBack(t *testing.T) {
	g := newMemGraph()
	n1 := g.addNode(nil)
	n2 := g.addNode(nil)
	g.failSetProperties = errDiskFull
	svc := NewGraphService(g, PrecedenceStart)

	_, err := svc.CreateRelationship(context.Background(), n1, relBody(n2, "LOVES", `{"foo": "bar"}`))
	require.Error(t, err)
	assert.Equal(t, StorageFailure, KindOf(err))
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, "internal storage failure", MessageOf(err))
	assert.Equal(t, 0, g.relationshipCount())
}

func TestCreateRelationship_CancelledContextRollsBack(t *testing.T) {
	g := newMemGraph()
	n1 := g.addNode(nil)
	n2 := g.addNode(nil)
	svc := NewGraphService(g, PrecedenceStart)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.CreateRelationship(ctx, n1, relBody(n2, "LOVES", ""))
	require.Error(t, err)
	assert.Equal(t, StorageFailure, KindOf(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, g.relationshipCount())
}

func TestGetRelationshipProperty(t *testing.T) {
	g := newMemGraph()
	n1 := g.addNode(nil)
	n2 := g.addNode(nil)
	svc := NewGraphService(g, PrecedenceStart)

	rel, err := svc.CreateRelationship(context.Background(), n1, relBody(n2, "LOVES", `{"foo": "bar"}`))
	require.NoError(t, err)

	v, err := svc.GetRelationshipProperty(context.Background(), rel.ID, "foo")
	require.NoError(t, err)
	assert.Equal(t, "bar", v)

	_, err = svc.GetRelationshipProperty(context.Background(), rel.ID, "missing")
	assert.Equal(t, PropertyNotFound, KindOf(err))

	_, err = svc.GetRelationshipProperty(context.Background(), rel.ID+100, "foo")
	assert.Equal(t, RelationshipNotFound, KindOf(err))
}

func TestParseEndpointPrecedence(t *testing.T) {
	p, err := ParseEndpointPrecedence("")
	require.NoError(t, err)
	assert.Equal(t, PrecedenceStart, p)

	p, err = ParseEndpointPrecedence(" End ")
	require.NoError(t, err)
	assert.Equal(t, PrecedenceEnd, p)

	_, err = ParseEndpointPrecedence("both")
	assert.Error(t, err)
}
