package core

import (
	"graphdb/models"
	"strconv"
)

// NodeURI returns the URI of a node under baseURI, which must end in "/".
func NodeURI(baseURI string, id int64) string {
	return baseURI + "node/" + strconv.FormatInt(id, 10)
}

// RelationshipURI returns the URI of a relationship under baseURI.
func RelationshipURI(baseURI string, id int64) string {
	return baseURI + "relationship/" + strconv.FormatInt(id, 10)
}

// BuildRelationshipRepresentation projects rel onto its wire form. The
// property map is deep-copied so the result never aliases rel.
func BuildRelationshipRepresentation(rel models.Relationship, baseURI string) models.RelationshipRepresentation {
	self := RelationshipURI(baseURI, rel.ID)
	return models.RelationshipRepresentation{
		Self:       self,
		Start:      NodeURI(baseURI, rel.StartNodeID),
		End:        NodeURI(baseURI, rel.EndNodeID),
		Type:       rel.Type,
		Data:       models.CloneProperties(rel.Properties),
		Property:   self + "/properties/{key}",
		Properties: self + "/properties",
	}
}

func BuildNodeRepresentation(node models.Node, baseURI string) models.NodeRepresentation {
	self := NodeURI(baseURI, node.ID)
	return models.NodeRepresentation{
		Self:               self,
		Data:               models.CloneProperties(node.Properties),
		Property:           self + "/properties/{key}",
		Properties:         self + "/properties",
		CreateRelationship: self + "/relationships",
	}
}
