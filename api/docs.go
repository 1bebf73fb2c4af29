package api

// @title graphdb REST API
// @version v0.1.0
// @description Property-graph server. Nodes and typed relationships carry maps of primitive or homogeneous-array properties.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:7474
// @BasePath /
// @schemes http
