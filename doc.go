// Package mapproj is a cartographic projection transform engine. It
// converts batches of geographic coordinates (longitude and latitude in
// radians on a reference ellipsoid) to and from projected planar
// coordinates, and back, through one uniform bidirectional interface.
//
// Each projection is registered under one or more names and, where one
// exists, a legacy USGS GCTP numeric code. A Transform is constructed
// once from a validated parameter set and may then be shared freely
// across concurrent batch calls; every point is mapped independently of
// every other point.
//
// The engine does not parse textual projection definitions, read files,
// or keep a coordinate reference system catalog; parameters arrive as
// plain structured data and coordinate buffers are owned by the caller.
package mapproj
