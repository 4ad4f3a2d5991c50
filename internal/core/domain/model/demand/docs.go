// Package demand implements the demand aggregate: a shipper's request to
// have a set of parcels picked up, reviewed once by an operator and consumed
// by at most one mission through the sticky inMission flag.
package demand
