// Package mission contains the Mission aggregate and its supporting value
// objects. A mission assigns a driver to a resolved set of parcels, either a
// pickup run collecting parcels from shippers or a delivery run bringing them
// to recipients.
//
// The package defines:
//   - Mission: the aggregate root, owning the driver assignment, the parcel
//     and demand sets, the status lifecycle and the one-time completion code
//   - Kind: pickup or delivery
//   - Status: the mission status state machine
//   - CompletionCode: the secret the driver must present to complete a mission
package mission
