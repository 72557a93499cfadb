// Package kernel contains shared value objects used across the domain
// model. It currently provides the UUID value object that identifies all
// aggregates in the system.
//
// Kernel types are immutable, validated at construction, and carry no
// infrastructure dependencies beyond the uuid library they wrap.
package kernel
