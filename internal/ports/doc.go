// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTTP handlers, the terminal UI). Subscriber is implemented by
// anything that wants to observe changes to the project list.
package ports
