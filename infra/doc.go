// Package infra holds technical adapters: the MQTT responder, metric
// exporters and the logger implementation. These packages depend only on
// the interfaces and types defined under core.
package infra
