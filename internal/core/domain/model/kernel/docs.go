// Package kernel holds the shared value objects of the forwarding domain: the opaque
// UUID identity used by every aggregate, ISO 3166-1 countries, and addresses.
package kernel
