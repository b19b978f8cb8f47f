// Package ports declares the contracts between the application core and its adapters:
// repositories and the unit of work they are bound to, the shipment cost quoter and the
// event publisher.
package ports
