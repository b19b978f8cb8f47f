// Package queries contains read operations. Handlers read committed rows straight from
// the database into read models, bypassing aggregates and the unit of work.
package queries

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderView is the read model of an order as shown to its customer and its host.
type OrderView struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	HostID             *kernel.UUID
	Status             string
	OriginCountry      string
	DestinationCountry string
	CostAmount         int64
	CostCurrency       string
	TrackingNumber     *string
	Items              []ItemView
}

type ItemView struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	StoreName    string     `json:"storeName"`
	Weight       int        `json:"weight"`
	ReceivedDate *time.Time `json:"receivedDate,omitempty"`
	Photos       []string   `json:"photos,omitempty"`
}

const orderColumns = `
	id,
	customer_id,
	host_id,
	status,
	origin_country,
	destination_country,
	cost_amount,
	cost_currency,
	tracking_number,
	items
`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		view       OrderView
		id         uuid.UUID
		customerID uuid.UUID
		hostID     *uuid.UUID
		items      []byte
	)

	err := rows.Scan(
		&id,
		&customerID,
		&hostID,
		&view.Status,
		&view.OriginCountry,
		&view.DestinationCountry,
		&view.CostAmount,
		&view.CostCurrency,
		&view.TrackingNumber,
		&items,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderView{}, err
	}
	if hostID != nil {
		h, hostErr := kernel.UUIDFromBytes(hostID[:])
		if hostErr != nil {
			return OrderView{}, hostErr
		}
		view.HostID = &h
	}

	view.Items = make([]ItemView, 0)
	if err = json.Unmarshal(items, &view.Items); err != nil {
		return OrderView{}, fmt.Errorf("items of order %s: %w", view.ID, err)
	}

	return view, nil
}
