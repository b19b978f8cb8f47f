package memory

import (
	"context"

	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

type customerRepository struct{ uow *UnitOfWork }

func (r *customerRepository) Add(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.uow.enter()
	if err != nil {
		return err
	}
	defer release()

	if r.uow.customers.exists(aggregate.ID()) {
		return errs.ErrDuplicateKey
	}
	r.uow.customers.put(aggregate.ID(), aggregate)
	r.uow.track(aggregate)
	return nil
}

func (r *customerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	release, err := r.uow.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	c, ok := r.uow.customers.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return c, nil
}

func (r *customerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	release, err := r.uow.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	return r.uow.customers.all(), nil
}

func (r *customerRepository) AddOrder(_ context.Context, customerID, orderID kernel.UUID) error {
	return r.change(customerID, func(c *customer.Customer) error { return c.AddOrder(orderID) })
}

func (r *customerRepository) RemoveOrder(_ context.Context, customerID, orderID kernel.UUID) error {
	return r.change(customerID, func(c *customer.Customer) error { return c.RemoveOrder(orderID) })
}

func (r *customerRepository) change(id kernel.UUID, fn func(*customer.Customer) error) error {
	release, err := r.uow.enter()
	if err != nil {
		return err
	}
	defer release()

	c, ok := r.uow.customers.get(id)
	if !ok {
		return errs.NewObjectNotFoundError("customer", id.String())
	}
	if err = fn(c); err != nil {
		return err
	}
	r.uow.customers.put(id, c)
	return nil
}

type hostRepository struct{ uow *UnitOfWork }

func (r *hostRepository) Add(_ context.Context, aggregate *host.Host) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.uow.enter()
	if err != nil {
		return err
	}
	defer release()

	if r.uow.hosts.exists(aggregate.ID()) {
		return errs.ErrDuplicateKey
	}
	r.uow.hosts.put(aggregate.ID(), aggregate)
	r.uow.track(aggregate)
	return nil
}

func (r *hostRepository) Update(_ context.Context, aggregate *host.Host) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.uow.enter()
	if err != nil {
		return err
	}
	defer release()

	stored, ok := r.uow.hosts.get(aggregate.ID())
	if !ok {
		return errs.NewObjectNotFoundError("host", aggregate.ID().String())
	}
	updated, err := host.RestoreHost(stored.ID(), aggregate.Address(), aggregate.IsAvailable(), stored.OrderIDs())
	if err != nil {
		return err
	}
	r.uow.hosts.put(aggregate.ID(), updated)
	r.uow.track(aggregate)
	return nil
}

func (r *hostRepository) Get(_ context.Context, id kernel.UUID) (*host.Host, error) {
	release, err := r.uow.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	h, ok := r.uow.hosts.get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("host", id.String())
	}
	return h, nil
}

func (r *hostRepository) GetAll(_ context.Context) ([]*host.Host, error) {
	release, err := r.uow.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	return r.uow.hosts.all(), nil
}

func (r *hostRepository) AddOrder(_ context.Context, hostID, orderID kernel.UUID) error {
	return r.change(hostID, func(h *host.Host) error { return h.AddOrder(orderID) })
}

func (r *hostRepository) RemoveOrder(_ context.Context, hostID, orderID kernel.UUID) error {
	return r.change(hostID, func(h *host.Host) error { return h.RemoveOrder(orderID) })
}

func (r *hostRepository) change(id kernel.UUID, fn func(*host.Host) error) error {
	release, err := r.uow.enter()
	if err != nil {
		return err
	}
	defer release()

	h, ok := r.uow.hosts.get(id)
	if !ok {
		return errs.NewObjectNotFoundError("host", id.String())
	}
	if err = fn(h); err != nil {
		return err
	}
	r.uow.hosts.put(id, h)
	return nil
}

type orderRepository struct{ uow *UnitOfWork }

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.uow.enter()
	if err != nil {
		return err
	}
	defer release()

	if r.uow.orders.exists(aggregate.ID()) {
		return errs.ErrDuplicateKey
	}
	r.uow.orders.put(aggregate.ID(), aggregate)
	r.uow.track(aggregate)
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	release, err := r.uow.enter()
	if err != nil {
		return err
	}
	defer release()

	if !r.uow.orders.exists(aggregate.ID()) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	r.uow.orders.put(aggregate.ID(), aggregate)
	r.uow.track(aggregate)
	return nil
}

func (r *orderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.FindOne(ctx, ports.OrderFilter{ID: id})
}

func (r *orderRepository) FindOne(_ context.Context, filter ports.OrderFilter) (*order.Order, error) {
	release, err := r.uow.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	o, ok := r.uow.orders.get(filter.ID)
	if !ok || !matches(o, filter) {
		return nil, errs.NewObjectNotFoundError("order", filter.ID.String())
	}
	return o, nil
}

func (r *orderRepository) Delete(_ context.Context, filter ports.OrderFilter, deleted *order.Order) error {
	release, err := r.uow.enter()
	if err != nil {
		return err
	}
	defer release()

	o, ok := r.uow.orders.get(filter.ID)
	if !ok || !matches(o, filter) {
		return errs.NewObjectNotFoundError("order", filter.ID.String())
	}
	r.uow.orders.del(filter.ID)
	if deleted != nil {
		r.uow.track(deleted)
	}
	return nil
}

func (r *orderRepository) ListByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	release, err := r.uow.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	var out []*order.Order
	for _, o := range r.uow.orders.all() {
		if o.IsOwnedBy(customerID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *orderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	release, err := r.uow.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	return r.uow.orders.all(), nil
}

func matches(o *order.Order, filter ports.OrderFilter) bool {
	if filter.Status != order.Unknown && o.Status() != filter.Status {
		return false
	}
	if filter.CustomerID.Validate() == nil && !o.IsOwnedBy(filter.CustomerID) {
		return false
	}
	return true
}
