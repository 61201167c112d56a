package order

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	domorder "example.com/order-management/internal/domain/order"
	"example.com/order-management/internal/metrics"
)

const entity = "order"

type Service struct {
	repo    domorder.Repository
	logger  logrus.FieldLogger
	metrics *metrics.StoreMetrics
}

func NewService(repo domorder.Repository, logger logrus.FieldLogger, m *metrics.StoreMetrics) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		repo:    repo,
		logger:  logger.WithField("component", "order_service"),
		metrics: m,
	}
}

// Create deserializes data into a new order and saves it.
func (s *Service) Create(ctx context.Context, data any) (*domorder.Order, error) {
	o, err := new(domorder.Order).Deserialize(data)
	if err != nil {
		s.metrics.Observe(entity, "create", metrics.ResultInvalid, time.Now())
		return nil, err
	}
	if err := s.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Update applies data to the stored order with the given id and saves it.
func (s *Service) Update(ctx context.Context, id int64, data any) (*domorder.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := o.Deserialize(data); err != nil {
		s.metrics.Observe(entity, "update", metrics.ResultInvalid, time.Now())
		return nil, err
	}
	if err := s.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Save inserts a transient order, assigning its id, or updates a persisted one.
// Saving an order whose row was deleted returns ErrOrderNotFound.
func (s *Service) Save(ctx context.Context, o *domorder.Order) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe(entity, "save", metrics.Result(err, domorder.ErrOrderNotFound), start)
	}()

	if !o.IsPersisted() {
		if _, err = s.repo.Create(ctx, o); err != nil {
			s.logger.WithError(err).Warn("insert order failed")
			return err
		}
		s.logger.WithField("id", o.ID).Debug("order created")
		return nil
	}

	if _, err = s.repo.Update(ctx, o); err != nil {
		s.logger.WithError(err).WithField("id", o.ID).Warn("update order failed")
		return err
	}
	s.logger.WithField("id", o.ID).Debug("order updated")
	return nil
}

// Delete removes the order's row. It is a no-op for transient orders and for
// rows that are already gone. The in-memory id is left untouched.
func (s *Service) Delete(ctx context.Context, o *domorder.Order) (err error) {
	if !o.IsPersisted() {
		return nil
	}

	start := time.Now()
	defer func() {
		s.metrics.Observe(entity, "delete", metrics.Result(err), start)
	}()

	if err = s.repo.Delete(ctx, o.ID); err != nil {
		if errors.Is(err, domorder.ErrOrderNotFound) {
			return nil
		}
		s.logger.WithError(err).WithField("id", o.ID).Warn("delete order failed")
		return err
	}
	s.logger.WithField("id", o.ID).Debug("order deleted")
	return nil
}

func (s *Service) All(ctx context.Context) ([]*domorder.Order, error) {
	s.logger.Info("Processing all Orders")
	start := time.Now()
	orders, err := s.repo.List(ctx)
	s.metrics.Observe(entity, "all", metrics.Result(err), start)
	return orders, err
}

// Get returns (nil, nil) when no order has the id.
func (s *Service) Get(ctx context.Context, id int64) (*domorder.Order, error) {
	s.logger.WithField("id", id).Info("Processing lookup for id")
	start := time.Now()
	o, err := s.repo.GetByID(ctx, id)
	s.metrics.Observe(entity, "get", metrics.Result(err, domorder.ErrOrderNotFound), start)
	if errors.Is(err, domorder.ErrOrderNotFound) {
		return nil, nil
	}
	return o, err
}

func (s *Service) FindByCustomerID(ctx context.Context, customerID int64) ([]*domorder.Order, error) {
	s.logger.WithField("customer_id", customerID).Info("Processing customer_id query")
	start := time.Now()
	orders, err := s.repo.ListByCustomer(ctx, customerID)
	s.metrics.Observe(entity, "find_by_customer_id", metrics.Result(err), start)
	return orders, err
}
