package item

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	domitem "example.com/order-management/internal/domain/item"
	"example.com/order-management/internal/metrics"
)

const entity = "item"

type Service struct {
	repo    domitem.Repository
	logger  logrus.FieldLogger
	metrics *metrics.StoreMetrics
}

func NewService(repo domitem.Repository, logger logrus.FieldLogger, m *metrics.StoreMetrics) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		repo:    repo,
		logger:  logger.WithField("component", "item_service"),
		metrics: m,
	}
}

// Create deserializes data into a new item of the given order and saves it.
func (s *Service) Create(ctx context.Context, orderID int64, data any) (*domitem.Item, error) {
	i, err := new(domitem.Item).Deserialize(data, orderID)
	if err != nil {
		s.metrics.Observe(entity, "create", metrics.ResultInvalid, time.Now())
		return nil, err
	}
	if err := s.Save(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// Update applies data to the stored item with the given id. The item stays on its order.
func (s *Service) Update(ctx context.Context, id int64, data any) (*domitem.Item, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := i.Deserialize(data, i.OrderID); err != nil {
		s.metrics.Observe(entity, "update", metrics.ResultInvalid, time.Now())
		return nil, err
	}
	if err := s.Save(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Save(ctx context.Context, i *domitem.Item) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe(entity, "save", metrics.Result(err, domitem.ErrItemNotFound), start)
	}()

	if !i.IsPersisted() {
		if _, err = s.repo.Create(ctx, i); err != nil {
			s.logger.WithError(err).WithField("order_id", i.OrderID).Warn("insert item failed")
			return err
		}
		s.logger.WithFields(logrus.Fields{"id": i.ID, "order_id": i.OrderID}).Debug("item created")
		return nil
	}

	if _, err = s.repo.Update(ctx, i); err != nil {
		s.logger.WithError(err).WithField("id", i.ID).Warn("update item failed")
		return err
	}
	s.logger.WithField("id", i.ID).Debug("item updated")
	return nil
}

func (s *Service) Delete(ctx context.Context, i *domitem.Item) (err error) {
	if !i.IsPersisted() {
		return nil
	}

	start := time.Now()
	defer func() {
		s.metrics.Observe(entity, "delete", metrics.Result(err), start)
	}()

	if err = s.repo.Delete(ctx, i.ID); err != nil {
		if errors.Is(err, domitem.ErrItemNotFound) {
			return nil
		}
		s.logger.WithError(err).WithField("id", i.ID).Warn("delete item failed")
		return err
	}
	s.logger.WithField("id", i.ID).Debug("item deleted")
	return nil
}

func (s *Service) All(ctx context.Context) ([]*domitem.Item, error) {
	s.logger.Info("Processing all Items")
	start := time.Now()
	items, err := s.repo.List(ctx)
	s.metrics.Observe(entity, "all", metrics.Result(err), start)
	return items, err
}

// Get returns (nil, nil) when no item has the id.
func (s *Service) Get(ctx context.Context, id int64) (*domitem.Item, error) {
	s.logger.WithField("id", id).Info("Processing lookup for id")
	start := time.Now()
	i, err := s.repo.GetByID(ctx, id)
	s.metrics.Observe(entity, "get", metrics.Result(err, domitem.ErrItemNotFound), start)
	if errors.Is(err, domitem.ErrItemNotFound) {
		return nil, nil
	}
	return i, err
}
