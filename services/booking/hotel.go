package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/database/store"
	"github.com/kamesh952/KalmHolidays/models"
	"github.com/kamesh952/KalmHolidays/services/events"
)

func (s *DefaultService) HotelBooking(ctx context.Context) (models.FormBooking, bool) {
	return store.LoadOne[models.FormBooking](ctx, s.Store, store.KeyFormBooking)
}

func (s *DefaultService) SubmitHotelBooking(ctx context.Context, form models.FormBooking) (models.FormBooking, error) {
	form.SubmittedAt = time.Now().UTC()

	if err := store.SaveOne(ctx, s.Store, store.KeyFormBooking, form); err != nil {
		return models.FormBooking{}, err
	}
	s.Bus.Publish(events.TopicBookingsUpdated)
	s.Logger.Info("booking: hotel form submitted",
		zap.String("destination", form.Destination), zap.String("location", form.Location))
	return form, nil
}

func (s *DefaultService) ClearHotelBooking(ctx context.Context) error {
	if err := store.Clear(ctx, s.Store, store.KeyFormBooking); err != nil {
		return err
	}
	s.Bus.Publish(events.TopicBookingsUpdated)
	s.Logger.Info("booking: hotel form cleared")
	return nil
}
