package notifications

import "context"

// NopPublisher используется, когда публикация событий выключена
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, BookingCreatedEvent) error { return nil }

func (NopPublisher) PublishBookingStatusChanged(context.Context, BookingStatusChangedEvent) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
