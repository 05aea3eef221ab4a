package conversion

import "context"

type EventStoreMock struct {
	Events    []Event
	AppendErr error
	ListErr   error
	ListCalls int
}

func NewEventStoreMock() *EventStoreMock {
	return &EventStoreMock{}
}

func (m *EventStoreMock) Append(ctx context.Context, event Event) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Events = append(m.Events, event)
	return nil
}

func (m *EventStoreMock) List(ctx context.Context, limit int) ([]Event, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if limit <= 0 || limit > len(m.Events) {
		limit = len(m.Events)
	}
	events := make([]Event, 0, limit)
	for i := 0; i < limit; i++ {
		events = append(events, m.Events[len(m.Events)-1-i])
	}
	return events, nil
}

var _ EventStore = new(EventStoreMock)
