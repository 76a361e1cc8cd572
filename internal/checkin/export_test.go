package checkin

import "time"

// SetNowFunc pins the handler clock for tests.
func (handler *Handler) SetNowFunc(now func() time.Time) {
	handler.now = now
}
