package notifications

import (
	"github.com/jwchung/staffdesk/utils"
)

// Dispatcher fans one notification out to all registered channels in
// registration order. Delivery is best effort: every channel is attempted
// exactly once, a failing channel is logged and skipped, and callers
// cannot observe partial delivery.
type Dispatcher struct {
	channels []Channel
}

func NewDispatcher(channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

func (d *Dispatcher) Dispatch(recipient, title, message string, context map[string]string) {
	for _, ch := range d.channels {
		if err := ch.Send(recipient, title, message, context); err != nil {
			utils.ErrorLogger.Printf("dispatch failed for %T: %v", ch, err)
		}
	}
}
