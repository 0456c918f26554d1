package response

import (
	"encoding/json"
	"time"
)

// DisplayTimeFormat renders as e.g. "22 Feb 2026 • 12:45 AM".
const DisplayTimeFormat = "02 Jan 2006 • 03:04 PM"

// MsgResp is the acknowledgement body.
type MsgResp struct {
	Msg string `json:"msg"`
}

// ErrorResp is the failure body.
type ErrorResp struct {
	Error string `json:"error"`
}

// DisplayTime is a timestamp that marshals as DisplayTimeFormat in UTC.
type DisplayTime time.Time

// String formats the time for display.
func (d DisplayTime) String() string {
	return time.Time(d).UTC().Format(DisplayTimeFormat)
}

// MarshalJSON implements json.Marshaler for DisplayTime.
func (d DisplayTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
