package memds

import (
	"errors"
	"strconv"
)

// Status is the status vocabulary shared by all the containers of this package.
// A Status other than StatusOK is also an error, operations return it directly or wrapped
// with additional context; use StatusOf to recover it.
type Status int

const (
	StatusOK    Status = 0
	StatusError Status = -1

	//allocation
	StatusStructureAllocFailed Status = 1
	StatusNodeAllocFailed      Status = 3

	//internal invariant violations, they indicate a bug in the engine, not a misuse.
	StatusDeleteFail Status = 4
	StatusCorrupted  Status = 5

	//invalid references
	StatusNullSelf Status = 101
	StatusNullData Status = 102

	//indexes
	StatusLessThanIndex    Status = 201
	StatusGreaterThanIndex Status = 202
)

var (
	ErrGeneric              error = StatusError
	ErrStructureAllocFailed error = StatusStructureAllocFailed
	ErrNodeAllocFailed      error = StatusNodeAllocFailed
	ErrDeleteFail           error = StatusDeleteFail
	ErrCorrupted            error = StatusCorrupted
	ErrNullSelf             error = StatusNullSelf
	ErrNullData             error = StatusNullData
	ErrLessThanIndex        error = StatusLessThanIndex
	ErrGreaterThanIndex     error = StatusGreaterThanIndex
)

var statusMessages = map[Status]string{
	StatusOK:                   "ok",
	StatusError:                "error",
	StatusStructureAllocFailed: "structure allocation failed",
	StatusNodeAllocFailed:      "node allocation failed",
	StatusDeleteFail:           "delete failed: container still holds nodes",
	StatusCorrupted:            "corrupted container",
	StatusNullSelf:             "invalid container reference",
	StatusNullData:             "absent data",
	StatusLessThanIndex:        "index is negative",
	StatusGreaterThanIndex:     "index is out of bounds",
}

func (s Status) Error() string {
	msg, ok := statusMessages[s]
	if !ok {
		return "unknown status " + strconv.Itoa(int(s))
	}
	return msg
}

func (s Status) String() string {
	return s.Error()
}

// IsInternal returns true if the status reports a violated internal invariant.
func (s Status) IsInternal() bool {
	return s == StatusDeleteFail || s == StatusCorrupted
}

// StatusOf returns the status carried by err: StatusOK if err is nil, StatusError if
// err does not wrap a Status.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var status Status
	if errors.As(err, &status) {
		return status
	}
	return StatusError
}
