package memds

import "strings"

// Capability is a set of flags describing how a container is linked and which
// families of operations it supports.
type Capability uint32

const (
	CapDoublyLinked Capability = 1 << iota
	CapHeadTail

	CapLength
	CapEmpty

	CapAppend
	CapPrepend
	CapInsert
	CapEnqueue
	CapPush

	CapRemove
	CapPop
	CapDequeue

	CapGet
	CapFront
	CapBack
	CapPeek
)

var capabilityNames = []string{
	"doubly-linked", "head-tail",
	"length", "empty",
	"append", "prepend", "insert", "enqueue", "push",
	"remove", "pop", "dequeue",
	"get", "front", "back", "peek",
}

func (c Capability) Has(other Capability) bool {
	return c&other == other
}

func (c Capability) String() string {
	var names []string
	for i, name := range capabilityNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Kind identifies a container type.
type Kind int

const (
	KindLinkedList Kind = iota + 1
	KindStack
	KindQueue
)

const (
	linkedListCapabilities = CapDoublyLinked | CapHeadTail |
		CapLength | CapEmpty |
		CapAppend | CapPrepend | CapInsert |
		CapRemove | CapPop |
		CapGet | CapFront | CapBack

	stackCapabilities = CapLength | CapEmpty | CapPush | CapPop | CapPeek

	queueCapabilities = CapHeadTail |
		CapLength | CapEmpty |
		CapEnqueue | CapDequeue |
		CapFront | CapPeek
)

// Capabilities returns the default capabilities of containers of kind k.
func (k Kind) Capabilities() Capability {
	switch k {
	case KindLinkedList:
		return linkedListCapabilities
	case KindStack:
		return stackCapabilities
	case KindQueue:
		return queueCapabilities
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindLinkedList:
		return "linked-list"
	case KindStack:
		return "stack"
	case KindQueue:
		return "queue"
	default:
		return "unknown"
	}
}
