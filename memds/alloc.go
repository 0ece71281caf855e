package memds

// AllocKind is the kind of allocation a container asks its Allocator for.
type AllocKind int

const (
	StructureAlloc AllocKind = iota + 1
	NodeAlloc
)

func (k AllocKind) String() string {
	switch k {
	case StructureAlloc:
		return "structure"
	case NodeAlloc:
		return "node"
	default:
		return "unknown"
	}
}

// An Allocator accounts for the allocations made by containers.
// Allocate is called before a structure or a node is created, if it returns false the creation
// fails with StatusStructureAllocFailed or StatusNodeAllocFailed and nothing is linked.
// Free is called exactly once for each successful Allocate, when the node is unlinked or
// when the container is deleted.
//
// Allocators are not required to be thread safe, containers sharing an allocator
// should be used by a single goroutine.
type Allocator interface {
	Allocate(kind AllocKind) bool
	Free(kind AllocKind)
}

type unlimitedAllocator struct{}

func (unlimitedAllocator) Allocate(AllocKind) bool { return true }
func (unlimitedAllocator) Free(AllocKind)          {}

// CountingAllocator is an Allocator that counts live allocations and optionally limits them.
// The zero value has no limits.
type CountingAllocator struct {
	//maximum number of live structures, 0 means no limit.
	MaxStructures int

	//maximum number of live nodes, 0 means no limit.
	MaxNodes int

	liveStructures int
	liveNodes      int
	totalNodes     int
	refused        int
}

func NewCountingAllocator() *CountingAllocator {
	return &CountingAllocator{}
}

func (a *CountingAllocator) Allocate(kind AllocKind) bool {
	switch kind {
	case StructureAlloc:
		if a.MaxStructures > 0 && a.liveStructures >= a.MaxStructures {
			a.refused++
			return false
		}
		a.liveStructures++
	case NodeAlloc:
		if a.MaxNodes > 0 && a.liveNodes >= a.MaxNodes {
			a.refused++
			return false
		}
		a.liveNodes++
		a.totalNodes++
	default:
		return false
	}
	return true
}

func (a *CountingAllocator) Free(kind AllocKind) {
	switch kind {
	case StructureAlloc:
		a.liveStructures--
	case NodeAlloc:
		a.liveNodes--
	}
}

// LiveNodes returns the number of nodes allocated and not yet freed.
func (a *CountingAllocator) LiveNodes() int {
	return a.liveNodes
}

// LiveStructures returns the number of containers created and not yet deleted.
func (a *CountingAllocator) LiveStructures() int {
	return a.liveStructures
}

// TotalNodes returns the number of node allocations that succeeded since the creation of the allocator.
func (a *CountingAllocator) TotalNodes() int {
	return a.totalNodes
}

// Refused returns the number of allocations that were refused because of a limit.
func (a *CountingAllocator) Refused() int {
	return a.refused
}
