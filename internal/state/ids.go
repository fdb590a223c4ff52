package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Stroke ids must stay unique for the whole session, including the
// fragments minted by partial erasure. A per-process random site id
// plus a monotonic counter keeps them unique without coordination.
var (
	siteID  = uuid.NewString()[:8]
	counter uint64
)

func newStrokeID() string {
	return fmt.Sprintf("stroke-%s-%d", siteID, atomic.AddUint64(&counter, 1))
}
