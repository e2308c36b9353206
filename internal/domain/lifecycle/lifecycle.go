// Package lifecycle holds shared start/stop settings.
package lifecycle

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds start hooks and graceful shutdown.
const DefaultTimeout = 10 * time.Second

// InstanceID identifies this process in events shared with other replicas.
var InstanceID = uuid.NewString()
