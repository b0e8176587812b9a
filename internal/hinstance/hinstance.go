package hinstance

import (
	"github.com/google/uuid"
)

// UID identifies the running process, it is used to namespace temporary files.
var UID = uuid.NewString()
