package parkmanager

const (
	// Name is the service name reported in logs and health responses
	Name = "parkmanager"

	// Version is the service version reported in logs and health responses
	Version = "1.0.0"
)
