package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// publishTimeout bounds one produce round trip, retries included.
	publishTimeout = 10 * time.Second
	// publishRetries is how often sarama retries a produce before the
	// record comes back to the caller as failed.
	publishRetries = 3
)

// protocolVersion pins the broker protocol level. Raise it only once every
// cluster the loader talks to has been upgraded.
var protocolVersion = sarama.V2_6_0_0

// newBaseConfig returns the sarama config shared by producers and consumer
// group members.
func newBaseConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = protocolVersion
	return cfg
}
