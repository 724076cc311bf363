package producer

import (
	"github.com/endee-io/endee-go/internal/loader"
	pkgKafka "github.com/endee-io/endee-go/pkg/kafka"
	"github.com/endee-io/endee-go/pkg/log"
)

// Producer interface for the loader domain
type Producer interface {
	loader.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new loader producer. The wrapped producer must be bound to
// the dead letter topic.
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
