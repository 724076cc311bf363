package usecase

import (
	"github.com/endee-io/endee-go/internal/loader"
	"github.com/endee-io/endee-go/pkg/endee"
	"github.com/endee-io/endee-go/pkg/log"
	"github.com/endee-io/endee-go/pkg/objstore"
	pkgRedis "github.com/endee-io/endee-go/pkg/redis"
	"github.com/endee-io/endee-go/pkg/voyage"
)

// implUseCase implements the loader.UseCase interface
type implUseCase struct {
	l        log.Logger
	client   endee.IEndee
	voyage   voyage.IVoyage
	store    objstore.IObjStore
	redis    pkgRedis.IRedis
	producer loader.Producer
}

// New creates a new loader usecase
func New(
	l log.Logger,
	client endee.IEndee,
	voyage voyage.IVoyage,
	store objstore.IObjStore,
	redis pkgRedis.IRedis,
	producer loader.Producer,
) loader.UseCase {
	return &implUseCase{
		l:        l,
		client:   client,
		voyage:   voyage,
		store:    store,
		redis:    redis,
		producer: producer,
	}
}
