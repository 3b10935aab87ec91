package modkit

import (
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/repokit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store"
)

// Deps are handed to every module constructor
// CH is nil when the event journal is disabled
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
