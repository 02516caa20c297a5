package data

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	lru "github.com/hashicorp/golang-lru"

	"github.com/iWorld-y/market_radar/app/display/internal/conf"
	"github.com/iWorld-y/market_radar/app/market_radar/pkg/storage"
)

const defaultHistorySize = 100

// Data 数据层资源：配置了数据库时使用 PostgreSQL，否则使用内存历史
type Data struct {
	store   *storage.Storage
	history *lru.Cache
}

func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	if c != nil && c.Database != nil && c.Database.Source != "" {
		if c.Database.Driver != "" && c.Database.Driver != "postgres" {
			return nil, nil, fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
		}
		store, err := storage.Open(c.Database.Source)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			helper.Info("closing the data resources")
			store.Close()
		}
		return &Data{store: store}, cleanup, nil
	}

	size := defaultHistorySize
	if c != nil && c.History != nil && c.History.Size > 0 {
		size = int(c.History.Size)
	}
	history, err := lru.New(size)
	if err != nil {
		return nil, nil, err
	}
	helper.Infof("no database configured, keeping the latest %d reports in memory", size)
	return &Data{history: history}, func() {}, nil
}
