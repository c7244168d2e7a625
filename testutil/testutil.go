package testutil

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lumenwatch/tower/config"
	"github.com/lumenwatch/tower/params"
	"github.com/lumenwatch/tower/pkgs/logger"
	"github.com/lumenwatch/tower/storage"
	"github.com/lumenwatch/tower/util"
)

// SetTestCfg prepares a config object and data directory for tests
func SetTestCfg(opts ...string) (*config.AppConfig, error) {
	var dataDirName = "_test_" + util.RandString(5)
	if len(opts) > 0 {
		dataDirName = opts[0]
	}

	dir, err := ioutil.TempDir("", "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create test directory")
	}
	dataDir := filepath.Join(dir, dataDirName)
	if err = os.MkdirAll(dataDir, 0700); err != nil {
		return nil, err
	}

	cfg := config.EmptyAppConfig()
	cfg.Node.Mode = config.ModeTest
	cfg.SetDataDir(dataDir)
	cfg.Subscription.Slots = params.DefaultSubscriptionSlots
	cfg.Subscription.Duration = params.DefaultSubscriptionDuration
	cfg.Subscription.ExpiryDelta = params.DefaultExpiryDelta
	cfg.G().Log = logger.NewLogrusNoOp()

	return cfg, nil
}

// GetDB returns an in-memory test database
func GetDB() *storage.Badger {
	db, err := storage.NewBadger("")
	if err != nil {
		panic(err)
	}
	return db
}
