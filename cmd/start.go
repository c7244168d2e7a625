package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lumenwatch/tower/chain"
	"github.com/lumenwatch/tower/gatekeeper"
	"github.com/lumenwatch/tower/keepers"
	"github.com/lumenwatch/tower/storage"
)

// startCmd starts the tower
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch the tower and process blocks from the configured chain backend",
	RunE: func(cmd *cobra.Command, args []string) error {

		db, err := storage.NewBadger(cfg.GetDBDir())
		if err != nil {
			return err
		}
		defer db.Close()

		hub := keepers.New(db)

		// Resume the clock from the last processed block; a fresh data
		// directory starts with no tip and picks one up from the first
		// connected block.
		tip, err := hub.SystemKeeper().GetLastBlockHeader()
		if err != nil && err != storage.ErrRecordNotFound {
			return err
		}

		gk := gatekeeper.New(cfg, tip, hub.UserKeeper())
		if _, err := gk.LoadFromStore(); err != nil {
			return err
		}

		monitor := chain.NewMonitor(cfg, tip)
		monitor.Subscribe(gk)

		// The chain backend and the user-facing API attach here; both
		// are deployment specific and configured out of band.
		log.Info("Tower started", "DataDir", cfg.DataDir(), "Users", gk.RegisteredUserCount())

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
		<-interrupt

		if tip := monitor.Tip(); tip != nil {
			if err := hub.SystemKeeper().SetLastBlockHeader(tip); err != nil {
				log.Error("Failed to persist last block header", "Err", err.Error())
			}
		}

		log.Info("Tower stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
