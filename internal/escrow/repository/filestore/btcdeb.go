package filestore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

// SaveBtcdebCommands writes, for each command, the deposit txid line followed
// by the btcdeb invocation line. An existing file is replaced.
func (r *Repository) SaveBtcdebCommands(commands []model.BtcdebCommand) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_btcdeb_commands", err, started)
	}()

	if r.paths.BtcdebCommands == "" {
		return errors.New("btcdeb command file path is required")
	}
	return writeAtomic(r.paths.BtcdebCommands, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, c := range commands {
			if _, err := fmt.Fprintf(bw, "%s\n%s\n", c.Deposit, c); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}
