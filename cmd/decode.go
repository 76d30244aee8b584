package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/socialnetwork/go-inflation/codec"
	"github.com/socialnetwork/go-inflation/common/types"
	"github.com/socialnetwork/go-inflation/common/util"
)

// decodeRecords reads one hex encoded payout per line and writes it as JSON.
func decodeRecords(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	enc := json.NewEncoder(w)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		buf, err := util.Decode(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		var payout types.Payout
		if err := codec.Decode(buf, &payout); err != nil {
			return fmt.Errorf("line %d: decode payout: %w", line, err)
		}
		if err := enc.Encode(payout); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Convert SCALE encoded payouts from stdin to JSON",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return decodeRecords(c.InOrStdin(), c.OutOrStdout())
		},
	}
}
