package cmd

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xxtea01/cb-mpc/eckey-go/api/eckey"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/arrayutil"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a private scalar as a key",
	Long: `Encode builds a key from a hex scalar (--scalar) or a fresh random one
(--random) on the configured curve and writes it in the configured format.`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().String("scalar", "", "private scalar in hex (big-endian)")
	encodeCmd.Flags().Bool("random", false, "generate a random scalar in [1, n)")
	encodeCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	encodeCmd.MarkFlagsMutuallyExclusive("scalar", "random")
	encodeCmd.MarkFlagsOneRequired("scalar", "random")
}

func runEncode(cmd *cobra.Command, args []string) error {
	params, err := configuredCurve()
	if err != nil {
		return err
	}

	var s *big.Int
	if random, _ := cmd.Flags().GetBool("random"); random {
		limit := params.Order()
		limit.Sub(limit, big.NewInt(1))
		if s, err = rand.Int(rand.Reader, limit); err != nil {
			return errors.Wrap(err, "generate scalar")
		}
		s.Add(s, big.NewInt(1))
	} else {
		hex, _ := cmd.Flags().GetString("scalar")
		var ok bool
		if s, ok = new(big.Int).SetString(strings.TrimPrefix(hex, "0x"), 16); !ok {
			return errors.Errorf("scalar %q is not hexadecimal", hex)
		}
	}
	defer arrayutil.WipeInt(s)

	key, err := eckey.NewFromScalar(s, params)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("out")
	w, closeOut, err := openOutput(cmd.OutOrStdout(), path)
	if err != nil {
		return err
	}
	if err := writeKey(w, key); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}
