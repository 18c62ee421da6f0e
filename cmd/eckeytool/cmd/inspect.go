package cmd

import (
	"encoding/hex"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xxtea01/cb-mpc/eckey-go/api/eckey"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/arrayutil"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/curvemap"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Describe a key",
	Long: `Inspect prints the curve of a key and the public point the engine derives
for it. The private scalar is printed only with --show-secret.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("show-secret", false, "also print the private scalar")
}

func runInspect(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	defer arrayutil.Zero(data)

	key, err := loadKey(data)
	if err != nil {
		return err
	}
	return describeKey(cmd, key)
}

func describeKey(cmd *cobra.Command, key *eckey.PrivateKey) error {
	params := key.Params()
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "algorithm:\t%s\n", key.Algorithm())
	fmt.Fprintf(tw, "curve:\t%s\n", params)
	field := "prime"
	if key.IsBinaryField() {
		field = "binary"
	}
	fmt.Fprintf(tw, "field:\t%s, %d bits\n", field, params.Field().FieldSize())
	fmt.Fprintf(tw, "scalar length:\t%d bytes\n", params.OrderLen())
	if oid, ok := curvemap.OIDForCurve(params); ok {
		fmt.Fprintf(tw, "oid:\t%s\n", oid)
	}

	if pub, err := key.PublicKey(); err != nil {
		fmt.Fprintf(tw, "public key:\tunavailable (%v)\n", err)
	} else {
		fmt.Fprintf(tw, "public key:\t%s\n", hex.EncodeToString(pub))
	}

	if show, _ := cmd.Flags().GetBool("show-secret"); show {
		s := key.ScalarBytes()
		fmt.Fprintf(tw, "scalar:\t%s\n", hex.EncodeToString(s))
		arrayutil.Zero(s)
	}
	return tw.Flush()
}
