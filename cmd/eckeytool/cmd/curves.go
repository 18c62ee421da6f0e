package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xxtea01/cb-mpc/eckey-go/internal/curvemap"
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "List the named curves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tFIELD\tORDER BYTES\tOID")
		for _, name := range curvemap.Names() {
			params, err := curvemap.CurveForName(name)
			if err != nil {
				return err
			}
			field := "prime"
			if params.IsBinary() {
				field = "binary"
			}
			oid, _ := curvemap.OIDForCurve(params)
			fmt.Fprintf(tw, "%s\t%s(%d)\t%d\t%s\n", name, field, params.Field().FieldSize(), params.OrderLen(), oid)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(curvesCmd)
}
