package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xxtea01/cb-mpc/eckey-go/internal/arrayutil"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Rewrite a key in another format",
	Long: `Convert reads a key (PEM or DER, ECPrivateKey or PKCS #8) and writes it
back in the configured format and armor. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
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

	out, _ := cmd.Flags().GetString("out")
	w, closeOut, err := openOutput(cmd.OutOrStdout(), out)
	if err != nil {
		return err
	}
	if err := writeKey(w, key); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}
