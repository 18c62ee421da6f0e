package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eckeytool",
	Short: "Encode, inspect and convert EC private keys",
	Long: `eckeytool works with EC private keys in the ECPrivateKey record form
(little-endian scalar octets) and in PKCS #8. Keys are read and written as DER
or PEM; the curve of a bare ECPrivateKey record comes from --curve.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			jww.SetStdoutThreshold(jww.LevelDebug)
		} else {
			jww.SetStdoutThreshold(jww.LevelError)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.eckeytool.yaml)")
	rootCmd.PersistentFlags().StringP("curve", "c", "", "curve name for bare ECPrivateKey records (see 'curves')")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format: ec or pkcs8")
	rootCmd.PersistentFlags().Bool("pem", false, "write PEM instead of DER")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log engine activity")

	bindFlagOrPanic("curve", "curve")
	bindFlagOrPanic("format", "format")
	bindFlagOrPanic("pem", "pem")
	bindFlagOrPanic("verbose", "verbose")
}

func bindFlagOrPanic(configKey, flagName string) {
	if err := viper.BindPFlag(configKey, rootCmd.PersistentFlags().Lookup(flagName)); err != nil {
		panic(fmt.Sprintf("failed to bind %s flag: %v", flagName, err))
	}
}

func initConfig() {
	viper.SetDefault("curve", "P-256")
	viper.SetDefault("format", formatEC)
	viper.SetDefault("pem", false)
	viper.SetDefault("verbose", false)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".eckeytool")
	}

	viper.SetEnvPrefix("ECKEYTOOL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	} else {
		jww.INFO.Printf("using config file %s", viper.ConfigFileUsed())
	}
}
