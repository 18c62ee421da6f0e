package main

import "github.com/xxtea01/cb-mpc/eckey-go/cmd/eckeytool/cmd"

func main() {
	cmd.Execute()
}
