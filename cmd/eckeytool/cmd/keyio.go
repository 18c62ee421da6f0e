package cmd

import (
	"bytes"
	"encoding/pem"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/xxtea01/cb-mpc/eckey-go/api/curve"
	"github.com/xxtea01/cb-mpc/eckey-go/api/eckey"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/arrayutil"
	"github.com/xxtea01/cb-mpc/eckey-go/internal/curvemap"
)

const (
	formatEC    = "ec"
	formatPKCS8 = "pkcs8"

	pemTypeEC    = "EC PRIVATE KEY"
	pemTypePKCS8 = "PRIVATE KEY"
)

func configuredCurve() (*curve.DomainParameters, error) {
	return curvemap.CurveForName(viper.GetString("curve"))
}

func configuredFormat() (string, error) {
	switch f := viper.GetString("format"); f {
	case formatEC, formatPKCS8:
		return f, nil
	default:
		return "", errors.Errorf("unknown format %q (want %s or %s)", f, formatEC, formatPKCS8)
	}
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(in io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(in)
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "read %s", path)
}

// loadKey accepts PEM or DER in either record form. Bare ECPrivateKey input
// takes its curve from configuration.
func loadKey(data []byte) (*eckey.PrivateKey, error) {
	if block, _ := pem.Decode(data); block != nil {
		defer arrayutil.Zero(block.Bytes)
		switch block.Type {
		case pemTypePKCS8:
			return eckey.ParsePKCS8(block.Bytes)
		case pemTypeEC:
			return decodeRecord(block.Bytes)
		default:
			return nil, errors.Errorf("unsupported PEM block %q", block.Type)
		}
	}

	if key, err := eckey.ParsePKCS8(data); err == nil {
		return key, nil
	}
	return decodeRecord(data)
}

func decodeRecord(der []byte) (*eckey.PrivateKey, error) {
	params, err := configuredCurve()
	if err != nil {
		return nil, err
	}
	return eckey.Decode(der, params)
}

// writeKey writes key in the configured format and armor.
func writeKey(w io.Writer, key *eckey.PrivateKey) error {
	format, err := configuredFormat()
	if err != nil {
		return err
	}

	var der []byte
	pemType := pemTypeEC
	if format == formatPKCS8 {
		if der, err = key.MarshalPKCS8(); err != nil {
			return err
		}
		pemType = pemTypePKCS8
	} else {
		der = key.Encoded()
	}
	defer arrayutil.Zero(der)

	if !viper.GetBool("pem") {
		_, err = w.Write(der)
		return err
	}

	var buf bytes.Buffer
	if err := pem.Encode(&buf, &pem.Block{Type: pemType, Bytes: der}); err != nil {
		return err
	}
	defer arrayutil.Zero(buf.Bytes())
	_, err = w.Write(buf.Bytes())
	return err
}

// openOutput returns stdout for an empty path.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create %s", path)
	}
	return f, f.Close, nil
}
