// Package eckey implements the EC private key container.
//
// A PrivateKey couples a secret scalar with its curve's DomainParameters and
// the serialized record
//
//	ECPrivateKey ::= SEQUENCE {
//	  version     INTEGER { ecPrivkeyVer1(1) },
//	  privateKey  OCTET STRING,                  -- little-endian, fixed width
//	  parameters  [0] ECDomainParameters OPTIONAL,
//	  publicKey   [1] BIT STRING OPTIONAL
//	}
//
// The optional fields are accepted on decode and ignored: the domain
// parameters always come from the caller (typically resolved from an
// AlgorithmIdentifier, see ParsePKCS8).
//
// The scalar is kept in one of two forms, a *big.Int or a fixed-width
// big-endian byte array of length Params().OrderLen(); the other form is
// derived on first use and cached for the life of the key. Every transient
// copy of the secret made along the way is wiped before the producing call
// returns.
//
// # Native handle
//
// Operations that need engine-side key material call NativeHandle. The first
// call builds a curve context in the engine, installs the scalar and
// registers a runtime cleanup that releases the context once the key is
// unreachable. Later calls, concurrent or not, observe the same outcome.
// A failed construction is final: NativeHandle keeps returning
// engine.InvalidHandle and the original error.
//
// # Quick start
//
//	key, err := eckey.NewFromScalar(s, curve.P256())
//	if err != nil {
//	    return err
//	}
//	der, err := key.MarshalPKCS8()
//	...
//	pub, err := key.PublicKey() // SEC 1 uncompressed point from the engine
package eckey
