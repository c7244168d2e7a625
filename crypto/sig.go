package crypto

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// messagePrefix is prepended to every message before hashing so
// signatures produced here cannot be replayed as transaction signatures.
const messagePrefix = "Lightning Signed Message:"

// hashMessage returns the double-sha256 digest of the prefixed message
func hashMessage(msg []byte) []byte {
	data := make([]byte, 0, len(messagePrefix)+len(msg))
	data = append(data, messagePrefix...)
	data = append(data, msg...)
	return chainhash.DoubleHashB(data)
}

// SignMessage signs the given message with the key and returns a
// base58-encoded compact recoverable signature.
func SignMessage(msg []byte, key *btcec.PrivateKey) (string, error) {
	sig, err := btcec.SignCompact(btcec.S256(), key, hashMessage(msg), true)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign message")
	}
	return base58.Encode(sig), nil
}

// RecoverPK recovers the public key that produced the given signature
// over the message. The signature must be a base58-encoded compact
// recoverable signature as produced by SignMessage.
func RecoverPK(msg []byte, signature string) (*btcec.PublicKey, error) {
	raw, err := base58.Decode(signature)
	if err != nil {
		return nil, errors.Wrap(err, "malformed signature")
	}

	pk, _, err := btcec.RecoverCompact(btcec.S256(), raw, hashMessage(msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to recover public key")
	}

	return pk, nil
}
