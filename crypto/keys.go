package crypto

import (
	"crypto/rand"
	"io"
	mrand "math/rand"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// Key wraps a secp256k1 private key and gives access
// to the corresponding public key.
type Key struct {
	privKey *btcec.PrivateKey
}

// NewKey creates a new secp256k1 key.
// If seed is provided, the key is derived deterministically from it.
func NewKey(seed *int64) (*Key, error) {
	var r io.Reader = rand.Reader
	if seed != nil {
		r = mrand.New(mrand.NewSource(*seed))
	}

	raw := make([]byte, 32)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, errors.Wrap(err, "failed to read entropy")
	}

	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), raw)
	return &Key{privKey: priv}, nil
}

// NewKeyFromIntSeed is like NewKey but accepts a seed of
// type int and casts to int64. Only useful in tests.
func NewKeyFromIntSeed(seed int) *Key {
	int64Seed := int64(seed)
	key, err := NewKey(&int64Seed)
	if err != nil {
		panic(err)
	}
	return key
}

// PrivKey returns the wrapped private key
func (k *Key) PrivKey() *btcec.PrivateKey {
	return k.privKey
}

// PubKey returns the corresponding public key
func (k *Key) PubKey() *btcec.PublicKey {
	return k.privKey.PubKey()
}
