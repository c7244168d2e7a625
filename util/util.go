package util

import (
	"encoding/hex"
	"math/rand"
	"time"

	"github.com/vmihailenco/msgpack/v4"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// RandString is like RandBytes but returns string
func RandString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// RandBytes gets random string of fixed length
func RandBytes(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

// ToBytes returns msgpack encoded representation of s.
func ToBytes(s interface{}) []byte {
	b, err := msgpack.Marshal(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BytesToObject decodes bytes produced by ToBytes to the given dest object
func BytesToObject(bs []byte, dest interface{}) error {
	return msgpack.Unmarshal(bs, dest)
}

// ToHex encodes value to hex with a '0x' prefix
func ToHex(value []byte, noPrefix ...bool) string {
	if len(noPrefix) > 0 && noPrefix[0] {
		return hex.EncodeToString(value)
	}
	return "0x" + hex.EncodeToString(value)
}

// FromHex decodes hex value to bytes. If hex value is prefixed
// with '0x' it is trimmed before the decode operation.
func FromHex(hexValue string) ([]byte, error) {
	var _hexValue string
	if len(hexValue) > 1 && hexValue[:2] == "0x" {
		_hexValue = hexValue[2:]
	} else {
		_hexValue = hexValue
	}
	return hex.DecodeString(_hexValue)
}
