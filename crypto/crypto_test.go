package crypto

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestCrypto(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Crypto Suite")
}

var _ = Describe("Crypto", func() {
	Describe(".NewKey", func() {
		It("should derive the same key from the same seed", func() {
			k1 := NewKeyFromIntSeed(1)
			k2 := NewKeyFromIntSeed(1)
			Expect(k1.PubKey().SerializeCompressed()).To(Equal(k2.PubKey().SerializeCompressed()))
		})

		It("should derive different keys from different seeds", func() {
			k1 := NewKeyFromIntSeed(1)
			k2 := NewKeyFromIntSeed(2)
			Expect(k1.PubKey().SerializeCompressed()).ToNot(Equal(k2.PubKey().SerializeCompressed()))
		})
	})

	Describe(".SignMessage and .RecoverPK", func() {
		message := []byte("message")

		It("should recover the signer's public key", func() {
			key, err := NewKey(nil)
			Expect(err).To(BeNil())

			sig, err := SignMessage(message, key.PrivKey())
			Expect(err).To(BeNil())

			pk, err := RecoverPK(message, sig)
			Expect(err).To(BeNil())
			Expect(pk.SerializeCompressed()).To(Equal(key.PubKey().SerializeCompressed()))
		})

		It("should not recover the signer's key for a different message", func() {
			key, err := NewKey(nil)
			Expect(err).To(BeNil())

			sig, err := SignMessage(message, key.PrivKey())
			Expect(err).To(BeNil())

			pk, err := RecoverPK([]byte("other message"), sig)
			if err == nil {
				Expect(pk.SerializeCompressed()).ToNot(Equal(key.PubKey().SerializeCompressed()))
			}
		})

		It("should fail on a garbage signature", func() {
			_, err := RecoverPK(message, "not-a-signature")
			Expect(err).ToNot(BeNil())
		})

		It("should fail on a non-base58 signature string", func() {
			_, err := RecoverPK(message, "0OIl")
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("malformed signature"))
		})
	})
})
