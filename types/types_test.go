package types

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/lumenwatch/tower/util"
)

func TestTypes(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Types Suite")
}

var _ = Describe("UserID", func() {
	Describe(".UserIDFromBytes", func() {
		It("should reject an input of the wrong length", func() {
			_, err := UserIDFromBytes([]byte("short"))
			Expect(err).ToNot(BeNil())
		})

		It("should copy a 33-byte input", func() {
			raw := util.RandBytes(UserIDLength)
			id, err := UserIDFromBytes(raw)
			Expect(err).To(BeNil())
			Expect(id.Bytes()).To(Equal(raw))
		})
	})

	Describe(".UserIDFromHex", func() {
		It("should round-trip with String", func() {
			raw := util.RandBytes(UserIDLength)
			id, err := UserIDFromBytes(raw)
			Expect(err).To(BeNil())

			decoded, err := UserIDFromHex(id.String())
			Expect(err).To(BeNil())
			Expect(decoded).To(Equal(id))
		})

		It("should reject bad hex", func() {
			_, err := UserIDFromHex("zz")
			Expect(err).ToNot(BeNil())
		})
	})

	Describe(".IsEmpty", func() {
		It("should report the zero value as empty", func() {
			Expect(EmptyUserID.IsEmpty()).To(BeTrue())
		})
	})
})
