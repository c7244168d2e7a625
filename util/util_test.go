package util

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestUtil(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Util Suite")
}

var _ = Describe("Util", func() {
	Describe(".RandString", func() {
		It("should produce a string of the requested length", func() {
			Expect(RandString(10)).To(HaveLen(10))
		})
	})

	Describe(".ToBytes and .BytesToObject", func() {
		It("should round-trip an object", func() {
			type obj struct {
				Name string
				Age  int
			}
			src := obj{Name: "ken", Age: 20}
			var out obj
			Expect(BytesToObject(ToBytes(src), &out)).To(BeNil())
			Expect(out).To(Equal(src))
		})
	})

	Describe(".ToHex and .FromHex", func() {
		It("should round-trip with the 0x prefix", func() {
			str := ToHex([]byte("abc"))
			Expect(str).To(Equal("0x616263"))
			bs, err := FromHex(str)
			Expect(err).To(BeNil())
			Expect(bs).To(Equal([]byte("abc")))
		})

		It("should decode without the 0x prefix", func() {
			bs, err := FromHex("616263")
			Expect(err).To(BeNil())
			Expect(bs).To(Equal([]byte("abc")))
		})
	})
})
