package state

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"

	"github.com/lumenwatch/tower/util"
)

func TestState(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "State Suite")
}

var _ = Describe("UserInfo", func() {
	Describe("msgpack round trip", func() {
		It("should preserve the appointment map", func() {
			info := NewUserInfo(19, 600)
			id1 := uuid.NewV4()
			id2 := uuid.NewV4()
			info.Appointments[id1] = 1
			info.Appointments[id2] = 3

			var out UserInfo
			Expect(util.BytesToObject(util.ToBytes(info), &out)).To(BeNil())
			Expect(&out).To(Equal(info))
		})
	})

	Describe(".AppointmentIDs", func() {
		It("should return the ids of all appointments", func() {
			info := NewUserInfo(10, 100)
			id := uuid.NewV4()
			info.Appointments[id] = 2
			Expect(info.AppointmentIDs()).To(Equal([]uuid.UUID{id}))
		})
	})

	Describe(".Clone", func() {
		It("should not share the appointment map", func() {
			info := NewUserInfo(10, 100)
			info.Appointments[uuid.NewV4()] = 2

			cp := info.Clone()
			Expect(cp).To(Equal(info))

			cp.Appointments[uuid.NewV4()] = 1
			Expect(info.Appointments).To(HaveLen(1))
		})
	})
})
