package gatekeeper

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"

	"github.com/lumenwatch/tower/types"
)

var _ = Describe("outdatedUsersCache", func() {
	var c *outdatedUsersCache

	BeforeEach(func() {
		c = newOutdatedUsersCache(3)
	})

	entry := func() map[types.UserID][]uuid.UUID {
		return map[types.UserID][]uuid.UUID{randomUserID(): {uuid.NewV4()}}
	}

	Describe(".put", func() {
		It("should return nil while under capacity", func() {
			Expect(c.put(1, entry())).To(BeNil())
			Expect(c.put(2, entry())).To(BeNil())
			Expect(c.put(3, entry())).To(BeNil())
			Expect(c.len()).To(Equal(3))
		})

		It("should evict the lowest height and return its users", func() {
			first := entry()
			c.put(5, first)
			c.put(7, entry())
			c.put(6, entry())

			evicted := c.put(8, entry())
			Expect(evicted).To(Equal(first))
			Expect(c.len()).To(Equal(3))
			Expect(c.has(5)).To(BeFalse())
			Expect(c.has(6)).To(BeTrue())
		})

		It("should store a copy of the given entry", func() {
			users := entry()
			c.put(1, users)
			for id := range users {
				delete(users, id)
			}
			got, ok := c.get(1)
			Expect(ok).To(BeTrue())
			Expect(got).To(HaveLen(1))
		})
	})

	Describe(".get", func() {
		It("should return a copy of the entry", func() {
			users := entry()
			c.put(1, users)

			got, ok := c.get(1)
			Expect(ok).To(BeTrue())
			for id := range got {
				delete(got, id)
			}

			again, ok := c.get(1)
			Expect(ok).To(BeTrue())
			Expect(again).To(HaveLen(1))
		})

		It("should report a miss for an unknown height", func() {
			_, ok := c.get(42)
			Expect(ok).To(BeFalse())
		})
	})
})
