package storage

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Badger", func() {
	var db *Badger
	var err error

	BeforeEach(func() {
		db, err = NewBadger("")
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		Expect(db.Close()).To(BeNil())
	})

	Describe(".Put and .Get", func() {
		It("should round-trip a record", func() {
			rec := NewRecord([]byte("key"), []byte("value"), []byte("obj"))
			Expect(db.Put(rec)).To(BeNil())

			got, err := db.Get(rec.GetKey())
			Expect(err).To(BeNil())
			Expect(got.Value).To(Equal([]byte("value")))
			Expect(got.Key).To(Equal([]byte("key")))
			Expect(got.Prefix).To(Equal([]byte("obj")))
		})

		It("should return ErrRecordNotFound for an unknown key", func() {
			_, err := db.Get([]byte("unknown"))
			Expect(err).To(Equal(ErrRecordNotFound))
		})
	})

	Describe(".Del", func() {
		It("should delete a record", func() {
			rec := NewRecord([]byte("key"), []byte("value"))
			Expect(db.Put(rec)).To(BeNil())
			Expect(db.Del(rec.GetKey())).To(BeNil())
			_, err := db.Get(rec.GetKey())
			Expect(err).To(Equal(ErrRecordNotFound))
		})

		It("should be a no-op for an unknown key", func() {
			Expect(db.Del([]byte("unknown"))).To(BeNil())
		})
	})

	Describe(".Iterate", func() {
		BeforeEach(func() {
			Expect(db.Put(NewRecord([]byte("a"), []byte("1"), []byte("obj")))).To(BeNil())
			Expect(db.Put(NewRecord([]byte("b"), []byte("2"), []byte("obj")))).To(BeNil())
			Expect(db.Put(NewRecord([]byte("c"), []byte("3"), []byte("other")))).To(BeNil())
		})

		It("should visit only records under the prefix, in order", func() {
			var keys []string
			db.Iterate(MakePrefix([]byte("obj")), true, func(rec *Record) bool {
				keys = append(keys, string(rec.Key))
				return false
			})
			Expect(keys).To(Equal([]string{"a", "b"}))
		})

		It("should stop when iterFunc returns true", func() {
			var count int
			db.Iterate(MakePrefix([]byte("obj")), true, func(rec *Record) bool {
				count++
				return true
			})
			Expect(count).To(Equal(1))
		})

		It("should iterate in reverse when first is false", func() {
			var keys []string
			db.Iterate(MakePrefix([]byte("obj")), false, func(rec *Record) bool {
				keys = append(keys, string(rec.Key))
				return false
			})
			Expect(keys).To(Equal([]string{"b", "a"}))
		})
	})

	Describe(".Closed", func() {
		It("should report the engine state", func() {
			other, err := NewBadger("")
			Expect(err).To(BeNil())
			Expect(other.Closed()).To(BeFalse())
			Expect(other.Close()).To(BeNil())
			Expect(other.Closed()).To(BeTrue())
		})
	})
})
